package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"explain", "declare", "define", "cast", "show"}

	assert.Equal(t, "explain", Suggest("explian", candidates))
	assert.Equal(t, "declare", Suggest("declaer", candidates))
	assert.Equal(t, "cast", Suggest("csat", candidates))

	// Nothing close enough.
	assert.Equal(t, "", Suggest("frobnicate", candidates))
	assert.Equal(t, "", Suggest("x", nil))
}

package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLang(t *testing.T) {
	assert.Equal(t, LangCPP17, FindLang("c++17"))
	assert.Equal(t, LangCPP17, FindLang("C++17"))
	assert.Equal(t, LangC99, FindLang("c99"))
	assert.Equal(t, LangNone, FindLang("cobol"))

	// Every dialect's own name round-trips.
	for _, name := range LangSetAny.LangNames() {
		assert.NotEqual(t, LangNone, FindLang(name), name)
	}
}

func TestLangRanges(t *testing.T) {
	assert.True(t, MinLang(LangC11).Has(LangC23))
	assert.False(t, MinLang(LangC11).Has(LangC99))
	assert.True(t, CMin(LangC99).Has(LangC99))
	assert.False(t, CMin(LangC99).Has(LangCPP23))
	assert.True(t, CPPMax(LangCPP14).Has(LangCPP98))
	assert.False(t, CPPMax(LangCPP14).Has(LangCPP17))
}

func TestLangFamilies(t *testing.T) {
	assert.True(t, LangC89.IsC())
	assert.False(t, LangC89.IsCPP())
	assert.True(t, LangCPP23.IsCPP())
	assert.True(t, LangSetAny.Has(LangCKNR))
}

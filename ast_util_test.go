package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntypedefChain(t *testing.T) {
	opt := &Options{Lang: LangC23}
	s := NewSession(opt)
	_, err := s.Execute("define IA as array 3 of int")
	require.NoError(t, err)

	// A pointer to a typedef of an array reports as pointer to array.
	ast, err := ParseEnglish("pointer to IA", &s.opts)
	require.NoError(t, err)
	to := ast.Unpointer()
	require.NotNil(t, to)
	assert.Equal(t, KindArray, to.Kind)
}

func TestIsPointerTo(t *testing.T) {
	opt := &Options{Lang: LangC23}

	ast, err := ParseEnglish("pointer to const char", opt)
	require.NoError(t, err)

	// Partial mask: pointee has the const bit.
	assert.True(t, ast.IsPointerTo(TConst, TConst))
	// Full mask: pointee is exactly const char.
	assert.True(t, ast.IsPointerTo(^TypeID(0), TConst|TChar))
	assert.False(t, ast.IsPointerTo(^TypeID(0), TChar))

	plain, err := ParseEnglish("array 3 of int", opt)
	require.NoError(t, err)
	assert.False(t, plain.IsPointerTo(TConst, TConst))
}

func TestIsKindOrReferenceTo(t *testing.T) {
	cpp := &Options{Lang: LangCPP17}

	ref, err := ParseEnglish("reference to array 3 of int", cpp)
	require.NoError(t, err)
	assert.True(t, ref.IsKindOrReferenceTo(KindArray))
	assert.False(t, ref.IsKindOrReferenceTo(KindPointer))
}

func TestTakeName(t *testing.T) {
	opt := &Options{Lang: LangC23}
	ast, err := ParseEnglish("pointer to int", opt)
	require.NoError(t, err)
	ast.Name = NewScopedName("p")

	name := ast.TakeName()
	assert.Equal(t, "p", name.FullName())
	assert.Nil(t, ast.FindName(VisitDown))
	taken := ast.TakeName()
	assert.True(t, taken.Empty())
}

package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedefTableSeed(t *testing.T) {
	tbl := NewTypedefTable()

	td := tbl.Find("size_t")
	require.NotNil(t, td)
	assert.False(t, td.UserDefined)
	assert.Equal(t, TUnsigned|TLong, td.AST.Type)

	assert.Nil(t, tbl.Find("no_such_t"))
	assert.Contains(t, tbl.Names(), "uintptr_t")
}

func TestTypedefTableDefine(t *testing.T) {
	tbl := NewTypedefTable()
	arena := NewArena()
	ast := arena.New(KindPointer, Loc{})
	leaf := arena.New(KindBuiltin, Loc{})
	leaf.Type = TInt | TTypedef
	ast.setOf(leaf)

	require.NoError(t, tbl.Define(NewScopedName("I"), ast))
	td := tbl.Find("I")
	require.NotNil(t, td)
	assert.True(t, td.UserDefined)

	// Redefinition and shadowing a predefined name both conflict.
	assert.ErrorIs(t, tbl.Define(NewScopedName("I"), ast), ErrConflict)
	assert.ErrorIs(t, tbl.Define(NewScopedName("size_t"), ast), ErrConflict)
}

func TestTypedefTableUndeclare(t *testing.T) {
	tbl := NewTypedefTable()
	arena := NewArena()
	ast := arena.New(KindBuiltin, Loc{})
	ast.Type = TInt

	require.NoError(t, tbl.Define(NewScopedName("I"), ast))
	require.NoError(t, tbl.Undeclare("I"))
	assert.Nil(t, tbl.Find("I"))

	assert.ErrorIs(t, tbl.Undeclare("I"), ErrUnknownName)
	assert.ErrorIs(t, tbl.Undeclare("size_t"), ErrConflict)
}

func TestArenaDupIndependence(t *testing.T) {
	src := NewArena()
	ptr := src.New(KindPointer, Loc{})
	leaf := src.New(KindBuiltin, Loc{})
	leaf.Type = TChar
	ptr.setOf(leaf)

	dst := NewArena()
	dup := dst.Dup(ptr)

	// Mutating the original must not reach the copy.
	leaf.Type = TInt
	ptr.Of = nil
	require.NotNil(t, dup.Of)
	assert.Equal(t, TChar, dup.Of.Type)
	assert.Same(t, dup, dup.Of.Parent)
	assert.Equal(t, 2, dst.Len())
}

package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddArrayDimensionOrder(t *testing.T) {
	// a[2][3] must come out as array 2 of array 3, not 3 of 2.
	a := NewArena()
	first := a.New(KindArray, Loc{})
	first.ArraySize = 2
	first.setOf(a.New(KindPlaceholder, Loc{}))
	second := a.New(KindArray, Loc{})
	second.ArraySize = 3
	second.setOf(a.New(KindPlaceholder, Loc{}))

	root := a.AddArray(nil, first)
	root = a.AddArray(root, second)

	require.Equal(t, KindArray, root.Kind)
	assert.Equal(t, 2, root.ArraySize)
	require.NotNil(t, root.Of)
	assert.Equal(t, 3, root.Of.ArraySize)
	assert.Equal(t, KindPlaceholder, root.Of.Of.Kind)
}

func TestAddArrayPointerDepth(t *testing.T) {
	a := NewArena()

	// *a[3]: pointer and array at the same depth, array becomes parent.
	ptr := a.New(KindPointer, Loc{})
	ptr.setOf(a.New(KindPlaceholder, Loc{}))
	arr := a.New(KindArray, Loc{})
	arr.ArraySize = 3
	arr.setOf(a.New(KindPlaceholder, Loc{}))
	root := a.AddArray(ptr, arr)
	assert.Equal(t, KindArray, root.Kind)
	assert.Equal(t, KindPointer, root.Of.Kind)

	// (*a)[3]: the parenthesized pointer is deeper, array splices inside.
	a = NewArena()
	a.depth = 1
	ptr = a.New(KindPointer, Loc{})
	ptr.setOf(a.New(KindPlaceholder, Loc{}))
	a.depth = 0
	arr = a.New(KindArray, Loc{})
	arr.ArraySize = 3
	arr.setOf(a.New(KindPlaceholder, Loc{}))
	root = a.AddArray(ptr, arr)
	assert.Equal(t, KindPointer, root.Kind)
	assert.Equal(t, KindArray, root.Of.Kind)
}

func TestAddFunctionAfterSuffix(t *testing.T) {
	// f()[3]: a suffix after a function binds into its return slot.
	a := NewArena()
	fn := a.New(KindFunction, Loc{})
	ret := a.New(KindPlaceholder, Loc{})
	root := a.AddFunction(nil, ret, fn)

	arr := a.New(KindArray, Loc{})
	arr.ArraySize = 3
	arr.setOf(a.New(KindPlaceholder, Loc{}))
	root = a.AddArray(root, arr)

	require.Equal(t, KindFunction, root.Kind)
	assert.Equal(t, KindArray, root.Of.Kind)
}

func TestPatchPlaceholder(t *testing.T) {
	a := NewArena()
	spec := a.New(KindBuiltin, Loc{})
	spec.Type = TInt

	a.depth = 1
	ptr := a.New(KindPointer, Loc{})
	ptr.setOf(a.New(KindPlaceholder, Loc{}))

	root := a.PatchPlaceholder(spec, ptr)
	require.Equal(t, KindPointer, root.Kind)
	assert.Same(t, spec, root.Of)

	// A type at or below the declarator's depth refuses to patch.
	a = NewArena()
	a.depth = 1
	deep := a.New(KindBuiltin, Loc{})
	deep.Type = TInt
	shallow := a.New(KindPointer, Loc{})
	shallow.Depth = 0
	shallow.setOf(a.New(KindPlaceholder, Loc{}))
	assert.Same(t, deep, a.PatchPlaceholder(deep, shallow))

	// No declarator at all: the type is the whole declaration.
	a = NewArena()
	bare := a.New(KindBuiltin, Loc{})
	assert.Same(t, bare, a.PatchPlaceholder(bare, nil))
}

func TestHasPlaceholder(t *testing.T) {
	a := NewArena()
	fn := a.New(KindFunction, Loc{})
	ret := a.New(KindBuiltin, Loc{})
	ret.Type = TVoid
	fn.setOf(ret)
	assert.False(t, fn.HasPlaceholder())

	param := a.New(KindPointer, Loc{})
	param.setOf(a.New(KindPlaceholder, Loc{}))
	param.Parent = fn
	fn.Params = append(fn.Params, param)
	assert.True(t, fn.HasPlaceholder())
}

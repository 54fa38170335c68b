package cdecl

import "fmt"

// The builder composes declarator ASTs incrementally while a grammar walks
// input. C declarator syntax is discovered outside-in but means inside-out
// ("int a[2][3]" nests only once both dimensions are seen; "int (*a)[2]" is
// known to be pointer-to-array only after the ")["), so each not-yet-known
// position is held by a KindPlaceholder node until the structure resolves.
//
// A node's Depth counts how many parentheses deep it was created and decides
// precedence during composition: a parenthesized pointer is deeper than a
// following array, so the array splices inside it; an unparenthesized
// pointer is not, so the array becomes its parent.
//
// Violations of the builder's invariants are programming errors in the
// driving grammar, not user errors, and panic.

// assertf panics with a formatted internal-consistency message.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("cdecl: internal error: "+format, args...))
	}
}

// AddArray appends array to the deepest currently open slot of ast and
// returns the AST to use as the new root. If the slot holds a placeholder,
// the array takes the placeholder's position and the placeholder becomes
// the array's own open slot.
func (a *Arena) AddArray(ast, array *AST) *AST {
	assertf(array != nil && array.Kind == KindArray, "AddArray of non-array")
	if ast == nil {
		return array
	}

	switch {
	case ast.Kind == KindArray:
		return a.appendArray(ast, array)

	case ast.Kind.Is(KindAnyFuncLike):
		// int f()[3]: suffixes bind left to right, so the array lands in
		// the return slot. The checker rejects it later.
		a.AddArray(ast.Of, array)
		return ast

	case ast.Kind == KindPlaceholder:
		if p := ast.Parent; p != nil {
			p.setOf(array)
		}
		assertf(array.Of == nil || array.Of.Kind == KindPlaceholder,
			"array slot already resolved")
		array.setOf(ast)
		return array

	case ast.Kind.Is(KindAnyPointer|KindAnyReference) && ast.Depth > array.Depth:
		// int (*a)[3]: the parenthesized pointer binds inside the array.
		a.AddArray(ast.Of, array)
		return ast

	default:
		// int *a[3]: the array becomes the parent, array of ast.
		assertf(array.Of == nil || array.Of.Kind == KindPlaceholder,
			"array slot already resolved")
		array.setOf(ast)
		return array
	}
}

// appendArray inserts array as the innermost dimension of an existing array
// chain: adding [3] to "a[2]" yields array 2 of array 3 of <open slot>.
func (a *Arena) appendArray(ast, array *AST) *AST {
	if of := ast.Of; of != nil && of.Kind == KindArray {
		a.appendArray(of, array)
		return ast
	}
	inner := ast.Of
	assertf(inner == nil || inner.Kind == KindPlaceholder,
		"array slot already resolved")
	ast.setOf(array)
	array.setOf(inner)
	return ast
}

// AddFunction binds fn's return slot and splices fn into ast exactly as
// AddArray splices arrays: into the deepest open slot when ast is
// parenthesized deeper than fn, else as the new parent of ast. ret fills
// fn's return slot when fn lands on a placeholder.
func (a *Arena) AddFunction(ast, ret, fn *AST) *AST {
	assertf(fn != nil && fn.Kind.Is(KindAnyFuncLike), "AddFunction of non-function")
	if ast == nil {
		fn.setOf(ret)
		return fn
	}

	switch {
	case ast.Kind == KindPlaceholder:
		if p := ast.Parent; p != nil {
			p.setOf(fn)
		}
		assertf(fn.Of == nil || fn.Of.Kind == KindPlaceholder,
			"function return slot already resolved")
		fn.setOf(ret)
		return fn

	case ast.Kind.Is(KindArray | KindAnyFuncLike):
		// int a[3](): a suffix after another suffix binds inside it.
		a.AddFunction(ast.Of, ret, fn)
		return ast

	case ast.Kind.Is(KindAnyPointer|KindAnyReference) &&
		ast.Depth > fn.Depth:
		// int (*f)(): the parenthesized pointer binds inside the function.
		a.AddFunction(ast.Of, ret, fn)
		return ast

	default:
		// int *f(): the function becomes the parent, function returning ast.
		assertf(fn.Of == nil || fn.Of.Kind == KindPlaceholder,
			"function return slot already resolved")
		fn.setOf(ast)
		return fn
	}
}

// PatchPlaceholder replaces the one remaining reachable placeholder inside
// declAST with typeAST, but only if typeAST has no parent yet and is
// structurally shallower than declAST; a deeper type never patches into a
// shallower declarator, which prevents re-patching an already complete
// tree. Returns declAST if patching occurred, else typeAST (which covers
// the no-declarator case of a bare type name).
func (a *Arena) PatchPlaceholder(typeAST, declAST *AST) *AST {
	assertf(typeAST != nil, "PatchPlaceholder of nil type")
	if declAST == nil {
		return typeAST
	}

	if typeAST.Parent == nil {
		if ph := declAST.FindKind(VisitDown, KindPlaceholder); ph != nil {
			if typeAST.Depth >= declAST.Depth {
				return typeAST
			}
			if p := ph.Parent; p != nil {
				p.setOf(typeAST)
				return declAST
			}
			// The declarator was nothing but the placeholder.
			return typeAST
		}
	}
	return typeAST
}

// HasPlaceholder reports whether any placeholder is reachable from ast,
// including inside function parameters. A finished declaration must have
// none; the driving grammar is broken otherwise.
func (ast *AST) HasPlaceholder() bool {
	if ast == nil {
		return false
	}
	if ast.Kind == KindPlaceholder {
		return true
	}
	for _, p := range ast.Params {
		if p.HasPlaceholder() {
			return true
		}
	}
	return ast.Of.HasPlaceholder()
}

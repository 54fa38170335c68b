package cdecl

// VisitDir selects the direction of an AST traversal.
type VisitDir int

const (
	// VisitDown walks from a node toward the leaves along the single
	// of/to child chain.
	VisitDown VisitDir = iota
	// VisitUp walks from a node toward the root along parent links.
	VisitUp
)

// step returns the next node in the given direction, or nil.
func (ast *AST) step(dir VisitDir) *AST {
	if dir == VisitUp {
		return ast.Parent
	}
	return ast.Of
}

// FindKind returns the first node whose kind matches mask, traversing from
// ast in the given direction, or nil.
func (ast *AST) FindKind(dir VisitDir, mask Kind) *AST {
	for n := ast; n != nil; n = n.step(dir) {
		if n.Kind.Is(mask) {
			return n
		}
	}
	return nil
}

// FindName returns the first non-empty scoped name encountered traversing
// from ast in the given direction, or nil.
func (ast *AST) FindName(dir VisitDir) *ScopedName {
	for n := ast; n != nil; n = n.step(dir) {
		if !n.Name.Empty() {
			return &n.Name
		}
	}
	return nil
}

// TakeName removes and returns the first name reachable downward from ast,
// so it can be attached to another node. Returns an empty name if none.
func (ast *AST) TakeName() ScopedName {
	for n := ast; n != nil; n = n.Of {
		if !n.Name.Empty() {
			name := n.Name
			n.Name = ScopedName{}
			return name
		}
	}
	return ScopedName{}
}

// Untypedef follows typedef indirection until a non-typedef node, so a
// pointer to a typedef of an array correctly reports as pointer to array.
func (ast *AST) Untypedef() *AST {
	for ast != nil && ast.Kind == KindTypedef && ast.TypedefFor != nil {
		ast = ast.TypedefFor.AST
	}
	return ast
}

// Unpointer returns what ast points to if ast is a pointer (possibly via
// typedef indirection), else nil.
func (ast *AST) Unpointer() *AST {
	ast = ast.Untypedef()
	if ast == nil || ast.Kind != KindPointer {
		return nil
	}
	return ast.Of.Untypedef()
}

// Unreference returns ast with any chain of references (and typedefs of
// references) stripped.
func (ast *AST) Unreference() *AST {
	ast = ast.Untypedef()
	for ast != nil && ast.Kind.Is(KindAnyReference) {
		ast = ast.Of.Untypedef()
	}
	return ast
}

// IsKindOrReferenceTo reports whether ast, or a reference or rvalue
// reference to it, matches mask.
func (ast *AST) IsKindOrReferenceTo(mask Kind) bool {
	if ast == nil {
		return false
	}
	if ast.Kind.Is(mask) {
		return true
	}
	un := ast.Unreference()
	return un != nil && un.Kind.Is(mask)
}

// IsPointerTo reports whether ast is a pointer to a type that, after
// masking with mask, exactly equals equal. Callers rely on the exact-match
// behavior with a full mask and the masked behavior with a partial one, so
// the two-argument contract is deliberate; do not collapse it into a single
// approximate predicate.
func (ast *AST) IsPointerTo(mask, equal TypeID) bool {
	to := ast.Unpointer()
	return to != nil && to.Type&mask == equal
}

// IsBuiltin reports whether ast is (possibly via typedefs) a built-in type
// whose base bits are exactly base.
func (ast *AST) IsBuiltin(base TypeID) bool {
	ast = ast.Untypedef()
	return ast != nil && ast.Kind == KindBuiltin && ast.Type&TMaskBase == base
}

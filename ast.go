package cdecl

// Kind identifies what an AST node is. A node stores exactly one kind; the
// bitwise-or of kinds is used only to test whether a node is any one of a
// set of kinds, never stored on a node.
type Kind uint32

// AST node kinds.
const (
	// KindPlaceholder is a temporary node standing in for a not-yet-known
	// declarator position. It must never survive into a finished AST.
	KindPlaceholder Kind = 1 << iota
	// KindBuiltin is a built-in type, e.g. void, char, int.
	KindBuiltin
	// KindClassStructUnion is a class, struct, or union.
	KindClassStructUnion
	// KindName is a name-only node, used for untyped K&R function
	// parameters.
	KindName
	// KindTypedef is a reference to a previously defined type, e.g. size_t.
	KindTypedef
	// KindVariadic is a "..." function parameter.
	KindVariadic
	// KindArray is an array.
	KindArray
	// KindEnum is an enum; a parent kind because C++11 enums can be "of" a
	// fixed underlying type.
	KindEnum
	// KindPointer is a C or C++ pointer.
	KindPointer
	// KindPointerToMember is a C++ pointer-to-member.
	KindPointerToMember
	// KindReference is a C++ reference.
	KindReference
	// KindRvalueReference is a C++11 rvalue reference.
	KindRvalueReference
	// KindConstructor is a C++ constructor; it has parameters but no return
	// type.
	KindConstructor
	// KindDestructor is a C++ destructor.
	KindDestructor
	// KindAppleBlock is an Apple block.
	KindAppleBlock
	// KindFunction is a function.
	KindFunction
	// KindOperator is a C++ overloaded operator.
	KindOperator
	// KindUserDefConversion is a C++ user-defined conversion operator.
	KindUserDefConversion
	// KindUserDefLiteral is a C++11 user-defined literal.
	KindUserDefLiteral
)

// Kind membership masks, for tests only.
const (
	KindAnyECSU      = KindEnum | KindClassStructUnion
	KindAnyFuncLike  = KindAppleBlock | KindConstructor | KindDestructor |
		KindFunction | KindOperator | KindUserDefConversion | KindUserDefLiteral
	KindAnyPointer   = KindPointer | KindPointerToMember
	KindAnyReference = KindReference | KindRvalueReference
	KindAnyParent    = KindAnyFuncLike | KindAnyPointer | KindAnyReference |
		KindArray | KindEnum
	KindAnyReferrer = KindAnyParent | KindTypedef
	// KindAnyBitField are the kinds that may carry a bit-field width.
	KindAnyBitField = KindBuiltin | KindEnum | KindTypedef
)

// String returns the pseudo-English name of k.
func (k Kind) String() string {
	switch k {
	case KindPlaceholder:
		return "placeholder"
	case KindBuiltin:
		return "built-in type"
	case KindClassStructUnion:
		return "class, struct, or union"
	case KindName:
		return "name"
	case KindTypedef:
		return "typedef"
	case KindVariadic:
		return "variadic"
	case KindArray:
		return "array"
	case KindEnum:
		return "enum"
	case KindPointer:
		return "pointer"
	case KindPointerToMember:
		return "pointer to member"
	case KindReference:
		return "reference"
	case KindRvalueReference:
		return "rvalue reference"
	case KindConstructor:
		return "constructor"
	case KindDestructor:
		return "destructor"
	case KindAppleBlock:
		return "block"
	case KindFunction:
		return "function"
	case KindOperator:
		return "operator"
	case KindUserDefConversion:
		return "user-defined conversion operator"
	case KindUserDefLiteral:
		return "user-defined literal"
	}
	return "unknown kind"
}

// Is reports whether k is any one of the kinds in mask.
func (k Kind) Is(mask Kind) bool { return k&mask != 0 }

// Array element count markers for AST.ArraySize.
const (
	// ArraySizeNone marks an array of unspecified size, "a[]".
	ArraySizeNone = -1
	// ArraySizeVariable marks a C99 variable length array, "a[*]".
	ArraySizeVariable = -2
)

// AST is one node of a declarator abstract syntax tree. All nodes of one
// declaration live in a single Arena and are discarded together; the Parent
// pointer is a non-owning back-reference for upward traversal.
type AST struct {
	ID     int        // Unique node id within the arena
	Kind   Kind       // What this node is
	Loc    Loc        // Source position
	Type   TypeID     // Type bits carried by this node
	Name   ScopedName // Declared name, if any
	Parent *AST       // Enclosing parent node, nil at the root
	Depth  int        // How many () deep this node was created

	// Of is the single of/to/pointee child of parent kinds, the fixed
	// underlying type of enums, and the return type of function-like kinds.
	Of *AST
	// Params are the parameters of function-like kinds.
	Params []*AST
	// ArraySize is the element count of KindArray nodes: >= 0 for a known
	// count, ArraySizeNone, or ArraySizeVariable.
	ArraySize int
	// BitWidth is the bit-field width of KindAnyBitField nodes, 0 if none.
	BitWidth int
	// ClassName is the class of a KindPointerToMember node.
	ClassName ScopedName
	// TagName is the tag of KindClassStructUnion and KindEnum nodes.
	TagName ScopedName
	// TypedefFor is the defined type a KindTypedef node refers to.
	TypedefFor *Typedef
	// OperName is the operator token of KindOperator nodes, e.g. "==".
	OperName string
}

// IsParent reports whether the node's kind has an of/to child slot.
func (ast *AST) IsParent() bool { return ast.Kind.Is(KindAnyParent) }

// hasParam reports whether n is one of ast's parameters.
func (ast *AST) hasParam(n *AST) bool {
	for _, p := range ast.Params {
		if p == n {
			return true
		}
	}
	return false
}

// setOf sets ast's child slot and the child's parent back-reference.
func (ast *AST) setOf(child *AST) {
	ast.Of = child
	if child != nil {
		child.Parent = ast
	}
}

// root returns the root of the tree containing ast.
func (ast *AST) root() *AST {
	for ast.Parent != nil {
		ast = ast.Parent
	}
	return ast
}

// Arena owns every AST node of one declaration. The whole arena is released
// as a unit once the declaration has been rendered or abandoned; only
// typedef payloads are copied out into the persistent table.
type Arena struct {
	nodes []*AST
	depth int // current () nesting depth for newly created nodes
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// New allocates a node of the given kind at loc.
func (a *Arena) New(kind Kind, loc Loc) *AST {
	ast := &AST{
		ID:        len(a.nodes) + 1,
		Kind:      kind,
		Loc:       loc,
		Depth:     a.depth,
		ArraySize: ArraySizeNone,
	}
	a.nodes = append(a.nodes, ast)
	return ast
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }

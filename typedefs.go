package cdecl

import "fmt"

// Typedef is one entry of the persistent typedef table: a defined type name
// and the AST it stands for. The AST is owned by the table and outlives the
// declaration that created it.
type Typedef struct {
	Name        ScopedName // Fully scoped defined name
	AST         *AST       // What the name is defined as
	UserDefined bool       // False for the predefined standard typedefs
}

// TypedefTable is the persistent symbol table of defined types, keyed by
// fully scoped name. It is insert-only during a session except for explicit
// removal via Undeclare.
type TypedefTable struct {
	byName map[string]*Typedef
	arena  *Arena // owns the ASTs of every entry
}

// NewTypedefTable returns a table seeded with the standard library typedefs
// (size_t, ptrdiff_t, the stdint types, ...).
func NewTypedefTable() *TypedefTable {
	t := &TypedefTable{
		byName: make(map[string]*Typedef),
		arena:  NewArena(),
	}
	t.seed()
	return t
}

// Find returns the typedef with the given fully scoped name, or nil.
func (t *TypedefTable) Find(name string) *Typedef {
	return t.byName[name]
}

// Define copies ast into the table under name. Redefining an existing name
// is an error; predefined names may not be shadowed.
func (t *TypedefTable) Define(name ScopedName, ast *AST) error {
	key := name.FullName()
	if _, ok := t.byName[key]; ok {
		return fmt.Errorf("%w: %q already defined", ErrConflict, key)
	}
	t.byName[key] = &Typedef{
		Name:        name,
		AST:         t.arena.Dup(ast),
		UserDefined: true,
	}
	return nil
}

// Undeclare removes a user-defined type. Predefined types cannot be
// removed.
func (t *TypedefTable) Undeclare(name string) error {
	td, ok := t.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	if !td.UserDefined {
		return fmt.Errorf("%w: %q is predefined", ErrConflict, name)
	}
	delete(t.byName, name)
	return nil
}

// Names returns every defined name, for completion and "show" listings.
func (t *TypedefTable) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	return names
}

// seed installs the predefined standard typedefs as built-in-backed
// entries. The exact underlying widths don't matter for translation, only
// that the names resolve to integer built-ins.
func (t *TypedefTable) seed() {
	builtin := func(base TypeID) *AST {
		ast := t.arena.New(KindBuiltin, Loc{})
		ast.Type = base
		return ast
	}
	entries := []struct {
		name string
		base TypeID
	}{
		{"size_t", TUnsigned | TLong},
		{"ssize_t", TLong},
		{"ptrdiff_t", TLong},
		{"intmax_t", TLongLong},
		{"uintmax_t", TUnsigned | TLongLong},
		{"intptr_t", TLong},
		{"uintptr_t", TUnsigned | TLong},
		{"int8_t", TSigned | TChar},
		{"int16_t", TShort},
		{"int32_t", TInt},
		{"int64_t", TLongLong},
		{"uint8_t", TUnsigned | TChar},
		{"uint16_t", TUnsigned | TShort},
		{"uint32_t", TUnsigned | TInt},
		{"uint64_t", TUnsigned | TLongLong},
		{"wint_t", TInt},
		{"wctype_t", TUnsigned | TLong},
		{"time_t", TLong},
		{"clock_t", TLong},
	}
	for _, e := range entries {
		t.byName[e.name] = &Typedef{
			Name: NewScopedName(e.name),
			AST:  builtin(e.base),
		}
	}
}

// Dup deep-copies ast (and everything reachable from it) into arena a.
func (a *Arena) Dup(ast *AST) *AST {
	if ast == nil {
		return nil
	}
	out := a.New(ast.Kind, ast.Loc)
	out.Type = ast.Type
	out.Name = ast.Name.Dup()
	out.ArraySize = ast.ArraySize
	out.BitWidth = ast.BitWidth
	out.ClassName = ast.ClassName.Dup()
	out.TagName = ast.TagName.Dup()
	out.TypedefFor = ast.TypedefFor
	out.OperName = ast.OperName
	out.setOf(a.Dup(ast.Of))
	for _, p := range ast.Params {
		dup := a.Dup(p)
		dup.Parent = out
		out.Params = append(out.Params, dup)
	}
	return out
}

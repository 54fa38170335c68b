package cdecl

import (
	"strconv"
	"strings"
)

// engPrinter renders an AST as pseudo-English. Unlike gibberish, English
// reads outside-in in the same order the of-chain is stored, so rendering
// is a plain walk from the root to the leaf emitting one phrase per node.
type engPrinter struct {
	opts Options
}

// English renders ast as a complete pseudo-English sentence: "declare
// <name> as <type>" for named declarations, "define <name> as <type>" for
// typedefs, or just the type clause for abstract declarators.
func English(ast *AST, opt *Options) string {
	e := engPrinter{opts: opt.normalize()}

	verb := "declare"
	if hasTypedefBit(ast) {
		verb = "define"
	}
	if name := englishName(ast); name != "" {
		return verb + " " + name + " as " + e.clause(ast)
	}
	return e.clause(ast)
}

// EnglishClause renders only the type clause of ast, without a verb or
// name, for embedding in cast phrasing.
func EnglishClause(ast *AST, opt *Options) string {
	e := engPrinter{opts: opt.normalize()}
	return e.clause(ast)
}

// englishName returns the name a declaration is of, with operator kinds
// spelled the way they are declared.
func englishName(ast *AST) string {
	if op := ast.FindKind(VisitDown, KindOperator); op != nil {
		scope := ""
		if name := ast.FindName(VisitDown); name != nil {
			scope = name.FullName() + "::"
		}
		return scope + "operator" + op.OperName
	}
	if conv := ast.FindKind(VisitDown, KindUserDefConversion); conv != nil {
		if name := ast.FindName(VisitDown); name != nil {
			return name.FullName()
		}
		return "conversion operator"
	}
	if name := ast.FindName(VisitDown); name != nil {
		return name.FullName()
	}
	return ""
}

// hasTypedefBit reports whether any node in the of-chain carries the
// typedef storage class.
func hasTypedefBit(ast *AST) bool {
	for n := ast; n != nil; n = n.Of {
		if n.Type&TTypedef != 0 {
			return true
		}
	}
	return false
}

// clause renders the type clause, hoisting storage classes found on the
// leaf type to the front so "static int *p" comes out as "static pointer
// to int", not "pointer to static int".
func (e *engPrinter) clause(ast *AST) string {
	var parts []string

	// Enums count as leaves here: their Of is a fixed underlying type, not
	// a declarator child.
	leafMask := ^(KindAnyParent &^ KindEnum)
	if leaf := ast.FindKind(VisitDown, leafMask); leaf != nil {
		if storage := leaf.Type & TMaskAnyStorage &^ TTypedef; storage != 0 {
			parts = append(parts, TypeNameEnglish(storage))
		}
	}

walk:
	for n := ast; n != nil; n = n.Of {
		switch n.Kind {
		case KindPointer:
			parts = append(parts, e.qualWords(n.Type)...)
			parts = append(parts, "pointer to")

		case KindPointerToMember:
			parts = append(parts, e.qualWords(n.Type)...)
			parts = append(parts,
				"pointer to member of class "+n.ClassName.FullName())

		case KindReference:
			parts = append(parts, e.qualWords(n.Type)...)
			parts = append(parts, "reference to")

		case KindRvalueReference:
			parts = append(parts, e.qualWords(n.Type)...)
			parts = append(parts, "rvalue reference to")

		case KindArray:
			parts = append(parts, e.arrayWords(n)...)

		case KindFunction, KindAppleBlock, KindOperator, KindUserDefLiteral:
			if words := TypeNameEnglish(n.Type); words != "" {
				parts = append(parts, words)
			}
			noun := "function"
			switch n.Kind {
			case KindAppleBlock:
				noun = "block"
			case KindOperator:
				noun = "operator"
			case KindUserDefLiteral:
				noun = "user-defined literal"
			}
			parts = append(parts, noun)
			if ps := e.paramsClause(n); ps != "" {
				parts = append(parts, ps)
			}
			if n.Of != nil {
				parts = append(parts, "returning")
			}

		case KindConstructor, KindDestructor:
			if words := TypeNameEnglish(n.Type); words != "" {
				parts = append(parts, words)
			}
			noun := "constructor"
			if n.Kind == KindDestructor {
				noun = "destructor"
			}
			parts = append(parts, noun)
			if ps := e.paramsClause(n); ps != "" {
				parts = append(parts, ps)
			}

		case KindUserDefConversion:
			if words := TypeNameEnglish(n.Type); words != "" {
				parts = append(parts, words)
			}
			parts = append(parts, "user-defined conversion operator returning")

		case KindVariadic:
			parts = append(parts, "...")

		case KindName:
			parts = append(parts, n.Name.FullName())

		default:
			parts = append(parts, e.leafWords(n)...)
			break walk
		}
	}
	return strings.Join(parts, " ")
}

// qualWords returns the cv-qualifiers of a pointer-like node as English
// words.
func (e *engPrinter) qualWords(t TypeID) []string {
	if q := t & TMaskQual; q != 0 {
		return []string{TypeNameEnglish(q)}
	}
	return nil
}

// arrayWords phrases one array dimension: "array 3 of", "variable array
// of", "array of".
func (e *engPrinter) arrayWords(ast *AST) []string {
	words := []string{"array"}
	if q := ast.Type & (TMaskStorage | TMaskQual); q != 0 {
		words = append(words, TypeNameEnglish(q))
	}
	switch {
	case ast.ArraySize >= 0:
		words = append(words, strconv.Itoa(ast.ArraySize))
	case ast.ArraySize == ArraySizeVariable:
		words = []string{"variable", strings.Join(words, " ")}
	}
	words = append(words, "of")
	return []string{strings.Join(words, " ")}
}

// leafWords phrases a leaf type node, with storage classes stripped (they
// were hoisted to the front of the clause) and a trailing bit-field width
// if present.
func (e *engPrinter) leafWords(ast *AST) []string {
	var words []string

	t := ast.Type &^ TMaskAnyStorage
	switch ast.Kind {
	case KindTypedef:
		if q := t & TMaskQual; q != 0 {
			words = append(words, TypeNameEnglish(q))
		}
		if ast.TypedefFor != nil {
			words = append(words, ast.TypedefFor.Name.FullName())
		}

	case KindClassStructUnion, KindEnum:
		words = append(words, TypeNameEnglish(t))
		if tag := ast.TagName.FullName(); tag != "" {
			words = append(words, tag)
		}
		if ast.Kind == KindEnum && ast.Of != nil {
			words = append(words, "of type", e.clause(ast.Of))
		}

	default:
		if w := TypeNameEnglish(t); w != "" {
			words = append(words, w)
		}
	}

	if ast.BitWidth > 0 {
		words = append(words, "width", strconv.Itoa(ast.BitWidth), "bits")
	}
	return words
}

// paramsClause phrases a parameter list: "(x as int, y as pointer to
// char)". Unnamed parameters get a bare clause; an empty list returns "".
func (e *engPrinter) paramsClause(fn *AST) string {
	if len(fn.Params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		switch p.Kind {
		case KindVariadic:
			parts = append(parts, "...")
		case KindName:
			parts = append(parts, p.Name.FullName())
		default:
			if name := p.FindName(VisitDown); name != nil {
				parts = append(parts, name.FullName()+" as "+e.clause(p))
			} else {
				parts = append(parts, e.clause(p))
			}
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

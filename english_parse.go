package cdecl

import (
	"fmt"
	"strconv"
)

// ParseEnglish parses a pseudo-English type clause such as "pointer to
// array 3 of int" into an AST. Unlike gibberish, English reads outside-in
// in the order the tree is stored, so the AST is built directly with no
// placeholders.
func ParseEnglish(clause string, opt *Options) (*AST, error) {
	p := newEngParser(clause, opt)
	ast, err := p.clause()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.tok.Type != tokEOF {
		return nil, p.errorf("unexpected %q after type", p.tok.Lit)
	}
	return ast, nil
}

// engParser is the recursive-descent parser for the pseudo-English grammar.
type engParser struct {
	lex   *lexer
	tok   token
	err   error
	opts  Options
	arena *Arena
}

func newEngParser(clause string, opt *Options) *engParser {
	lex := newStringLexer(clause)
	lex.hyphenIdents = true
	p := &engParser{lex: lex, opts: opt.normalize(), arena: NewArena()}
	p.advance()
	return p
}

func (p *engParser) advance() {
	tok, err := p.lex.next()
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		p.tok = token{Type: tokEOF, Loc: p.tok.Loc}
		return
	}
	p.tok = tok
}

func (p *engParser) gotIdent(lit string) bool {
	if p.tok.Type != tokIdent || englishSynonym(p.tok.Lit) != lit {
		return false
	}
	p.advance()
	return true
}

func (p *engParser) expectIdent(lit string) error {
	if !p.gotIdent(lit) {
		return p.errorf("expected %q, got %q", lit, p.tok.Lit)
	}
	return nil
}

func (p *engParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s",
		ErrParse, p.tok.Loc, fmt.Sprintf(format, args...))
}

// clause parses one type clause. Leading qualifier and storage words
// accumulate until a noun decides what they attach to: qualifiers stay on
// pointer-like nouns, storage classes sink to the leaf type.
func (p *engParser) clause() (*AST, error) {
	var lead TypeID
	loc := p.tok.Loc

	for p.tok.Type == tokIdent {
		lit := englishSynonym(p.tok.Lit)
		switch lit {
		case "pointer":
			p.advance()
			if err := p.expectIdent("to"); err != nil {
				return nil, err
			}
			if p.gotIdent("member") {
				return p.memberPointer(loc, lead)
			}
			return p.referrer(KindPointer, loc, lead)

		case "reference":
			p.advance()
			if err := p.expectIdent("to"); err != nil {
				return nil, err
			}
			return p.referrer(KindReference, loc, lead)

		case "rvalue":
			p.advance()
			if err := p.expectIdent("reference"); err != nil {
				return nil, err
			}
			if err := p.expectIdent("to"); err != nil {
				return nil, err
			}
			return p.referrer(KindRvalueReference, loc, lead)

		case "array":
			p.advance()
			return p.array(loc, lead, false)

		case "variable":
			p.advance()
			p.gotIdent("length")
			if err := p.expectIdent("array"); err != nil {
				return nil, err
			}
			return p.array(loc, lead, true)

		case "function", "block":
			kind := KindFunction
			if lit == "block" {
				kind = KindAppleBlock
			}
			p.advance()
			return p.funcLike(kind, loc, lead)

		case "constructor", "destructor":
			kind := KindConstructor
			if lit == "destructor" {
				kind = KindDestructor
			}
			p.advance()
			return p.funcLike(kind, loc, lead)

		case "struct", "union", "class":
			return p.ecsu(lit, lead)

		case "enum":
			return p.enum(lead)

		case "pure":
			p.advance()
			p.gotIdent("virtual")
			t, err := p.addType(lead, TPureVirtual|TVirtual, loc)
			if err != nil {
				return nil, err
			}
			lead = t
			continue
		}

		if bit, ok := englishTypeWord(lit, p.opts.Lang); ok {
			t, err := p.addType(lead, bit, p.tok.Loc)
			if err != nil {
				return nil, err
			}
			lead = t
			p.advance()
			continue
		}

		if td := p.opts.Typedefs.Find(p.tok.Lit); td != nil {
			node := p.arena.New(KindTypedef, p.tok.Loc)
			node.TypedefFor = td
			node.Type = lead | TTypedefType
			p.advance()
			return node, p.bitWidthSuffix(node)
		}

		return nil, p.errorf("%q: unknown type", p.tok.Lit)
	}

	if lead != 0 {
		node := p.arena.New(KindBuiltin, loc)
		node.Type = lead
		return node, p.bitWidthSuffix(node)
	}
	return nil, p.errorf("expected a type, got %q", p.tok.Lit)
}

// addType wraps AddType with a position.
func (p *engParser) addType(dst, add TypeID, loc Loc) (TypeID, error) {
	t, err := AddType(dst, add, p.opts.Lang)
	if err != nil {
		return 0, fmt.Errorf("%w at %s", err, loc)
	}
	return t, nil
}

// referrer builds a pointer or reference node over the clause that follows
// it. Qualifier words collected so far stay on the node; storage words sink
// to the leaf.
func (p *engParser) referrer(kind Kind, loc Loc, lead TypeID) (*AST, error) {
	sub, err := p.clause()
	if err != nil {
		return nil, err
	}
	node := p.arena.New(kind, loc)
	node.Type = lead & TMaskQual
	node.setOf(sub)
	return node, p.sinkStorage(sub, lead&^TMaskQual, loc)
}

// memberPointer parses the rest of "pointer to member of class C clause".
func (p *engParser) memberPointer(loc Loc, lead TypeID) (*AST, error) {
	if err := p.expectIdent("of"); err != nil {
		return nil, err
	}
	if !p.gotIdent("class") && !p.gotIdent("struct") {
		return nil, p.errorf("expected %q, got %q", "class", p.tok.Lit)
	}
	class, err := p.engScopedName()
	if err != nil {
		return nil, err
	}
	sub, err := p.clause()
	if err != nil {
		return nil, err
	}
	node := p.arena.New(KindPointerToMember, loc)
	node.Type = lead & TMaskQual
	node.ClassName = class
	node.setOf(sub)
	return node, p.sinkStorage(sub, lead&^TMaskQual, loc)
}

// array parses the rest of "array [quals] [size] of clause".
func (p *engParser) array(loc Loc, lead TypeID, variable bool) (*AST, error) {
	node := p.arena.New(KindArray, loc)
	if variable {
		node.ArraySize = ArraySizeVariable
	}

	for p.tok.Type == tokIdent {
		lit := englishSynonym(p.tok.Lit)
		if lit == "of" {
			break
		}
		bit, ok := typeKeyword(lit, p.opts.Lang)
		if !ok || bit&(TMaskQual|TStatic) == 0 {
			return nil, p.errorf("unexpected %q in array", p.tok.Lit)
		}
		node.Type |= bit
		p.advance()
	}
	if p.tok.Type == tokNumber {
		size, _ := strconv.Atoi(p.tok.Lit)
		node.ArraySize = size
		p.advance()
	}
	if err := p.expectIdent("of"); err != nil {
		return nil, err
	}

	sub, err := p.clause()
	if err != nil {
		return nil, err
	}
	node.setOf(sub)
	return node, p.sinkStorage(sub, lead, loc)
}

// funcLike parses the rest of "function [(params)] [returning clause]".
// Storage and function-specifier words collected before the noun stay on
// the node itself.
func (p *engParser) funcLike(kind Kind, loc Loc, lead TypeID) (*AST, error) {
	node := p.arena.New(kind, loc)
	node.Type = lead

	if p.tok.Type == tokLParen {
		params, err := p.params()
		if err != nil {
			return nil, err
		}
		for _, param := range params {
			param.Parent = node
		}
		node.Params = params
	}

	switch kind {
	case KindConstructor, KindDestructor:
		return node, nil
	}

	if p.gotIdent("returning") {
		sub, err := p.clause()
		if err != nil {
			return nil, err
		}
		node.setOf(sub)
		return node, nil
	}
	// "declare f as function" alone: implicit int.
	ret := p.arena.New(KindBuiltin, loc)
	ret.Type = TInt
	node.setOf(ret)
	return node, nil
}

// ecsu parses "struct|union|class tag".
func (p *engParser) ecsu(word string, lead TypeID) (*AST, error) {
	node := p.arena.New(KindClassStructUnion, p.tok.Loc)
	switch word {
	case "struct":
		node.Type = TStruct
	case "union":
		node.Type = TUnion
	case "class":
		node.Type = TClass
	}
	node.Type |= lead
	p.advance()
	tag, err := p.engScopedName()
	if err != nil {
		return nil, err
	}
	node.TagName = tag
	return node, p.bitWidthSuffix(node)
}

// enum parses "enum tag [of type clause]".
func (p *engParser) enum(lead TypeID) (*AST, error) {
	node := p.arena.New(KindEnum, p.tok.Loc)
	node.Type = TEnum | lead
	p.advance()
	tag, err := p.engScopedName()
	if err != nil {
		return nil, err
	}
	node.TagName = tag
	if p.gotIdent("of") {
		if err := p.expectIdent("type"); err != nil {
			return nil, err
		}
		under, err := p.clause()
		if err != nil {
			return nil, err
		}
		node.setOf(under)
	}
	return node, p.bitWidthSuffix(node)
}

// params parses "( param, param, ... )". Each parameter is "name as
// clause", a bare clause, "...", or a lone K&R name.
func (p *engParser) params() ([]*AST, error) {
	p.advance() // "("
	var params []*AST
	for p.tok.Type != tokRParen {
		switch {
		case p.tok.Type == tokEllipsis:
			v := p.arena.New(KindVariadic, p.tok.Loc)
			params = append(params, v)
			p.advance()

		case p.tok.Type == tokIdent && !p.typeStarts(p.tok.Lit):
			name := NewScopedName(p.tok.Lit)
			loc := p.tok.Loc
			p.advance()
			if p.gotIdent("as") {
				sub, err := p.clause()
				if err != nil {
					return nil, err
				}
				sub.Name = name
				params = append(params, sub)
			} else {
				kr := p.arena.New(KindName, loc)
				kr.Name = name
				params = append(params, kr)
			}

		default:
			sub, err := p.clause()
			if err != nil {
				return nil, err
			}
			params = append(params, sub)
		}
		if p.tok.Type != tokComma {
			break
		}
		p.advance()
	}
	if p.tok.Type != tokRParen {
		return nil, p.errorf(`expected ")", got %q`, p.tok.Lit)
	}
	p.advance()
	return params, nil
}

// typeStarts reports whether lit can begin a type clause.
func (p *engParser) typeStarts(lit string) bool {
	switch englishSynonym(lit) {
	case "pointer", "reference", "rvalue", "array", "variable", "function",
		"block", "constructor", "destructor", "struct", "union", "class",
		"enum", "pure":
		return true
	}
	if _, ok := englishTypeWord(lit, p.opts.Lang); ok {
		return true
	}
	return p.opts.Typedefs.Find(lit) != nil
}

// engScopedName parses "ident (:: ident)*".
func (p *engParser) engScopedName() (ScopedName, error) {
	var name ScopedName
	for {
		if p.tok.Type != tokIdent {
			return name, p.errorf("expected name, got %q", p.tok.Lit)
		}
		name.Append(p.tok.Lit, TNone)
		p.advance()
		if p.tok.Type != tokColonColon {
			return name, nil
		}
		p.advance()
	}
}

// bitWidthSuffix parses an optional trailing "width N bits" onto a leaf.
func (p *engParser) bitWidthSuffix(node *AST) error {
	if !p.gotIdent("width") {
		return nil
	}
	if p.tok.Type != tokNumber {
		return p.errorf("expected bit width, got %q", p.tok.Lit)
	}
	width, _ := strconv.Atoi(p.tok.Lit)
	node.BitWidth = width
	p.advance()
	p.gotIdent("bits")
	return nil
}

// sinkStorage applies hoisted storage-class bits to the leaf type of sub,
// so "static pointer to int" renders as "static int *".
func (p *engParser) sinkStorage(sub *AST, storage TypeID, loc Loc) error {
	if storage == 0 {
		return nil
	}
	leaf := sub
	for leaf.Of != nil && leaf.Kind.Is(KindAnyParent&^KindEnum) {
		leaf = leaf.Of
	}
	t, err := p.addType(leaf.Type, storage, loc)
	if err != nil {
		return err
	}
	leaf.Type = t
	return nil
}

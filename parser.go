package cdecl

import (
	"fmt"
	"strconv"
)

// Parsed is the result of parsing one line of C/C++ declaration syntax.
type Parsed struct {
	AST     *AST   // The parsed declaration or cast target type
	Cast    bool   // The line was a cast expression, "(type)operand"
	Operand string // The cast operand
	Using   bool   // The line was a C++11 using declaration
}

// ParseGibberish parses one line of C/C++ declaration syntax: a
// declaration, a typedef, a using declaration, or a cast expression.
func ParseGibberish(line string, opt *Options) (*Parsed, error) {
	p := newParser(line, opt)

	switch {
	case p.tok.Type == tokIdent && p.tok.Lit == "using" && p.opts.Lang.IsCPP():
		return p.parseUsing()
	case p.tok.Type == tokLParen && p.castAhead():
		return p.parseCastExpr()
	default:
		return p.parseDecl()
	}
}

// parser is a recursive-descent parser over the shared token stream. The
// one piece of state threaded outside the call tree is the declared name:
// it is captured where it appears inside the declarator and attached to the
// finished root, so it never has to migrate through placeholder patching.
type parser struct {
	lex     *lexer
	tok     token
	backlog []token // tokens pushed back by lookahead
	err     error   // first lexical error, reported at the end
	opts    Options
	arena   *Arena

	name     ScopedName // declared name captured in the declarator
	operName string     // operator token of an operator declaration
	dtor     bool       // the declarator was "~name"
}

func newParser(line string, opt *Options) *parser {
	p := &parser{lex: newStringLexer(line), opts: opt.normalize(),
		arena: NewArena()}
	p.advance()
	return p
}

// advance moves to the next token. Lexical errors park the parser at EOF
// and surface once parsing finishes.
func (p *parser) advance() {
	if n := len(p.backlog); n > 0 {
		p.tok = p.backlog[n-1]
		p.backlog = p.backlog[:n-1]
		return
	}
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

// unread pushes the current token back and makes tok current again.
func (p *parser) unread(tok token) {
	p.backlog = append(p.backlog, p.tok)
	p.tok = tok
}

// got consumes the current token if it has the given type.
func (p *parser) got(t tokenType) bool {
	if p.tok.Type != t {
		return false
	}
	p.advance()
	return true
}

// gotIdent consumes the current token if it is the given identifier.
func (p *parser) gotIdent(lit string) bool {
	if p.tok.Type != tokIdent || p.tok.Lit != lit {
		return false
	}
	p.advance()
	return true
}

func (p *parser) expect(t tokenType, what string) error {
	if !p.got(t) {
		return p.errorf("expected %s, got %q", what, p.tok.Lit)
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s",
		ErrParse, p.tok.Loc, fmt.Sprintf(format, args...))
}

// finish validates end-of-input and any deferred lexical error.
func (p *parser) finish() error {
	if p.err != nil {
		return p.err
	}
	p.got(tokSemicolon)
	if p.tok.Type != tokEOF {
		return p.errorf("unexpected %q after declaration", p.tok.Lit)
	}
	return nil
}

// parseDecl parses "specifiers declarator [: width]".
func (p *parser) parseDecl() (*Parsed, error) {
	loc := p.tok.Loc
	typeAST, err := p.specifiers()
	if err != nil {
		return nil, err
	}

	p.arena.depth++
	decl, err := p.declarator()
	if err != nil {
		return nil, err
	}
	p.arena.depth--

	bitWidth := 0
	if p.got(tokColon) {
		if p.tok.Type != tokNumber {
			return nil, p.errorf("expected bit-field width, got %q", p.tok.Lit)
		}
		bitWidth, _ = strconv.Atoi(p.tok.Lit)
		p.advance()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	if typeAST == nil {
		typeAST, err = p.implicitType(decl, loc)
		if err != nil {
			return nil, err
		}
	}

	root := decl
	if typeAST != nil {
		root = p.arena.PatchPlaceholder(typeAST, decl)
	}
	if root == nil || root.HasPlaceholder() {
		return nil, p.errorf("incomplete declaration")
	}
	if !p.name.Empty() {
		root.Name = p.name
	}
	if bitWidth > 0 {
		root.BitWidth = bitWidth
	}
	return &Parsed{AST: root}, nil
}

// implicitType resolves a declaration with no type specifiers: a C++
// constructor, or K&R C implicit int.
func (p *parser) implicitType(decl *AST, loc Loc) (*AST, error) {
	if decl == nil {
		return nil, p.errorf("expected a declaration")
	}
	if p.opts.Lang.IsCPP() {
		if decl.FindKind(VisitDown, KindUserDefConversion) != nil {
			// Conversion operators carry their type in the name.
			return nil, nil
		}
		if fn := decl.FindKind(VisitDown, KindFunction); fn != nil {
			if p.dtor {
				fn.Kind = KindDestructor
			} else {
				fn.Kind = KindConstructor
			}
			// Constructors have no return type; drop the open slot.
			if fn.Of != nil && fn.Of.Kind == KindPlaceholder {
				fn.setOf(nil)
			}
			return nil, nil
		}
		return nil, p.errorf("expected a type")
	}
	if p.opts.Lang >= LangC99 {
		return nil, p.errorf("implicit %q is illegal%s", "int",
			langWhich(CMax(LangC89), p.opts.Lang))
	}
	imp := p.arena.New(KindBuiltin, loc)
	imp.Depth = 0
	imp.Type = TInt
	return imp, nil
}

// specifiers parses declaration specifiers: type keywords, qualifiers,
// storage classes, attributes, class/struct/union/enum heads, and typedef
// names. Returns nil if no specifiers are present.
func (p *parser) specifiers() (*AST, error) {
	loc := p.tok.Loc
	var bits TypeID
	var leaf *AST

	for {
		switch p.tok.Type {
		case tokIdent:
			lit := p.tok.Lit
			switch lit {
			case "struct", "union", "class":
				node, err := p.ecsuHead(lit)
				if err != nil {
					return nil, err
				}
				leaf = node
				continue
			case "enum":
				node, err := p.enumHead()
				if err != nil {
					return nil, err
				}
				leaf = node
				continue
			}
			if bit, ok := typeKeyword(lit, p.opts.Lang); ok {
				t, err := AddType(bits, bit, p.opts.Lang)
				if err != nil {
					return nil, fmt.Errorf("%w at %s", err, p.tok.Loc)
				}
				bits = t
				p.advance()
				continue
			}
			if leaf == nil && bits&TMaskBase == 0 {
				if td := p.opts.Typedefs.Find(lit); td != nil {
					leaf = p.arena.New(KindTypedef, p.tok.Loc)
					leaf.TypedefFor = td
					p.advance()
					continue
				}
			}
			// Not a type word: the declared name starts here.
		case tokLBracket:
			open := p.tok
			p.advance()
			if p.tok.Type != tokLBracket {
				p.unread(open)
				break
			}
			bit, err := p.attribute()
			if err != nil {
				return nil, err
			}
			t, err := AddType(bits, bit, p.opts.Lang)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, open.Loc)
			}
			bits = t
			continue
		}
		break
	}

	switch {
	case leaf != nil:
		leaf.Type |= bits
		if leaf.Kind == KindTypedef {
			leaf.Type |= TTypedefType
		}
		return leaf, nil
	case bits != 0:
		node := p.arena.New(KindBuiltin, loc)
		node.Type = bits
		return node, nil
	default:
		return nil, nil
	}
}

// attribute parses the remainder of a "[[name]]" attribute; the two opening
// brackets are already consumed except the second, which is current.
func (p *parser) attribute() (TypeID, error) {
	p.advance() // second [
	if p.tok.Type != tokIdent {
		return 0, p.errorf("expected attribute name, got %q", p.tok.Lit)
	}
	bit, ok := attrKeyword(p.tok.Lit)
	if !ok {
		return 0, p.errorf("unknown attribute %q", p.tok.Lit)
	}
	p.advance()
	if err := p.expect(tokRBracket, `"]"`); err != nil {
		return 0, err
	}
	return bit, p.expect(tokRBracket, `"]"`)
}

// ecsuHead parses "struct|union|class tag".
func (p *parser) ecsuHead(word string) (*AST, error) {
	node := p.arena.New(KindClassStructUnion, p.tok.Loc)
	switch word {
	case "struct":
		node.Type = TStruct
	case "union":
		node.Type = TUnion
	case "class":
		node.Type = TClass
	}
	p.advance()
	if p.tok.Type != tokIdent {
		return nil, p.errorf("expected %s tag, got %q", word, p.tok.Lit)
	}
	tag, _, err := p.scopedName()
	if err != nil {
		return nil, err
	}
	node.TagName = tag
	return node, nil
}

// enumHead parses "enum tag [: underlying-type]".
func (p *parser) enumHead() (*AST, error) {
	node := p.arena.New(KindEnum, p.tok.Loc)
	node.Type = TEnum
	p.advance()
	if p.tok.Type == tokIdent {
		if _, isType := typeKeyword(p.tok.Lit, p.opts.Lang); !isType {
			tag, _, err := p.scopedName()
			if err != nil {
				return nil, err
			}
			node.TagName = tag
		}
	}
	if p.got(tokColon) {
		under, err := p.specifiers()
		if err != nil {
			return nil, err
		}
		if under == nil {
			return nil, p.errorf("expected enum underlying type")
		}
		node.setOf(under)
	}
	return node, nil
}

// scopedName parses "ident (:: ident)*". The second result is true when the
// name ended with "::*", the start of a pointer-to-member declarator; the
// trailing "*" is left unconsumed.
func (p *parser) scopedName() (ScopedName, bool, error) {
	var name ScopedName
	for {
		if p.opts.Lang.IsCPP() && p.tok.Type == tokIdent &&
			p.tok.Lit == "operator" && name.Count() > 0 {
			// The scope of an operator declaration ends here.
			return name, false, nil
		}
		if p.tok.Type == tokTilde {
			// A destructor name, "~T".
			p.advance()
			if p.tok.Type != tokIdent {
				return name, false, p.errorf("expected name after %q", "~")
			}
			p.dtor = true
			name.Append("~"+p.tok.Lit, TNone)
			p.advance()
			return name, false, nil
		}
		if p.tok.Type != tokIdent {
			return name, false, p.errorf("expected name, got %q", p.tok.Lit)
		}
		name.Append(p.tok.Lit, TNone)
		p.advance()
		if !p.got(tokColonColon) {
			return name, false, nil
		}
		if p.tok.Type == tokStar {
			return name, true, nil
		}
	}
}

// declarator parses prefix operators then a direct declarator. Each prefix
// operator node is created with a placeholder child and grafted into the
// open slot of whatever the rest of the declarator builds.
func (p *parser) declarator() (*AST, error) {
	loc := p.tok.Loc

	switch {
	case p.got(tokStar):
		return p.prefixOp(KindPointer, loc, ScopedName{})

	case p.got(tokAmp), p.opts.AltTokens && p.gotIdent("bitand"):
		return p.prefixOp(KindReference, loc, ScopedName{})

	case p.got(tokAmpAmp), p.opts.AltTokens && p.gotIdent("and"):
		return p.prefixOp(KindRvalueReference, loc, ScopedName{})

	case p.opts.Lang.IsCPP() && p.tok.Type == tokIdent &&
		p.tok.Lit == "operator":
		return p.operDeclarator()

	case p.tok.Type == tokIdent || p.tok.Type == tokTilde:
		name, ptm, err := p.scopedName()
		if err != nil {
			return nil, err
		}
		if ptm {
			p.advance() // the "*"
			return p.prefixOp(KindPointerToMember, loc, name)
		}
		p.name = name
		if p.opts.Lang.IsCPP() && p.tok.Type == tokIdent &&
			p.tok.Lit == "operator" {
			// "S::operator==": name holds the scope.
			return p.operDeclarator()
		}
		return p.suffixes(nil)

	default:
		return p.directDeclarator()
	}
}

// prefixOp builds a pointer, reference, or pointer-to-member node and
// grafts it into the declarator that follows it.
func (p *parser) prefixOp(kind Kind, loc Loc, class ScopedName) (*AST, error) {
	op := p.arena.New(kind, loc)
	op.ClassName = class
	if kind.Is(KindAnyPointer) {
		op.Type = p.qualifierBits()
	}
	op.setOf(p.arena.New(KindPlaceholder, loc))

	sub, err := p.declarator()
	if err != nil {
		return nil, err
	}
	return graft(op, sub), nil
}

// graft fills the open slot of decl with typeAST: the deepest placeholder
// reachable from decl is replaced, and typeAST's own placeholder (if any)
// becomes the new open slot. A nil decl means typeAST is the whole
// declarator so far.
func graft(typeAST, decl *AST) *AST {
	if decl == nil {
		return typeAST
	}
	if ph := decl.FindKind(VisitDown, KindPlaceholder); ph != nil {
		if par := ph.Parent; par != nil {
			par.setOf(typeAST)
			return decl
		}
	}
	return decl
}

// qualifierBits consumes a run of cv-qualifier keywords following a "*".
func (p *parser) qualifierBits() TypeID {
	var bits TypeID
	for p.tok.Type == tokIdent {
		bit, ok := typeKeyword(p.tok.Lit, p.opts.Lang)
		if !ok || bit&(TMaskQual) == 0 {
			break
		}
		bits |= bit
		p.advance()
	}
	return bits
}

// operDeclarator parses "operator" followed by either an operator token
// (an overloaded operator) or a type (a user-defined conversion).
func (p *parser) operDeclarator() (*AST, error) {
	loc := p.tok.Loc
	p.advance() // "operator"

	if p.tok.Type == tokIdent {
		// "operator int": a user-defined conversion.
		target, err := p.specifiers()
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, p.errorf("expected operator token or type")
		}
		conv := p.arena.New(KindUserDefConversion, loc)
		conv.setOf(target)
		if err := p.expect(tokLParen, `"("`); err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		if err := p.fnTrailers(conv); err != nil {
			return nil, err
		}
		return conv, nil
	}

	switch p.tok.Type {
	case tokPunct, tokStar, tokAmp, tokAmpAmp, tokEqual, tokCaret,
		tokComma, tokTilde:
		p.operName = p.tok.Lit
		p.advance()
	case tokLParen:
		// "operator()": these parens are the name, not the parameter list.
		p.advance()
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		p.operName = "()"
	case tokLBracket:
		p.advance()
		if err := p.expect(tokRBracket, `"]"`); err != nil {
			return nil, err
		}
		p.operName = "[]"
	default:
		return nil, p.errorf("expected operator token, got %q", p.tok.Lit)
	}
	return p.suffixes(nil)
}

// directDeclarator parses a parenthesized nested declarator or an abstract
// declarator, then any array and function suffixes.
func (p *parser) directDeclarator() (*AST, error) {
	var base *AST
	if p.tok.Type == tokLParen && p.nestedAhead() {
		open := p.tok
		p.advance()
		if p.got(tokCaret) {
			return p.blockDeclarator(open.Loc)
		}
		p.arena.depth++
		sub, err := p.declarator()
		if err != nil {
			return nil, err
		}
		p.arena.depth--
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		base = sub
	}
	return p.suffixes(base)
}

// nestedAhead reports whether the current "(" opens a nested declarator
// rather than a parameter list of an abstract function declarator.
func (p *parser) nestedAhead() bool {
	open := p.tok
	p.advance()
	next := p.tok
	p.unread(open)

	switch next.Type {
	case tokStar, tokAmp, tokAmpAmp, tokCaret, tokLParen, tokTilde:
		return true
	case tokIdent:
		if _, ok := typeKeyword(next.Lit, p.opts.Lang); ok {
			return false
		}
		return p.opts.Typedefs.Find(next.Lit) == nil
	default:
		return false
	}
}

// castAhead reports whether the current "(" starts a cast expression, which
// it does when a type begins immediately inside it.
func (p *parser) castAhead() bool {
	return !p.nestedAhead()
}

// blockDeclarator parses the remainder of "(^ quals name ) ( params )".
func (p *parser) blockDeclarator(loc Loc) (*AST, error) {
	block := p.arena.New(KindAppleBlock, loc)
	block.Type = p.qualifierBits()
	if p.tok.Type == tokIdent {
		name, _, err := p.scopedName()
		if err != nil {
			return nil, err
		}
		p.name = name
	}
	if err := p.expect(tokRParen, `")"`); err != nil {
		return nil, err
	}
	if err := p.expect(tokLParen, `"("`); err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	for _, param := range params {
		param.Parent = block
	}
	block.Params = params
	block.setOf(p.arena.New(KindPlaceholder, loc))
	return block, nil
}

// suffixes parses array and function suffixes, splicing each into the
// declarator built so far.
func (p *parser) suffixes(base *AST) (*AST, error) {
	for {
		switch p.tok.Type {
		case tokLBracket:
			loc := p.tok.Loc
			p.advance()
			array, err := p.arraySuffix(loc)
			if err != nil {
				return nil, err
			}
			base = p.arena.AddArray(base, array)

		case tokLParen:
			loc := p.tok.Loc
			p.advance()
			fn := p.arena.New(KindFunction, loc)
			if p.operName != "" {
				fn.Kind = KindOperator
				fn.OperName = p.operName
				p.operName = ""
			}
			params, err := p.paramList()
			if err != nil {
				return nil, err
			}
			for _, param := range params {
				param.Parent = fn
			}
			fn.Params = params
			ret := p.arena.New(KindPlaceholder, loc)
			base = p.arena.AddFunction(base, ret, fn)
			if err := p.fnTrailers(fn); err != nil {
				return nil, err
			}

		default:
			return base, nil
		}
	}
}

// arraySuffix parses the inside of "[...]": optional C99 parameter-array
// keywords and a size.
func (p *parser) arraySuffix(loc Loc) (*AST, error) {
	array := p.arena.New(KindArray, loc)
	array.setOf(p.arena.New(KindPlaceholder, loc))

	for p.tok.Type == tokIdent {
		bit, ok := typeKeyword(p.tok.Lit, p.opts.Lang)
		if !ok || bit&(TMaskQual|TStatic) == 0 {
			return nil, p.errorf("unexpected %q in array size", p.tok.Lit)
		}
		array.Type |= bit
		p.advance()
	}
	switch p.tok.Type {
	case tokNumber:
		size, _ := strconv.Atoi(p.tok.Lit)
		array.ArraySize = size
		p.advance()
	case tokStar:
		array.ArraySize = ArraySizeVariable
		p.advance()
	}
	return array, p.expect(tokRBracket, `"]"`)
}

// paramList parses function parameters up to and including the ")".
func (p *parser) paramList() ([]*AST, error) {
	var params []*AST
	for p.tok.Type != tokRParen {
		if p.tok.Type == tokEllipsis {
			v := p.arena.New(KindVariadic, p.tok.Loc)
			params = append(params, v)
			p.advance()
		} else {
			param, err := p.paramDecl()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
		if !p.got(tokComma) {
			break
		}
	}
	return params, p.expect(tokRParen, `")"`)
}

// paramDecl parses one parameter declaration. An identifier with no type
// specifiers is a K&R untyped parameter.
func (p *parser) paramDecl() (*AST, error) {
	savedName := p.name
	p.name = ScopedName{}
	defer func() { p.name = savedName }()

	typeAST, err := p.specifiers()
	if err != nil {
		return nil, err
	}
	if typeAST == nil {
		if p.tok.Type != tokIdent {
			return nil, p.errorf("expected parameter, got %q", p.tok.Lit)
		}
		name, _, err := p.scopedName()
		if err != nil {
			return nil, err
		}
		kr := p.arena.New(KindName, p.tok.Loc)
		kr.Name = name
		return kr, nil
	}

	p.arena.depth++
	decl, err := p.declarator()
	if err != nil {
		return nil, err
	}
	p.arena.depth--

	root := p.arena.PatchPlaceholder(typeAST, decl)
	if !p.name.Empty() {
		root.Name = p.name
	}
	return root, nil
}

// fnTrailers parses everything legal after a parameter list and folds it
// into fn's type: cv-qualifiers, ref-qualifiers, exception specifications,
// override/final, and "= default|delete|0".
func (p *parser) fnTrailers(fn *AST) error {
	for {
		loc := p.tok.Loc
		var bit TypeID
		switch {
		case p.got(tokAmp):
			bit = TRef
		case p.got(tokAmpAmp):
			bit = TRvalueRef
		case p.gotIdent("const"):
			bit = TConst
		case p.gotIdent("volatile"):
			bit = TVolatile
		case p.gotIdent("noexcept"):
			bit = TNoexcept
		case p.gotIdent("throw"):
			if err := p.expect(tokLParen, `"("`); err != nil {
				return err
			}
			if err := p.expect(tokRParen, `")"`); err != nil {
				return err
			}
			bit = TThrow
		case p.gotIdent("override"):
			bit = TOverride
		case p.gotIdent("final"):
			bit = TFinal
		case p.got(tokEqual):
			switch {
			case p.gotIdent("default"):
				bit = TDefault
			case p.gotIdent("delete"):
				bit = TDelete
			case p.tok.Type == tokNumber && p.tok.Lit == "0":
				p.advance()
				bit = TPureVirtual
			default:
				return p.errorf("expected %q, %q, or %q after %q",
					"default", "delete", "0", "=")
			}
		default:
			return nil
		}
		t, err := AddType(fn.Type, bit, p.opts.Lang)
		if err != nil {
			return fmt.Errorf("%w at %s", err, loc)
		}
		fn.Type = t
	}
}

// parseUsing parses `using name = type declarator`.
func (p *parser) parseUsing() (*Parsed, error) {
	p.advance() // "using"
	if p.tok.Type != tokIdent {
		return nil, p.errorf("expected name after %q", "using")
	}
	name, _, err := p.scopedName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEqual, `"="`); err != nil {
		return nil, err
	}

	typeAST, err := p.specifiers()
	if err != nil {
		return nil, err
	}
	if typeAST == nil {
		return nil, p.errorf("expected a type")
	}
	p.arena.depth++
	decl, err := p.declarator()
	if err != nil {
		return nil, err
	}
	p.arena.depth--
	if err := p.finish(); err != nil {
		return nil, err
	}

	root := p.arena.PatchPlaceholder(typeAST, decl)
	if root == nil || root.HasPlaceholder() {
		return nil, p.errorf("incomplete declaration")
	}
	name.SetScopeTypes(TNamespace)
	root.Name = name
	root.Type |= TTypedef
	return &Parsed{AST: root, Using: true}, nil
}

// parseCastExpr parses "(type declarator) operand".
func (p *parser) parseCastExpr() (*Parsed, error) {
	p.advance() // "("
	typeAST, err := p.specifiers()
	if err != nil {
		return nil, err
	}
	if typeAST == nil {
		return nil, p.errorf("expected a type")
	}
	p.arena.depth++
	decl, err := p.declarator()
	if err != nil {
		return nil, err
	}
	p.arena.depth--
	if err := p.expect(tokRParen, `")"`); err != nil {
		return nil, err
	}

	operand := ""
	if p.tok.Type == tokIdent {
		operand = p.tok.Lit
		p.advance()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	root := p.arena.PatchPlaceholder(typeAST, decl)
	if root == nil || root.HasPlaceholder() {
		return nil, p.errorf("incomplete cast")
	}
	return &Parsed{AST: root, Cast: true, Operand: operand}, nil
}

package cdecl

import (
	"strconv"
	"strings"
)

// gibMode selects what kind of construct the printer is rendering.
type gibMode int

const (
	gibDecl  gibMode = iota // a full declaration, names included
	gibCast          // an abstract declarator for a cast, no names
	gibUsing         // the right-hand side of a C++11 using declaration
)

// gibPrinter renders an AST as C/C++ declaration syntax. The declarator is
// built walking the of-chain from the root toward the leaf type: each
// pointer-like node prepends its operator, each array or function appends
// its suffix, and a suffix lands in parentheses whenever the text built so
// far begins with a prefix operator. That one rule produces "int (*a)[3]"
// versus "int *a[3]" and suppresses parentheses between consecutive
// pointers.
type gibPrinter struct {
	opts  Options
	mode  gibMode
	local bool // print only the local name; the scope became namespace blocks
}

// GibberishDecl renders ast as a C/C++ declaration in the active dialect.
// The AST must be complete; rendering a tree that still contains a
// placeholder is a programming error.
func GibberishDecl(ast *AST, opt *Options) string {
	o := opt.normalize()
	g := gibPrinter{opts: o}
	out := g.render(ast)
	if o.Semicolon {
		out += ";"
	}
	return out
}

// GibberishCast renders ast as a cast of operand, e.g. "(int (*)[3])p".
func GibberishCast(ast *AST, operand string, opt *Options) string {
	o := opt.normalize()
	g := gibPrinter{opts: o, mode: gibCast}
	return "(" + g.render(ast) + ")" + operand
}

// GibberishTypedef renders ast, whose type carries the typedef storage
// class, as a typedef declaration. A scoped name in C++ is wrapped in its
// enclosing namespace blocks, with only the local name inside.
func GibberishTypedef(ast *AST, opt *Options) string {
	o := opt.normalize()
	name := ast.FindName(VisitDown)
	if name == nil || name.ScopeName() == "" || !o.Lang.IsCPP() {
		return GibberishDecl(ast, opt)
	}

	g := gibPrinter{opts: o, local: true}
	body := g.render(ast)
	if o.Semicolon {
		body += ";"
	}
	return scopeWrap(name.ScopeName(), body, o.Lang)
}

// scopeWrap wraps body in namespace blocks for scope: one block with a
// nested-namespace name in C++17 and later, nested blocks before that.
func scopeWrap(scope, body string, lang LangID) string {
	if lang >= LangCPP17 {
		return "namespace " + scope + " { " + body + " }"
	}
	segs := strings.Split(scope, "::")
	for i := len(segs) - 1; i >= 0; i-- {
		body = "namespace " + segs[i] + " { " + body + " }"
	}
	return body
}

// GibberishUsing renders ast as a C++11 using declaration, "using name =
// type". The defined name is taken from the AST; the right-hand side is an
// abstract declarator. As with GibberishTypedef, a scoped name becomes
// namespace blocks around the local declaration.
func GibberishUsing(ast *AST, opt *Options) string {
	o := opt.normalize()
	name := ast.FindName(VisitDown)
	local := ""
	scope := ""
	if name != nil {
		local = name.LocalName()
		scope = name.ScopeName()
	}

	g := gibPrinter{opts: o, mode: gibUsing}
	out := "using " + local + " = " + g.render(ast)
	if o.Semicolon {
		out += ";"
	}
	if scope != "" && o.Lang.IsCPP() {
		return scopeWrap(scope, out, o.Lang)
	}
	return out
}

// render produces the complete declaration text, without a semicolon.
func (g *gibPrinter) render(ast *AST) string {
	assertf(!ast.HasPlaceholder(), "rendering unfinished AST")

	leading, spec, decl := g.parts(ast)
	out := leading
	if spec != "" {
		if out != "" {
			out += " "
		}
		out += spec
	}
	if decl != "" {
		if out != "" {
			out += " "
		}
		out += decl
	}
	return out
}

// parts walks the of-chain and returns the hoisted leading keywords of
// function-like nodes (storage, virtual, attributes), the type specifier of
// the leaf, and the declarator text.
func (g *gibPrinter) parts(ast *AST) (leading, spec, decl string) {
	decl = g.declStart(ast)
	// Whether decl currently begins with a prefix operator, which forces
	// parentheses around it before a postfix suffix may attach.
	prefixed := false

	for n := ast; n != nil; n = n.Of {
		switch n.Kind {
		case KindPointer:
			decl = joinPrefix("*", g.qualText(n.Type), decl)
			prefixed = true

		case KindPointerToMember:
			op := n.ClassName.FullName() + "::*"
			decl = joinPrefix(op, g.qualText(n.Type), decl)
			prefixed = true

		case KindReference:
			decl = joinPrefix(g.refTok("&"), "", decl)
			prefixed = true

		case KindRvalueReference:
			decl = joinPrefix(g.refTok("&&"), "", decl)
			prefixed = true

		case KindArray:
			if prefixed {
				decl = "(" + decl + ")"
				prefixed = false
			}
			decl += g.tok("[") + g.arrayInner(n) + g.tok("]")

		case KindAppleBlock:
			decl = "(^" + joinPrefix("", g.qualText(n.Type), decl) + ")"
			decl += "(" + g.params(n) + ")"
			prefixed = false

		case KindUserDefConversion:
			sub := gibPrinter{opts: g.opts, mode: gibCast}
			target := sub.render(n.Of)
			decl = "operator " + target + "()" + g.fnTrailers(n.Type)
			leading = g.fnLeading(n.Type)
			return leading, "", decl

		case KindFunction, KindOperator, KindUserDefLiteral,
			KindConstructor, KindDestructor:
			if prefixed {
				decl = "(" + decl + ")"
				prefixed = false
			}
			decl += "(" + g.params(n) + ")" + g.fnTrailers(n.Type)
			if lead := g.fnLeading(n.Type); lead != "" {
				if leading != "" {
					leading += " "
				}
				leading += lead
			}

		default:
			return leading, g.leafSpec(n), decl
		}
	}
	// Constructors and destructors have no return type, so the chain can
	// end without a leaf.
	return leading, "", decl
}

// declStart returns the text the declarator starts from: the declared name,
// an operator spelling, or nothing for abstract declarators.
func (g *gibPrinter) declStart(ast *AST) string {
	if g.mode != gibDecl {
		return ""
	}
	if op := ast.FindKind(VisitDown, KindOperator); op != nil {
		scope := ""
		if name := ast.FindName(VisitDown); name != nil {
			scope = name.FullName() + "::"
		}
		return scope + "operator" + op.OperName
	}
	if ast.FindKind(VisitDown, KindUserDefLiteral) != nil {
		if name := ast.FindName(VisitDown); name != nil {
			return `operator"" ` + name.LocalName()
		}
	}
	if name := ast.FindName(VisitDown); name != nil {
		if g.local {
			return name.LocalName()
		}
		return name.FullName()
	}
	return ""
}

// leafSpec renders the type specifier of the leaf node.
func (g *gibPrinter) leafSpec(ast *AST) string {
	lang := g.opts.Lang

	switch ast.Kind {
	case KindBuiltin:
		t := ast.Type
		if g.opts.ExplicitInt && t&TIntModifier != 0 &&
			t&TMaskBase&^TIntModifier == 0 {
			t |= TInt
		}
		if g.mode == gibUsing {
			t &^= TTypedef
		}
		return typeNameIn(t, lang, g.opts.EastConst)

	case KindClassStructUnion, KindEnum:
		t := ast.Type
		if g.mode == gibUsing {
			t &^= TTypedef
		}
		spec := typeNameIn(t, lang, g.opts.EastConst)
		if tag := ast.TagName.FullName(); tag != "" {
			spec += " " + tag
		}
		if ast.Kind == KindEnum && ast.Of != nil {
			spec += " : " + g.leafSpec(ast.Of)
		}
		return spec

	case KindTypedef:
		t := ast.Type &^ TTypedefType
		if g.mode == gibUsing {
			t &^= TTypedef
		}
		name := ""
		if ast.TypedefFor != nil {
			name = ast.TypedefFor.Name.FullName()
		}
		if quals := typeNameIn(t, lang, g.opts.EastConst); quals != "" {
			if g.opts.EastConst {
				return name + " " + quals
			}
			return quals + " " + name
		}
		return name

	case KindName:
		return ast.Name.FullName()
	}
	return ""
}

// qualText renders the cv-qualifiers carried by a pointer-like node.
func (g *gibPrinter) qualText(t TypeID) string {
	return typeNameIn(t&(TMaskQual), g.opts.Lang, false)
}

// joinPrefix composes a prefix operator, its qualifiers, and the declarator
// built so far: "*" + "const" + "*p" yields "*const *p", while "*" + "" +
// "*p" yields "**p". Word operators ("bitand") always get a separating
// space.
func joinPrefix(op, quals, inner string) string {
	out := op + quals
	if inner != "" && out != "" {
		last := out[len(out)-1]
		if quals != "" || last == '_' ||
			(last >= 'a' && last <= 'z') || (last >= 'A' && last <= 'Z') {
			out += " "
		}
	}
	return out + inner
}

// arrayInner renders what goes between the array brackets: optional C99
// parameter-array keywords, then the size.
func (g *gibPrinter) arrayInner(ast *AST) string {
	var parts []string
	if words := typeNameIn(ast.Type&(TMaskStorage|TMaskQual),
		g.opts.Lang, false); words != "" {
		parts = append(parts, words)
	}
	switch {
	case ast.ArraySize >= 0:
		parts = append(parts, strconv.Itoa(ast.ArraySize))
	case ast.ArraySize == ArraySizeVariable:
		parts = append(parts, "*")
	}
	return strings.Join(parts, " ")
}

// params renders a function-like node's parameter list.
func (g *gibPrinter) params(fn *AST) string {
	parts := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		switch p.Kind {
		case KindVariadic:
			parts = append(parts, "...")
		case KindName:
			parts = append(parts, p.Name.FullName())
		default:
			sub := gibPrinter{opts: g.opts}
			sub.opts.Semicolon = false
			parts = append(parts, sub.render(p))
		}
	}
	return strings.Join(parts, ", ")
}

// fnLeading returns the keywords of a function-like node that precede the
// return type: storage classes, function specifiers, and attributes.
func (g *gibPrinter) fnLeading(t TypeID) string {
	lead := t & (TMaskStorage | TFriend | TConstexpr | TConsteval |
		TExplicit | TInline | TVirtual | TMaskAttr)
	return typeNameIn(lead, g.opts.Lang, false)
}

// fnTrailers renders everything that follows a parameter list, in the
// required order: cv-qualifiers, ref-qualifier, exception specification,
// override/final, then "= default", "= delete", or "= 0".
func (g *gibPrinter) fnTrailers(t TypeID) string {
	var b strings.Builder
	if t&TConst != 0 {
		b.WriteString(" const")
	}
	if t&TVolatile != 0 {
		b.WriteString(" volatile")
	}
	if t&TRef != 0 {
		b.WriteString(" " + g.refTok("&"))
	}
	if t&TRvalueRef != 0 {
		b.WriteString(" " + g.refTok("&&"))
	}
	if es := exceptionSpec(t, g.opts.Lang); es != "" {
		b.WriteString(" " + es)
	}
	if t&TOverride != 0 {
		b.WriteString(" override")
	}
	if t&TFinal != 0 {
		b.WriteString(" final")
	}
	switch {
	case t&TDefault != 0:
		b.WriteString(" = default")
	case t&TDelete != 0:
		b.WriteString(" = delete")
	case t&TPureVirtual != 0:
		b.WriteString(" = 0")
	}
	return b.String()
}

// exceptionSpec renders noexcept or throw() using whichever spelling the
// active dialect has: noexcept before C++11 degrades to throw(), and
// dynamic exception specifications after their removal upgrade to noexcept.
func exceptionSpec(t TypeID, lang LangID) string {
	switch {
	case t&TNoexcept != 0:
		if lang.IsCPP() && lang < LangCPP11 {
			return "throw()"
		}
		return "noexcept"
	case t&TThrow != 0:
		if lang >= LangCPP20 {
			return "noexcept"
		}
		return "throw()"
	}
	return ""
}

// refTok returns the reference operator, honoring alternative tokens.
func (g *gibPrinter) refTok(op string) string {
	if g.opts.AltTokens {
		switch op {
		case "&":
			return "bitand"
		case "&&":
			return "and"
		}
	}
	return op
}

// tok returns a punctuation token in the spelling selected by the graph
// mode.
func (g *gibPrinter) tok(s string) string {
	switch g.opts.Graph {
	case GraphDi:
		switch s {
		case "[":
			return "<:"
		case "]":
			return ":>"
		}
	case GraphTri:
		switch s {
		case "[":
			return "??("
		case "]":
			return "??)"
		}
	}
	return s
}

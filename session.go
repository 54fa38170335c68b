package cdecl

import (
	"fmt"
	"sort"
	"strings"
)

// Session executes translation commands against persistent state: the
// active options and the typedef table. One session serves one interactive
// run or one batch of command lines.
type Session struct {
	opts Options
}

// NewSession returns a session with the given initial options. A nil opt
// uses the defaults (C23, semicolons on, standard typedefs).
func NewSession(opt *Options) *Session {
	return &Session{opts: opt.normalize()}
}

// Options returns the session's current options.
func (s *Session) Options() Options { return s.opts }

// commands lists every command word, for "did you mean" suggestions.
var commands = []string{
	"cast", "declare", "define", "explain", "help", "set", "show",
	"undeclare",
}

// Execute runs one command line and returns its output. Warnings are
// embedded in the output as "warning:" lines; errors abort the command.
func (s *Session) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "explain":
		return s.explain(strings.Join(rest, " "))
	case "declare":
		return s.declare(rest)
	case "define":
		return s.define(rest)
	case "cast":
		return s.cast(rest)
	case "show":
		return s.show(rest)
	case "set":
		return s.set(rest)
	case "undeclare":
		if len(rest) != 1 {
			return "", fmt.Errorf("%w: usage: undeclare <name>", ErrParse)
		}
		return "", s.opts.Typedefs.Undeclare(rest[0])
	case "using":
		// A C++ using declaration is an implicit explain.
		return s.explain(line)
	case "help", "?":
		return helpText, nil
	default:
		// A bare declaration is an implicit explain.
		switch cmd {
		case "struct", "union", "class", "enum":
			return s.explain(line)
		}
		if _, ok := typeKeyword(cmd, s.opts.Lang); ok ||
			s.opts.Typedefs.Find(cmd) != nil {
			return s.explain(line)
		}
		err := fmt.Errorf("%w: %q", ErrUnknownName, cmd)
		if hint := Suggest(cmd, commands); hint != "" {
			err = fmt.Errorf("%w; did you mean %q?", err, hint)
		}
		return "", err
	}
}

// explain translates gibberish to pseudo-English.
func (s *Session) explain(gibberish string) (string, error) {
	parsed, err := ParseGibberish(gibberish, &s.opts)
	if err != nil {
		return "", err
	}

	var issues []Issue
	if parsed.Cast {
		issues = CheckCast(parsed.AST, &s.opts)
	} else {
		issues = CheckDeclaration(parsed.AST, &s.opts)
	}
	out, err := s.diagnose(issues)
	if err != nil {
		return "", err
	}

	if parsed.Cast {
		clause := EnglishClause(parsed.AST, &s.opts)
		return out + "cast " + parsed.Operand + " into " + clause, nil
	}
	s.rememberTypedef(parsed.AST)
	return out + English(parsed.AST, &s.opts), nil
}

// declare translates "declare <name> as <clause>" to gibberish.
func (s *Session) declare(fields []string) (string, error) {
	name, clause, err := splitAs(fields)
	if err != nil {
		return "", err
	}
	ast, err := s.namedClause(name, clause)
	if err != nil {
		return "", err
	}
	out, err := s.diagnose(CheckDeclaration(ast, &s.opts))
	if err != nil {
		return "", err
	}
	s.rememberTypedef(ast)
	return out + GibberishDecl(ast, &s.opts), nil
}

// define records a typedef and prints its gibberish form.
func (s *Session) define(fields []string) (string, error) {
	name, clause, err := splitAs(fields)
	if err != nil {
		return "", err
	}
	ast, err := s.namedClause(name, clause)
	if err != nil {
		return "", err
	}
	// A scoped typedef name is namespace-scoped, the way it renders.
	ast.Name.SetScopeTypes(TNamespace)

	leaf := ast
	for leaf.Of != nil && leaf.Kind.Is(KindAnyParent&^KindEnum) {
		leaf = leaf.Of
	}
	t, err := AddType(leaf.Type, TTypedef, s.opts.Lang)
	if err != nil {
		return "", err
	}
	leaf.Type = t

	out, err := s.diagnose(CheckDeclaration(ast, &s.opts))
	if err != nil {
		return "", err
	}
	if err := s.opts.Typedefs.Define(ast.Name, ast); err != nil {
		return "", err
	}
	return out + GibberishTypedef(ast, &s.opts), nil
}

// cast translates "cast <operand> into <clause>" to gibberish.
func (s *Session) cast(fields []string) (string, error) {
	operand := ""
	if len(fields) > 0 && fields[0] != "into" {
		operand = fields[0]
		fields = fields[1:]
	}
	if len(fields) == 0 || fields[0] != "into" {
		return "", fmt.Errorf("%w: usage: cast <operand> into <type>",
			ErrParse)
	}
	clause := strings.Join(fields[1:], " ")

	ast, err := ParseEnglish(clause, &s.opts)
	if err != nil {
		return "", err
	}
	out, err := s.diagnose(CheckCast(ast, &s.opts))
	if err != nil {
		return "", err
	}
	return out + GibberishCast(ast, operand, &s.opts), nil
}

// show prints typedefs: one by name, or "all", "predefined", or "user".
func (s *Session) show(fields []string) (string, error) {
	which := "user"
	if len(fields) > 0 {
		which = fields[0]
	}

	switch which {
	case "all", "predefined", "user":
		names := s.opts.Typedefs.Names()
		sort.Strings(names)
		var b strings.Builder
		for _, name := range names {
			td := s.opts.Typedefs.Find(name)
			if which == "predefined" && td.UserDefined {
				continue
			}
			if which == "user" && !td.UserDefined {
				continue
			}
			b.WriteString(s.showOne(td) + "\n")
		}
		return strings.TrimRight(b.String(), "\n"), nil
	default:
		td := s.opts.Typedefs.Find(which)
		if td == nil {
			err := fmt.Errorf("%w: %q", ErrUnknownName, which)
			if hint := Suggest(which, s.opts.Typedefs.Names()); hint != "" {
				err = fmt.Errorf("%w; did you mean %q?", err, hint)
			}
			return "", err
		}
		return s.showOne(td), nil
	}
}

func (s *Session) showOne(td *Typedef) string {
	return "define " + td.Name.FullName() + " as " +
		EnglishClause(td.AST, &s.opts)
}

// set changes one option: a language dialect name, or one of the rendering
// toggles. "set" alone, or "set options", reports the current settings.
func (s *Session) set(fields []string) (string, error) {
	if len(fields) == 0 || fields[0] == "options" {
		return s.settings(), nil
	}

	name := strings.ToLower(fields[0])
	if lang := FindLang(name); lang != LangNone {
		s.opts.Lang = lang
		return "", nil
	}

	switch name {
	case "east-const", "eastconst":
		s.opts.EastConst = true
	case "noeast-const", "noeastconst", "west-const":
		s.opts.EastConst = false
	case "alt-tokens":
		s.opts.AltTokens = true
	case "noalt-tokens":
		s.opts.AltTokens = false
	case "digraphs":
		if !(CMin(LangC95) | LangSetCPPAny).Has(s.opts.Lang) {
			return "", fmt.Errorf("%w: digraphs%s", ErrLang,
				langWhich(CMin(LangC95)|LangSetCPPAny, s.opts.Lang))
		}
		s.opts.Graph = GraphDi
	case "trigraphs":
		legal := CMax(LangC17) | CPPMax(LangCPP14)
		if !legal.Has(s.opts.Lang) {
			return "", fmt.Errorf("%w: trigraphs%s", ErrLang,
				langWhich(legal, s.opts.Lang))
		}
		s.opts.Graph = GraphTri
	case "nographs", "graphs":
		s.opts.Graph = GraphNone
	case "semicolon":
		s.opts.Semicolon, s.opts.NoSemicolon = true, false
	case "nosemicolon":
		s.opts.Semicolon, s.opts.NoSemicolon = false, true
	case "explicit-int":
		s.opts.ExplicitInt = true
	case "noexplicit-int":
		s.opts.ExplicitInt = false
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownName, name)
		if hint := Suggest(name, setNames()); hint != "" {
			err = fmt.Errorf("%w; did you mean %q?", err, hint)
		}
		return "", err
	}
	return "", nil
}

// settings reports the current option values.
func (s *Session) settings() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lang=%s\n", s.opts.Lang)
	fmt.Fprintf(&b, "east-const=%t\n", s.opts.EastConst)
	fmt.Fprintf(&b, "alt-tokens=%t\n", s.opts.AltTokens)
	graph := "none"
	switch s.opts.Graph {
	case GraphDi:
		graph = "digraphs"
	case GraphTri:
		graph = "trigraphs"
	}
	fmt.Fprintf(&b, "graphs=%s\n", graph)
	fmt.Fprintf(&b, "semicolon=%t\n", s.opts.Semicolon)
	fmt.Fprintf(&b, "explicit-int=%t", s.opts.ExplicitInt)
	return b.String()
}

// setNames lists everything "set" accepts, for suggestions.
func setNames() []string {
	names := append([]string{}, LangSetAny.LangNames()...)
	return append(names,
		"east-const", "noeast-const", "alt-tokens", "noalt-tokens",
		"digraphs", "trigraphs", "nographs", "semicolon", "nosemicolon",
		"explicit-int", "noexplicit-int", "options")
}

// namedClause parses an English clause and attaches the declared name,
// converting function nodes to operators when the name is an operator
// spelling.
func (s *Session) namedClause(name, clause string) (*AST, error) {
	ast, err := ParseEnglish(clause, &s.opts)
	if err != nil {
		return nil, err
	}

	if oper, ok := strings.CutPrefix(name, "operator"); ok && oper != "" &&
		s.opts.Lang.IsCPP() {
		fn := ast.FindKind(VisitDown, KindFunction)
		if fn == nil {
			return nil, fmt.Errorf("%w: %q is not a function",
				ErrParse, name)
		}
		fn.Kind = KindOperator
		fn.OperName = oper
		return ast, nil
	}

	ast.Name = NewScopedName(strings.Split(name, "::")...)
	return ast, nil
}

// splitAs splits "<name> as <clause>" at the first "as".
func splitAs(fields []string) (name, clause string, err error) {
	for i, f := range fields {
		if f == "as" && i > 0 && i < len(fields)-1 {
			return strings.Join(fields[:i], " "),
				strings.Join(fields[i+1:], " "), nil
		}
	}
	return "", "", fmt.Errorf("%w: usage: <command> <name> as <type>",
		ErrParse)
}

// diagnose turns warning issues into output lines and error issues into an
// error.
func (s *Session) diagnose(issues []Issue) (string, error) {
	if hasError(issues) {
		var errs []string
		for _, is := range issues {
			if is.Level == IssueError {
				errs = append(errs, is.Message)
			}
		}
		return "", fmt.Errorf("%w: %s", ErrCheck, strings.Join(errs, "; "))
	}
	var b strings.Builder
	for _, is := range issues {
		fmt.Fprintf(&b, "warning: %s\n", is.Message)
	}
	return b.String(), nil
}

// rememberTypedef records a typedef or using declaration seen in explain or
// declare, so later lines can use the name.
func (s *Session) rememberTypedef(ast *AST) {
	if !hasTypedefBit(ast) || ast.Name.Empty() {
		return
	}
	// Redefinition of the same name is reported by define, not here;
	// explain tolerates re-explaining the same typedef.
	_ = s.opts.Typedefs.Define(ast.Name, ast)
}

const helpText = `commands:
  explain <declaration>        translate C/C++ into pseudo-English
  declare <name> as <type>     translate pseudo-English into C/C++
  define <name> as <type>      record a typedef and print it
  cast <operand> into <type>   compose a cast expression
  show [<name>|all|predefined|user]
  set [<lang>|<option>|options]
  undeclare <name>             remove a user-defined type
  help                         print this text`

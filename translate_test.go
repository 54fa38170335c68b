package cdecl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// explainStr parses gibberish and renders it back as pseudo-English.
func explainStr(t *testing.T, opt *Options, gibberish string) string {
	t.Helper()
	parsed, err := ParseGibberish(gibberish, opt)
	require.NoError(t, err, gibberish)
	return English(parsed.AST, opt)
}

// declareStr parses pseudo-English, names it, and renders gibberish.
func declareStr(t *testing.T, opt *Options, name, clause string) string {
	t.Helper()
	ast, err := ParseEnglish(clause, opt)
	require.NoError(t, err, clause)
	ast.Name = NewScopedName(strings.Split(name, "::")...)
	return GibberishDecl(ast, opt)
}

func TestExplain(t *testing.T) {
	tests := []struct {
		gibberish string
		english   string
	}{
		{"int *a[3];", "declare a as array 3 of pointer to int"},
		{"int (*a)[3];", "declare a as pointer to array 3 of int"},
		{"int a[2][3];", "declare a as array 2 of array 3 of int"},
		{"char *const *p;", "declare p as pointer to const pointer to char"},
		{"int (*f)(int);",
			"declare f as pointer to function (int) returning int"},
		{"void f(int x, char *y);",
			"declare f as function (x as int, y as pointer to char) returning void"},
		{"unsigned long n;", "declare n as unsigned long"},
		{"size_t n;", "declare n as size_t"},
		{"int b : 3;", "declare b as int width 3 bits"},
		{"typedef int I;", "define I as int"},
		{"typedef int A[3];", "define A as array 3 of int"},
		{"static int f();", "declare f as static function returning int"},
		{"static const char *s;",
			"declare s as static pointer to const char"},
		{"int a[*];", "declare a as variable array of int"},
	}
	opt := &Options{Lang: LangC23}
	for _, tt := range tests {
		t.Run(tt.gibberish, func(t *testing.T) {
			assert.Equal(t, tt.english, explainStr(t, opt, tt.gibberish))
		})
	}
}

func TestExplainCPP(t *testing.T) {
	tests := []struct {
		gibberish string
		english   string
	}{
		{"char &r;", "declare r as reference to char"},
		{"int &&r;", "declare r as rvalue reference to int"},
		{"int C::*p;",
			"declare p as pointer to member of class C int"},
		{"int S::f() const;",
			"declare S::f as const function returning int"},
	}
	opt := &Options{Lang: LangCPP17}
	for _, tt := range tests {
		t.Run(tt.gibberish, func(t *testing.T) {
			assert.Equal(t, tt.english, explainStr(t, opt, tt.gibberish))
		})
	}
}

func TestDeclare(t *testing.T) {
	tests := []struct {
		name      string
		clause    string
		gibberish string
	}{
		{"a", "pointer to array 3 of int", "int (*a)[3];"},
		{"a", "array 3 of pointer to int", "int *a[3];"},
		{"f", "pointer to function (int) returning void", "void (*f)(int);"},
		{"f", "function (x as int, y as pointer to char) returning void",
			"void f(int x, char *y);"},
		{"p", "const pointer to char", "char *const p;"},
		{"p", "pointer to const char", "const char *p;"},
		{"x", "static pointer to int", "static int *x;"},
		{"buf", "variable length array of char", "char buf[*];"},
		{"n", "unsigned long long", "unsigned long long n;"},
	}
	opt := &Options{Lang: LangC23}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			assert.Equal(t, tt.gibberish,
				declareStr(t, opt, tt.name, tt.clause))
		})
	}
}

func TestDeclareCPP(t *testing.T) {
	tests := []struct {
		name      string
		clause    string
		gibberish string
	}{
		{"r", "reference to const char", "const char &r;"},
		{"r", "rvalue reference to int", "int &&r;"},
		{"S::f", "virtual function returning void", "virtual void S::f();"},
	}
	opt := &Options{Lang: LangCPP17}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			assert.Equal(t, tt.gibberish,
				declareStr(t, opt, tt.name, tt.clause))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Explaining a declaration and re-declaring the result must reproduce
	// the original rendering.
	lines := []string{
		"int (*a)[3];",
		"int *a[3];",
		"void (*f)(int);",
		"const char *p;",
		"int a[2][3];",
	}
	opt := &Options{Lang: LangC23}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			parsed, err := ParseGibberish(line, opt)
			require.NoError(t, err)
			assert.Equal(t, line, GibberishDecl(parsed.AST, opt))
		})
	}
}

func TestRenderModes(t *testing.T) {
	ast, err := ParseEnglish("pointer to const char", &Options{Lang: LangC23})
	require.NoError(t, err)
	ast.Name = NewScopedName("p")
	east := &Options{Lang: LangC23, EastConst: true}
	assert.Equal(t, "char const *p;", GibberishDecl(ast, east))

	arr, err := ParseEnglish("array 3 of int", &Options{Lang: LangC23})
	require.NoError(t, err)
	arr.Name = NewScopedName("a")
	di := &Options{Lang: LangC23, Graph: GraphDi}
	assert.Equal(t, "int a<:3:>;", GibberishDecl(arr, di))
	tri := &Options{Lang: LangC89, Graph: GraphTri}
	assert.Equal(t, "int a??(3??);", GibberishDecl(arr, tri))

	cpp := &Options{Lang: LangCPP17, AltTokens: true}
	ref, err := ParseEnglish("reference to int", cpp)
	require.NoError(t, err)
	ref.Name = NewScopedName("r")
	assert.Equal(t, "int bitand r;", GibberishDecl(ref, cpp))

	noSemi := &Options{Lang: LangC23, Graph: GraphDi, NoSemicolon: true}
	assert.Equal(t, "int a<:3:>", GibberishDecl(arr, noSemi))
}

func TestGibberishCast(t *testing.T) {
	opt := &Options{Lang: LangC23}
	ast, err := ParseEnglish("pointer to int", opt)
	require.NoError(t, err)
	assert.Equal(t, "(int *)p", GibberishCast(ast, "p", opt))

	fn, err := ParseEnglish("pointer to function (int) returning void", opt)
	require.NoError(t, err)
	assert.Equal(t, "(void (*)(int))handler", GibberishCast(fn, "handler", opt))
}

func TestExplainCastExpr(t *testing.T) {
	opt := &Options{Lang: LangC23}
	parsed, err := ParseGibberish("(int *)p", opt)
	require.NoError(t, err)
	assert.True(t, parsed.Cast)
	assert.Equal(t, "p", parsed.Operand)
	assert.Equal(t, "pointer to int", EnglishClause(parsed.AST, opt))
}

func TestGibberishTypedefScoped(t *testing.T) {
	cpp17 := &Options{Lang: LangCPP17}
	ast, err := ParseEnglish("pointer to int", cpp17)
	require.NoError(t, err)
	ast.Name = NewScopedName("A", "B", "I")
	ast.Of.Type |= TTypedef

	assert.Equal(t, "namespace A::B { typedef int *I; }",
		GibberishTypedef(ast, cpp17))
	assert.Equal(t, "namespace A { namespace B { typedef int *I; } }",
		GibberishTypedef(ast, &Options{Lang: LangCPP11}))

	// Unscoped names need no wrapping.
	ast.Name = NewScopedName("I")
	assert.Equal(t, "typedef int *I;", GibberishTypedef(ast, cpp17))
}

func TestGibberishUsing(t *testing.T) {
	cpp := &Options{Lang: LangCPP17}
	parsed, err := ParseGibberish("using I = int *;", cpp)
	require.NoError(t, err)
	assert.True(t, parsed.Using)
	assert.Equal(t, "using I = int *;", GibberishUsing(parsed.AST, cpp))

	parsed.AST.Name = NewScopedName("A", "I")
	assert.Equal(t, "namespace A { using I = int *; }",
		GibberishUsing(parsed.AST, cpp))
}

func TestParseGibberishErrors(t *testing.T) {
	opt := &Options{Lang: LangC23}

	_, err := ParseGibberish("short long x;", opt)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = ParseGibberish("_Thread_local int x;", &Options{Lang: LangC99})
	assert.ErrorIs(t, err, ErrLang)

	_, err = ParseGibberish("int x", opt)
	assert.NoError(t, err, "the semicolon is optional")

	_, err = ParseGibberish("int x y;", opt)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseEnglishErrors(t *testing.T) {
	opt := &Options{Lang: LangC23}

	_, err := ParseEnglish("pointer to fhqwhgads", opt)
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseEnglish("pointer int", opt)
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseEnglish("short long", opt)
	assert.ErrorIs(t, err, ErrConflict)
}

package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkGibberish parses a declaration and runs the declaration checks.
func checkGibberish(t *testing.T, opt *Options, line string) []Issue {
	t.Helper()
	parsed, err := ParseGibberish(line, opt)
	require.NoError(t, err, line)
	return CheckDeclaration(parsed.AST, opt)
}

// firstError returns the first error-level issue message, or "".
func firstError(issues []Issue) string {
	for _, is := range issues {
		if is.Level == IssueError {
			return is.Message
		}
	}
	return ""
}

func TestCheckDeclaration(t *testing.T) {
	tests := []struct {
		name string
		lang LangID
		line string
		want string // substring of the first error, "" for clean
	}{
		{"clean pointer", LangC23, "const char *p;", ""},
		{"array of void", LangC23, "void a[3];", "array of void"},
		{"vla in c89", LangC89, "int a[*];", "variable length arrays"},
		{"vla in c99", LangC99, "int a[*];", ""},
		{"bit-field on pointer", LangC23, "int *b : 3;", "bit-field"},
		{"bit-field on int", LangC23, "int b : 3;", ""},
		{"static parameter", LangC23, "void f(static int x);",
			"can't be"},
		{"register parameter", LangC23, "void f(register int x);", ""},
		{"void must be alone", LangC23, "int f(void, int);",
			"only parameter"},
		{"named void", LangC23, "int f(void x);", "can't have a name"},
		{"reference in c", LangCPP17, "int &r;", ""},
		{"function returning array", LangC23, "int f(void)[3];",
			"returning array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := &Options{Lang: tt.lang}
			issues := checkGibberish(t, opt, tt.line)
			if tt.want == "" {
				assert.Empty(t, issues)
				return
			}
			assert.Contains(t, firstError(issues), tt.want)
		})
	}
}

func TestCheckDeclarationEnglish(t *testing.T) {
	cpp := &Options{Lang: LangCPP17}

	ast, err := ParseEnglish("pointer to reference to int", cpp)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)),
		"pointer to reference")

	ast, err = ParseEnglish("reference to reference to int", cpp)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)),
		"reference to reference")

	c := &Options{Lang: LangC17}
	ast, err = ParseEnglish("reference to int", c)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, c)),
		"references are illegal")

	ast, err = ParseEnglish("array 3 of function returning int", cpp)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)),
		"array of function")
}

func TestCheckRegisterDeprecation(t *testing.T) {
	issues := checkGibberish(t,
		&Options{Lang: LangCPP11}, "register int r;")
	require.Len(t, issues, 1)
	assert.Equal(t, IssueWarning, issues[0].Level)
	assert.Equal(t, "deprecated", issues[0].Code)
	assert.Contains(t, issues[0].Message, "deprecated")

	// Not deprecated in C, removed diagnostics handled elsewhere.
	assert.Empty(t, checkGibberish(t, &Options{Lang: LangC99},
		"register int r;"))
}

func TestCheckCast(t *testing.T) {
	opt := &Options{Lang: LangC23}

	ast, err := ParseEnglish("array 3 of int", opt)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckCast(ast, opt)), "cast into")

	ast, err = ParseEnglish("function returning int", opt)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckCast(ast, opt)),
		"pointer to function")

	ast, err = ParseEnglish("static int", opt)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckCast(ast, opt)), "can't cast into")

	// Storage sunk below the cast's root node is still storage.
	ast, err = ParseEnglish("static pointer to int", opt)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckCast(ast, opt)), "can't cast into")

	ast, err = ParseEnglish("pointer to int", opt)
	require.NoError(t, err)
	assert.Empty(t, CheckCast(ast, opt))
}

func TestCheckStorageSite(t *testing.T) {
	opt := &Options{Lang: LangC23}

	// Storage on the leaf of a pointer chain is where the renderers put it.
	assert.Empty(t, checkGibberish(t, opt, "static int *p;"))

	// Declaration specifiers keep their storage on the of-chain leaf even
	// when the declarator wraps it in an array or function.
	assert.Empty(t, checkGibberish(t, opt, "typedef int A[3];"))
	assert.Empty(t, checkGibberish(t, opt, "static int f();"))

	// Storage on an inner function node belongs to no declaration.
	ast, err := ParseEnglish(
		"function returning pointer to static function returning int", opt)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, opt)), "outermost")
}

func TestCheckMemberOnly(t *testing.T) {
	cpp := &Options{Lang: LangCPP17}

	// Trailing const on a function needs a class-scoped name.
	issues := checkGibberish(t, cpp, "void f() const;")
	assert.Contains(t, firstError(issues), "member functions")
	assert.Empty(t, checkGibberish(t, cpp, "int S::f() const;"))

	ast, err := ParseEnglish("virtual function returning void", cpp)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)),
		"member functions")
	ast.Name = NewScopedName("S", "f")
	assert.Empty(t, CheckDeclaration(ast, cpp))

	// friend goes the other way: never on a member.
	ast, err = ParseEnglish("friend function returning void", cpp)
	require.NoError(t, err)
	ast.Name = NewScopedName("S", "f")
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)),
		"can't apply to member")

	ast, err = ParseEnglish("explicit function returning void", cpp)
	require.NoError(t, err)
	assert.Contains(t, firstError(CheckDeclaration(ast, cpp)), "constructors")
}

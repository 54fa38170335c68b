package cdecl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExplainDeclare(t *testing.T) {
	s := NewSession(nil)

	out, err := s.Execute("explain int (*a)[3];")
	require.NoError(t, err)
	assert.Equal(t, "declare a as pointer to array 3 of int", out)

	out, err = s.Execute("declare f as pointer to function (int) returning void")
	require.NoError(t, err)
	assert.Equal(t, "void (*f)(int);", out)
}

func TestSessionImplicitExplain(t *testing.T) {
	s := NewSession(nil)

	// A line starting with a type keyword is an implicit explain.
	out, err := s.Execute("const char *p;")
	require.NoError(t, err)
	assert.Equal(t, "declare p as pointer to const char", out)

	// So is one starting with a known typedef name.
	out, err = s.Execute("size_t n;")
	require.NoError(t, err)
	assert.Equal(t, "declare n as size_t", out)

	// Tagged type heads count too.
	out, err = s.Execute("struct S *p;")
	require.NoError(t, err)
	assert.Equal(t, "declare p as pointer to struct S", out)
}

func TestSessionDefineThenUse(t *testing.T) {
	s := NewSession(nil)

	out, err := s.Execute("define I as pointer to int")
	require.NoError(t, err)
	assert.Equal(t, "typedef int *I;", out)

	// The defined name is now usable in both directions.
	out, err = s.Execute("declare p as pointer to I")
	require.NoError(t, err)
	assert.Equal(t, "I *p;", out)

	out, err = s.Execute("explain I *q;")
	require.NoError(t, err)
	assert.Equal(t, "declare q as pointer to I", out)

	// Redefinition conflicts.
	_, err = s.Execute("define I as int")
	assert.ErrorIs(t, err, ErrConflict)

	// Typedefs of arrays keep the typedef on the element type.
	out, err = s.Execute("define IA as array 3 of int")
	require.NoError(t, err)
	assert.Equal(t, "typedef int IA[3];", out)

	out, err = s.Execute("declare a as IA")
	require.NoError(t, err)
	assert.Equal(t, "IA a;", out)
}

func TestSessionExplainRemembersTypedef(t *testing.T) {
	s := NewSession(nil)

	_, err := s.Execute("explain typedef char *str;")
	require.NoError(t, err)

	out, err := s.Execute("declare s as str")
	require.NoError(t, err)
	assert.Equal(t, "str s;", out)
}

func TestSessionUsing(t *testing.T) {
	s := NewSession(&Options{Lang: LangCPP17})

	out, err := s.Execute("using str = char *;")
	require.NoError(t, err)
	assert.Equal(t, "define str as pointer to char", out)

	out, err = s.Execute("declare s as str")
	require.NoError(t, err)
	assert.Equal(t, "str s;", out)
}

func TestSessionCast(t *testing.T) {
	s := NewSession(nil)

	out, err := s.Execute("cast p into pointer to int")
	require.NoError(t, err)
	assert.Equal(t, "(int *)p", out)

	_, err = s.Execute("cast p into array 3 of int")
	assert.ErrorIs(t, err, ErrCheck)

	_, err = s.Execute("cast p into static pointer to int")
	assert.ErrorIs(t, err, ErrCheck)

	out, err = s.Execute("explain (char *)p")
	require.NoError(t, err)
	assert.Equal(t, "cast p into pointer to char", out)
}

func TestSessionShowUndeclare(t *testing.T) {
	s := NewSession(nil)

	out, err := s.Execute("show user")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = s.Execute("define I as pointer to int")
	require.NoError(t, err)

	out, err = s.Execute("show user")
	require.NoError(t, err)
	assert.Equal(t, "define I as pointer to int", out)

	out, err = s.Execute("show size_t")
	require.NoError(t, err)
	assert.Equal(t, "define size_t as unsigned long", out)

	out, err = s.Execute("show predefined")
	require.NoError(t, err)
	assert.Contains(t, out, "size_t")
	assert.NotContains(t, out, "define I as")

	_, err = s.Execute("undeclare I")
	require.NoError(t, err)
	_, err = s.Execute("undeclare I")
	assert.ErrorIs(t, err, ErrUnknownName)
	_, err = s.Execute("undeclare size_t")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.Execute("show sizet")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), "size_t")
}

func TestSessionSet(t *testing.T) {
	s := NewSession(nil)

	_, err := s.Execute("set c++17")
	require.NoError(t, err)
	assert.Equal(t, LangCPP17, s.Options().Lang)

	_, err = s.Execute("set east-const")
	require.NoError(t, err)
	out, err := s.Execute("declare p as pointer to const char")
	require.NoError(t, err)
	assert.Equal(t, "char const *p;", out)

	// Trigraphs were removed in C++17.
	_, err = s.Execute("set trigraphs")
	assert.ErrorIs(t, err, ErrLang)

	_, err = s.Execute("set c89")
	require.NoError(t, err)
	_, err = s.Execute("set trigraphs")
	require.NoError(t, err)

	out, err = s.Execute("set options")
	require.NoError(t, err)
	assert.Contains(t, out, "graphs=trigraphs")
	assert.Contains(t, out, "east-const=true")

	_, err = s.Execute("set tirgraphs")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), "trigraphs")
}

func TestSessionWarnings(t *testing.T) {
	s := NewSession(&Options{Lang: LangCPP11})

	out, err := s.Execute("explain register int r;")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "warning: "), out)
	assert.Contains(t, out, "declare r as register int")
}

func TestSessionUnknownCommand(t *testing.T) {
	s := NewSession(nil)

	_, err := s.Execute("explian int x;")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), "explain")

	out, err := s.Execute("help")
	require.NoError(t, err)
	assert.Contains(t, out, "declare <name> as <type>")

	out, err = s.Execute("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

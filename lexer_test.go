package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string, hyphens bool) []token {
	t.Helper()
	l := newStringLexer(input)
	l.hyphenIdents = hyphens
	var toks []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.Type == tokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerTokens(t *testing.T) {
	toks := lexAll(t, "int (*a)[3];", false)
	types := make([]tokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []tokenType{
		tokIdent, tokLParen, tokStar, tokIdent, tokRParen,
		tokLBracket, tokNumber, tokRBracket, tokSemicolon,
	}, types)
	assert.Equal(t, Loc{Line: 1, Col: 1}, toks[0].Loc)
}

func TestLexerGraphs(t *testing.T) {
	// Digraph and trigraph bracket spellings lex as ordinary brackets.
	toks := lexAll(t, "a<:3:>", false)
	require.Len(t, toks, 4)
	assert.Equal(t, tokLBracket, toks[1].Type)
	assert.Equal(t, tokRBracket, toks[3].Type)

	toks = lexAll(t, "a??(3??)", false)
	require.Len(t, toks, 4)
	assert.Equal(t, tokLBracket, toks[1].Type)
	assert.Equal(t, "??(", toks[1].Lit)
	assert.Equal(t, tokRBracket, toks[3].Type)
}

func TestLexerOperators(t *testing.T) {
	toks := lexAll(t, "S::operator<<=", false)
	require.Len(t, toks, 4)
	assert.Equal(t, tokColonColon, toks[1].Type)
	assert.Equal(t, tokPunct, toks[3].Type)
	assert.Equal(t, "<<=", toks[3].Lit)

	toks = lexAll(t, "f(int, ...)", false)
	assert.Equal(t, tokEllipsis, toks[4].Type)
}

func TestLexerHyphenIdents(t *testing.T) {
	toks := lexAll(t, "non-returning function", true)
	require.Len(t, toks, 2)
	assert.Equal(t, "non-returning", toks[0].Lit)

	// Gibberish mode keeps "-" out of identifiers.
	toks = lexAll(t, "non-returning", false)
	require.Len(t, toks, 3)
	assert.Equal(t, "non", toks[0].Lit)
	assert.Equal(t, "-", toks[1].Lit)
}

package cdecl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types. Both the gibberish and the pseudo-English grammars share one
// token stream; English happens to use only a subset of the punctuation.
const (
	tokEOF        tokenType = iota // End of input
	tokIdent                      // Identifier or keyword
	tokNumber                     // Integer literal
	tokStar                       // *
	tokAmp                        // &
	tokAmpAmp                     // &&
	tokLParen                     // (
	tokRParen                     // )
	tokLBracket                   // [ or its di/trigraph spellings
	tokRBracket                   // ] or its di/trigraph spellings
	tokComma                      // ,
	tokSemicolon                  // ;
	tokColon                      // :
	tokColonColon                 // ::
	tokEllipsis                   // ...
	tokCaret                      // ^
	tokEqual                      // =
	tokTilde                      // ~
	tokPunct                      // Any other punctuation run, for operators
)

// token represents one lexed token.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Loc  Loc       // Position of the token
}

// lexer tokenizes one line of gibberish or pseudo-English.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	loc Loc           // Position of the current character
	ch  rune          // Current character
	eof bool          // End of input

	// hyphenIdents keeps "-" inside identifiers ("non-returning"). Only the
	// pseudo-English grammar sets this; gibberish needs "-" free for C++
	// operator tokens.
	hyphenIdents bool
}

// newLexer creates a lexer over r.
func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), loc: Loc{Line: 1, Col: 0}}
	l.read()
	return l
}

// newStringLexer creates a lexer over a single input line.
func newStringLexer(s string) *lexer {
	return newLexer(strings.NewReader(s))
}

// next returns the next token.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	if l.eof {
		return token{Type: tokEOF, Loc: l.loc}, nil
	}

	start := l.loc

	switch l.ch {
	case '*':
		l.read()
		return token{Type: tokStar, Lit: "*", Loc: start}, nil
	case '&':
		l.read()
		if l.ch == '&' {
			l.read()
			return token{Type: tokAmpAmp, Lit: "&&", Loc: start}, nil
		}
		return token{Type: tokAmp, Lit: "&", Loc: start}, nil
	case '(':
		l.read()
		return token{Type: tokLParen, Lit: "(", Loc: start}, nil
	case ')':
		l.read()
		return token{Type: tokRParen, Lit: ")", Loc: start}, nil
	case '[':
		l.read()
		return token{Type: tokLBracket, Lit: "[", Loc: start}, nil
	case ']':
		l.read()
		return token{Type: tokRBracket, Lit: "]", Loc: start}, nil
	case ',':
		l.read()
		return token{Type: tokComma, Lit: ",", Loc: start}, nil
	case ';':
		l.read()
		return token{Type: tokSemicolon, Lit: ";", Loc: start}, nil
	case '^':
		l.read()
		return token{Type: tokCaret, Lit: "^", Loc: start}, nil
	case '~':
		l.read()
		return token{Type: tokTilde, Lit: "~", Loc: start}, nil
	case ':':
		l.read()
		switch l.ch {
		case ':':
			l.read()
			return token{Type: tokColonColon, Lit: "::", Loc: start}, nil
		case '>':
			// ":>" digraph.
			l.read()
			return token{Type: tokRBracket, Lit: ":>", Loc: start}, nil
		}
		return token{Type: tokColon, Lit: ":", Loc: start}, nil
	case '<':
		if l.peek() == ':' {
			// "<:" digraph.
			l.read()
			l.read()
			return token{Type: tokLBracket, Lit: "<:", Loc: start}, nil
		}
		return l.punct(start)
	case '?':
		if tok, ok := l.trigraph(start); ok {
			return tok, nil
		}
		return l.punct(start)
	case '.':
		if l.peek() == '.' {
			l.read()
			l.read()
			if l.ch != '.' {
				return token{}, l.errorf("expected %q", "...")
			}
			l.read()
			return token{Type: tokEllipsis, Lit: "...", Loc: start}, nil
		}
		return l.punct(start)
	case '=':
		l.read()
		if l.ch == '=' {
			l.read()
			return token{Type: tokPunct, Lit: "==", Loc: start}, nil
		}
		return token{Type: tokEqual, Lit: "=", Loc: start}, nil

	default:
		if isIdentStart(l.ch) {
			return token{Type: tokIdent, Lit: l.readIdent(), Loc: start}, nil
		}
		if unicode.IsDigit(l.ch) {
			return token{Type: tokNumber, Lit: l.readNumber(), Loc: start}, nil
		}
		return l.punct(start)
	}
}

// trigraph recognizes the "??(" and "??)" bracket trigraphs. The lexer is
// positioned on the first '?'.
func (l *lexer) trigraph(start Loc) (token, bool) {
	if l.peek() != '?' {
		return token{}, false
	}
	l.read() // first ?
	l.read() // second ?
	switch l.ch {
	case '(':
		l.read()
		return token{Type: tokLBracket, Lit: "??(", Loc: start}, true
	case ')':
		l.read()
		return token{Type: tokRBracket, Lit: "??)", Loc: start}, true
	}
	// Not a bracket trigraph; hand back a punct of what was consumed.
	return token{Type: tokPunct, Lit: "??", Loc: start}, true
}

// punct reads a run of operator punctuation, longest first, so "<<=" and
// "->" lex as single tokens for C++ operator declarations.
func (l *lexer) punct(start Loc) (token, error) {
	var b strings.Builder
	for !l.eof && isOperChar(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	if b.Len() == 0 {
		ch := l.ch
		l.read()
		return token{}, l.errorf("unexpected character %q", ch)
	}
	return token{Type: tokPunct, Lit: b.String(), Loc: start}, nil
}

// read reads the next character.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	if ch == '\n' {
		l.loc.Line++
		l.loc.Col = 0
	} else {
		l.loc.Col++
	}

	l.ch = ch
}

// peek returns the next character without consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// skipWhitespace skips whitespace characters.
func (l *lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.read()
	}
}

// readIdent reads an identifier.
func (l *lexer) readIdent() string {
	var b strings.Builder
	for !l.eof {
		if !isIdentPart(l.ch) {
			if !l.hyphenIdents || l.ch != '-' || !isIdentStart(l.peek()) {
				break
			}
		}
		b.WriteRune(l.ch)
		l.read()
	}
	return b.String()
}

// readNumber reads an integer literal.
func (l *lexer) readNumber() string {
	var b strings.Builder
	for !l.eof && unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	return b.String()
}

// errorf formats a lexical error at the current position.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s",
		ErrLex, l.loc, fmt.Sprintf(format, args...))
}

// isIdentStart checks if a character is a valid start of an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart checks if a character is a valid part of an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isOperChar checks if a character may appear in an operator token.
func isOperChar(r rune) bool {
	return strings.ContainsRune("+-*/%<>=!^|~?.", r)
}

package cdecl

import "errors"

var (
	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")

	// ErrConflict indicates a duplicate or mutually exclusive type keyword
	// combination, e.g. "short long".
	ErrConflict = errors.New("type conflict")

	// ErrLang indicates a construct that is valid in some language dialect
	// but not the active one.
	ErrLang = errors.New("illegal in language")

	// ErrCheck indicates the declaration failed semantic checking.
	ErrCheck = errors.New("check error")

	// ErrUnknownName indicates an identifier that is neither a keyword nor a
	// defined type.
	ErrUnknownName = errors.New("unknown name")
)

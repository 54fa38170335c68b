package cdecl

// GraphMode selects alternate multi-character spellings for punctuation
// tokens in gibberish output.
type GraphMode int

const (
	// GraphNone emits ordinary tokens.
	GraphNone GraphMode = iota
	// GraphDi emits digraphs ("<:" for "[") in C95 and later.
	GraphDi
	// GraphTri emits trigraphs ("??(" for "[") in C89 through C++14.
	GraphTri
)

// Options controls parsing, checking, and rendering behavior.
type Options struct {
	// Lang is the active language dialect (default C23).
	Lang LangID
	// EastConst places const/volatile after the type they qualify.
	EastConst bool
	// AltTokens uses the C++ alternative tokens "bitand"/"and"/"compl" for
	// "&"/"&&"/"~".
	AltTokens bool
	// Graph substitutes digraph or trigraph spellings at render time.
	Graph GraphMode
	// Semicolon terminates rendered declarations with ";" (default on).
	Semicolon bool
	// NoSemicolon disables the trailing semicolon.
	NoSemicolon bool
	// ExplicitInt renders the implicit int of K&R-style declarations.
	ExplicitInt bool
	// Typedefs is the persistent typedef table consulted by the parsers. If
	// nil, a table seeded with the standard library typedefs is used.
	Typedefs *TypedefTable
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		o = &Options{}
	}
	out := *o
	if out.Lang == LangNone {
		out.Lang = LangC23
	}
	if out.NoSemicolon {
		out.Semicolon = false
	} else {
		out.Semicolon = true
	}
	if out.Typedefs == nil {
		out.Typedefs = NewTypedefTable()
	}
	return out
}

/*
Package cdecl composes and deciphers C and C++ declarations, translating
between declaration syntax ("gibberish") and a readable pseudo-English
rendition in both directions.

Both directions pivot through a shared declarator AST, so a parse in one
syntax followed by a render in the other is a full translation. Rendering
honors the active language dialect, from K&R C through C23 and C++98
through C++23.

Explain example:

	parsed, err := cdecl.ParseGibberish("int (*a)[3];", nil)
	if err != nil {
		// handle error
	}
	_ = cdecl.English(parsed.AST, nil)
	// declare a as pointer to array 3 of int

Declare example:

	ast, err := cdecl.ParseEnglish("pointer to function (int) returning void", nil)
	if err != nil {
		// handle error
	}
	_ = cdecl.GibberishDecl(ast, nil)
	// void (*)(int);

Checker example:

	issues := cdecl.CheckDeclaration(ast, &cdecl.Options{Lang: cdecl.LangC89})
	if len(issues) != 0 {
		// handle dialect and semantic issues
	}

Session example:

	s := cdecl.NewSession(nil)
	out, err := s.Execute("declare p as pointer to const char")
	if err != nil {
		// handle error
	}
	_ = out // const char *p;
*/
package cdecl

package cdecl

import "testing"

func BenchmarkExplain(b *testing.B) {
	opt := &Options{Lang: LangC23}
	for i := 0; i < b.N; i++ {
		parsed, err := ParseGibberish(
			"void (*signal(int, void (*)(int)))(int);", opt)
		if err != nil {
			b.Fatal(err)
		}
		_ = English(parsed.AST, opt)
	}
}

func BenchmarkDeclare(b *testing.B) {
	opt := &Options{Lang: LangC23}
	for i := 0; i < b.N; i++ {
		ast, err := ParseEnglish(
			"pointer to function (int) returning pointer to function (int) returning void",
			opt)
		if err != nil {
			b.Fatal(err)
		}
		ast.Name = NewScopedName("f")
		_ = GibberishDecl(ast, opt)
	}
}

package cdecl

// typeKeyword maps a declaration keyword to its elementary type bit under
// lang, or returns false for words that are not type keywords. Dialect
// legality is not decided here; AddType rejects bits the dialect lacks.
func typeKeyword(lit string, lang LangID) (TypeID, bool) {
	switch lit {
	// base types
	case "void":
		return TVoid, true
	case "auto":
		// A storage class through C++03, a deduced type after.
		if lang.IsCPP() && lang >= LangCPP11 {
			return TAutoType, true
		}
		return TAutoStorage, true
	case "bool", "_Bool":
		return TBool, true
	case "char":
		return TChar, true
	case "char8_t":
		return TChar8, true
	case "char16_t":
		return TChar16, true
	case "char32_t":
		return TChar32, true
	case "wchar_t":
		return TWChar, true
	case "short":
		return TShort, true
	case "int":
		return TInt, true
	case "long":
		return TLong, true
	case "signed", "__signed", "__signed__":
		return TSigned, true
	case "unsigned":
		return TUnsigned, true
	case "float":
		return TFloat, true
	case "double":
		return TDouble, true
	case "_Complex", "complex", "__complex", "__complex__":
		return TComplex, true
	case "_Imaginary", "imaginary":
		return TImaginary, true

	// storage classes
	case "extern":
		return TExtern, true
	case "mutable":
		return TMutable, true
	case "register":
		return TRegister, true
	case "static":
		return TStatic, true
	case "thread_local", "_Thread_local", "__thread":
		return TThreadLocal, true
	case "typedef":
		return TTypedef, true

	// storage-class-like
	case "consteval":
		return TConsteval, true
	case "constexpr":
		return TConstexpr, true
	case "explicit":
		return TExplicit, true
	case "friend":
		return TFriend, true
	case "inline", "__inline", "__inline__":
		return TInline, true
	case "virtual":
		return TVirtual, true
	case "_Noreturn":
		return TNoreturn, true

	// qualifiers
	case "_Atomic":
		return TAtomic, true
	case "const", "__const", "__const__":
		return TConst, true
	case "restrict", "__restrict", "__restrict__":
		return TRestrict, true
	case "volatile", "__volatile", "__volatile__":
		return TVolatile, true
	}
	return TNone, false
}

// attrKeyword maps the identifier inside a [[...]] attribute to its type
// bit.
func attrKeyword(lit string) (TypeID, bool) {
	switch lit {
	case "carries_dependency":
		return TCarriesDependency, true
	case "deprecated":
		return TDeprecated, true
	case "maybe_unused":
		return TMaybeUnused, true
	case "nodiscard":
		return TNodiscard, true
	case "noreturn":
		return TNoreturn, true
	}
	return TNone, false
}

// englishSynonym canonicalizes the pseudo-English synonyms the grammar
// accepts, e.g. "ptr" for "pointer".
func englishSynonym(lit string) string {
	switch lit {
	case "ptr":
		return "pointer"
	case "ref":
		return "reference"
	case "func":
		return "function"
	case "vector":
		return "array"
	case "character":
		return "char"
	case "integer":
		return "int"
	case "structure":
		return "struct"
	case "enumeration":
		return "enum"
	case "constant":
		return "const"
	case "automatic":
		return "auto"
	}
	return lit
}

// englishTypeWord maps pseudo-English modifier aliases that differ from the
// C spelling to type bits.
func englishTypeWord(lit string, lang LangID) (TypeID, bool) {
	switch lit {
	case "non-returning", "noreturn":
		return TNoreturn, true
	case "deprecated":
		return TDeprecated, true
	case "defaulted":
		return TDefault, true
	case "deleted":
		return TDelete, true
	case "non-throwing", "noexcept":
		return TNoexcept, true
	case "pure":
		return TPureVirtual, true
	case "overridden", "override":
		return TOverride, true
	case "final":
		return TFinal, true
	case "atomic":
		return TAtomic, true
	}
	return typeKeyword(englishSynonym(lit), lang)
}

package cdecl

import "strings"

// typeNameOrder is the canonical keyword order: storage, storage-class-like,
// qualifiers, base, attributes. Within base, sign precedes size precedes the
// primary type, so "unsigned long int" comes out in the usual spelling.
var typeNameOrder = []TypeID{
	// storage
	TTypedef, TAutoStorage, TRegister, TStatic, TExtern, TThreadLocal,
	TMutable,
	// storage-class-like
	TFriend, TConsteval, TConstexpr, TExplicit, TInline, TVirtual,
	TNoexcept, TThrow, TOverride, TFinal, TDefault, TDelete, TPureVirtual,
	// qualifiers
	TAtomic, TConst, TRestrict, TVolatile,
	// base
	TSigned, TUnsigned, TShort, TLong, TLongLong,
	TVoid, TAutoType, TBool, TChar, TChar8, TChar16, TChar32, TWChar,
	TInt, TFloat, TDouble, TComplex, TImaginary,
	TEnum, TStruct, TUnion, TClass, TNamespace, TScope,
	// attributes
	TCarriesDependency, TDeprecated, TMaybeUnused, TNodiscard, TNoreturn,
	// ref-qualifiers (rendered by the gibberish printer as trailing &/&&,
	// spelled out here only for error messages)
	TRef, TRvalueRef,
}

// typeBitName returns the dialect-correct spelling of one elementary type
// bit, or "" for bits that have no keyword of their own (TTypedefType).
func typeBitName(bit TypeID, lang LangID) string {
	switch bit {
	case TVoid:
		return "void"
	case TAutoType, TAutoStorage:
		return "auto"
	case TBool:
		if lang.IsC() && lang < LangC23 {
			return "_Bool"
		}
		return "bool"
	case TChar:
		return "char"
	case TChar8:
		return "char8_t"
	case TChar16:
		return "char16_t"
	case TChar32:
		return "char32_t"
	case TWChar:
		return "wchar_t"
	case TShort:
		return "short"
	case TInt:
		return "int"
	case TLong:
		return "long"
	case TLongLong:
		return "long long"
	case TSigned:
		return "signed"
	case TUnsigned:
		return "unsigned"
	case TFloat:
		return "float"
	case TDouble:
		return "double"
	case TComplex:
		return "_Complex"
	case TImaginary:
		return "_Imaginary"
	case TEnum:
		return "enum"
	case TStruct:
		return "struct"
	case TUnion:
		return "union"
	case TClass:
		return "class"
	case TNamespace:
		return "namespace"
	case TScope:
		return "scope"
	case TAppleBlock:
		return "__block"
	case TExtern:
		return "extern"
	case TMutable:
		return "mutable"
	case TRegister:
		return "register"
	case TStatic:
		return "static"
	case TThreadLocal:
		if lang.IsC() && lang < LangC23 {
			return "_Thread_local"
		}
		return "thread_local"
	case TTypedef:
		return "typedef"
	case TConsteval:
		return "consteval"
	case TConstexpr:
		return "constexpr"
	case TDefault:
		return "default"
	case TDelete:
		return "delete"
	case TExplicit:
		return "explicit"
	case TFinal:
		return "final"
	case TFriend:
		return "friend"
	case TInline:
		return "inline"
	case TNoexcept:
		return "noexcept"
	case TOverride:
		return "override"
	case TPureVirtual:
		return "pure virtual"
	case TThrow:
		return "throw"
	case TVirtual:
		return "virtual"
	case TCarriesDependency:
		return "[[carries_dependency]]"
	case TDeprecated:
		return "[[deprecated]]"
	case TMaybeUnused:
		return "[[maybe_unused]]"
	case TNodiscard:
		return "[[nodiscard]]"
	case TNoreturn:
		if lang.IsC() && lang < LangC23 {
			return "_Noreturn"
		}
		return "[[noreturn]]"
	case TAtomic:
		return "_Atomic"
	case TConst:
		return "const"
	case TRestrict:
		return "restrict"
	case TVolatile:
		return "volatile"
	case TRef:
		return "&"
	case TRvalueRef:
		return "&&"
	}
	return ""
}

// typeBitEnglish maps elementary type bits to friendlier English aliases
// used in diagnostics and pseudo-English output.
func typeBitEnglish(bit TypeID) string {
	switch bit {
	case TNoreturn:
		return "non-returning"
	case TCarriesDependency:
		return "carries dependency"
	case TDeprecated:
		return "deprecated"
	case TMaybeUnused:
		return "maybe unused"
	case TNodiscard:
		return "no discard"
	case TDefault:
		return "defaulted"
	case TDelete:
		return "deleted"
	case TThrow:
		return "non-throwing"
	case TRef:
		return "reference"
	case TRvalueRef:
		return "rvalue reference"
	default:
		return typeBitName(bit, LangCPP23)
	}
}

// typeNameIn renders t's keywords in canonical order for lang. When
// eastConst is set, const/volatile follow the base type instead of
// preceding it.
func typeNameIn(t TypeID, lang LangID, eastConst bool) string {
	east := TypeID(0)
	if eastConst {
		east = t & (TConst | TVolatile)
		t &^= east
	}

	var parts []string
	for _, bit := range typeNameOrder {
		if t&bit == bit && bit != 0 {
			if name := typeBitName(bit, lang); name != "" {
				parts = append(parts, name)
			}
			t &^= bit
		}
	}
	for _, bit := range typeNameOrder {
		if east&bit == bit && bit != 0 {
			parts = append(parts, typeBitName(bit, lang))
		}
	}
	return strings.Join(parts, " ")
}

// TypeName renders the keywords of t in canonical order honoring lang's
// spellings, e.g. "_Bool" under C99 but "bool" under C++.
func TypeName(t TypeID, lang LangID) string {
	return typeNameIn(t, lang, false)
}

// TypeNameEnglish renders t for use in diagnostics and pseudo-English,
// substituting friendlier aliases, e.g. "non-returning" for noreturn.
func TypeNameEnglish(t TypeID) string {
	if t&TPureVirtual != 0 {
		// "pure virtual" subsumes "virtual".
		t &^= TVirtual
	}
	var parts []string
	for _, bit := range typeNameOrder {
		if t&bit == bit && bit != 0 {
			if name := typeBitEnglish(bit); name != "" {
				parts = append(parts, name)
			}
			t &^= bit
		}
	}
	return strings.Join(parts, " ")
}

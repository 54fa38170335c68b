package cdecl

import "fmt"

// TypeID is an opaque bitmask encoding the complete type of an AST node:
// base type, storage class, storage-class-like keywords, attributes,
// qualifiers, and ref-qualifiers. The category sub-masks never overlap, so a
// TypeID is the bitwise-or of zero or more elementary type bits.
type TypeID uint64

// Base types.
const (
	TNone        TypeID = 0
	TVoid        TypeID = 1 << 0  // void
	TAutoType    TypeID = 1 << 1  // C++11 auto
	TBool        TypeID = 1 << 2  // _Bool or bool
	TChar        TypeID = 1 << 3  // char
	TChar8       TypeID = 1 << 4  // char8_t
	TChar16      TypeID = 1 << 5  // char16_t
	TChar32      TypeID = 1 << 6  // char32_t
	TWChar       TypeID = 1 << 7  // wchar_t
	TShort       TypeID = 1 << 8  // short
	TInt         TypeID = 1 << 9  // int
	TLong        TypeID = 1 << 10 // long
	TLongLong    TypeID = 1 << 11 // long long
	TSigned      TypeID = 1 << 12 // signed
	TUnsigned    TypeID = 1 << 13 // unsigned
	TFloat       TypeID = 1 << 14 // float
	TDouble      TypeID = 1 << 15 // double
	TComplex     TypeID = 1 << 16 // _Complex
	TImaginary   TypeID = 1 << 17 // _Imaginary
	TEnum        TypeID = 1 << 18 // enum
	TStruct      TypeID = 1 << 19 // struct
	TUnion       TypeID = 1 << 20 // union
	TClass       TypeID = 1 << 21 // class
	TNamespace   TypeID = 1 << 22 // namespace
	TScope       TypeID = 1 << 23 // generic scope
	TTypedefType TypeID = 1 << 24 // a typedef'd type, e.g. size_t
)

// Storage classes.
const (
	TAutoStorage TypeID = 1 << 28 // C's auto
	TAppleBlock  TypeID = 1 << 29 // Apple block storage
	TExtern      TypeID = 1 << 30 // extern
	TMutable     TypeID = 1 << 31 // mutable
	TRegister    TypeID = 1 << 32 // register
	TStatic      TypeID = 1 << 33 // static
	TThreadLocal TypeID = 1 << 34 // thread_local
	TTypedef     TypeID = 1 << 35 // typedef
)

// Storage-class-like keywords.
const (
	TConsteval   TypeID = 1 << 36 // consteval
	TConstexpr   TypeID = 1 << 37 // constexpr
	TDefault     TypeID = 1 << 38 // = default
	TDelete      TypeID = 1 << 39 // = delete
	TExplicit    TypeID = 1 << 40 // explicit
	TFinal       TypeID = 1 << 41 // final
	TFriend      TypeID = 1 << 42 // friend
	TInline      TypeID = 1 << 43 // inline
	TNoexcept    TypeID = 1 << 44 // noexcept
	TOverride    TypeID = 1 << 45 // override
	TPureVirtual TypeID = 1 << 46 // = 0
	TThrow       TypeID = 1 << 47 // throw()
	TVirtual     TypeID = 1 << 48 // virtual
)

// Attributes.
const (
	TCarriesDependency TypeID = 1 << 49 // carries_dependency
	TDeprecated        TypeID = 1 << 50 // deprecated
	TMaybeUnused       TypeID = 1 << 51 // maybe_unused
	TNodiscard         TypeID = 1 << 52 // nodiscard
	TNoreturn          TypeID = 1 << 53 // noreturn
)

// Qualifiers.
const (
	TAtomic   TypeID = 1 << 56 // _Atomic
	TConst    TypeID = 1 << 57 // const
	TRestrict TypeID = 1 << 58 // restrict
	TVolatile TypeID = 1 << 59 // volatile
)

// Ref-qualifiers, applicable only to member function declarators.
const (
	TRef       TypeID = 1 << 60 // void f() &
	TRvalueRef TypeID = 1 << 61 // void f() &&
)

// Category masks. They partition the bit space; no two overlap.
const (
	TMaskBase        TypeID = 0x000000000FFFFFFF
	TMaskStorage     TypeID = 0x0000000FF0000000
	TMaskStorageLike TypeID = 0x0001FFF000000000
	TMaskAttr        TypeID = 0x003E000000000000
	TMaskQual        TypeID = 0x0F00000000000000
	TMaskRef         TypeID = 0xF000000000000000

	// TMaskAnyStorage combines storage classes and storage-class-like bits,
	// which share placement rules.
	TMaskAnyStorage = TMaskStorage | TMaskStorageLike
)

// Combination shorthands.
const (
	TAnyChar          = TChar | TWChar | TChar8 | TChar16 | TChar32
	TAnyFloat         = TFloat | TDouble
	TAnyRef           = TRef | TRvalueRef
	TClassStructUnion = TClass | TStruct | TUnion
	TIntModifier      = TShort | TLong | TLongLong | TSigned | TUnsigned

	// TMemberOnly are the type bits legal only on class members.
	TMemberOnly = TConst | TVolatile | TDefault | TDelete | TOverride |
		TFinal | TVirtual | TRef | TRestrict | TRvalueRef

	// TNonMemberOnly are the type bits legal only on non-members.
	TNonMemberOnly = TFriend

	// TConstructorOnly are the type bits legal only on constructors.
	TConstructorOnly = TExplicit

	// TUserDefConv are the type bits applicable to user-defined conversion
	// operators.
	TUserDefConv = TConst | TConstexpr | TExplicit | TFinal | TFriend |
		TInline | TNoexcept | TOverride | TThrow | TPureVirtual | TVirtual
)

// typeLangs returns the set of dialects in which the single elementary type
// bit is legal at all, before combination rules.
func typeLangs(bit TypeID) LangSet {
	switch bit {
	case TVoid, TEnum, TSigned:
		return MinLang(LangC89)
	case TAutoType:
		return CPPMin(LangCPP11) | CMin(LangC23)
	case TBool, TLongLong, TInline, TRestrict:
		return CMin(LangC99) | LangSetCPPAny
	case TChar8:
		return CPPMin(LangCPP20) | CMin(LangC23)
	case TChar16, TChar32:
		return CPPMin(LangCPP11) | CMin(LangC11)
	case TWChar:
		return CMin(LangC95) | LangSetCPPAny
	case TComplex, TImaginary:
		return CMin(LangC99)
	case TClass, TNamespace, TScope, TMutable, TExplicit, TFriend,
		TPureVirtual, TVirtual:
		return LangSetCPPAny
	case TAutoStorage:
		return LangSetCAny | CPPMax(LangCPP03)
	case TRegister:
		return LangSetCAny | CPPMax(LangCPP14)
	case TThreadLocal, TNoreturn:
		return CMin(LangC11) | CPPMin(LangCPP11)
	case TConsteval:
		return CPPMin(LangCPP20)
	case TConstexpr:
		return CPPMin(LangCPP11) | CMin(LangC23)
	case TDefault, TDelete, TFinal, TNoexcept, TOverride, TRef, TRvalueRef,
		TCarriesDependency:
		return CPPMin(LangCPP11)
	case TThrow:
		return CPPMax(LangCPP14)
	case TDeprecated:
		return CPPMin(LangCPP14) | CMin(LangC23)
	case TMaybeUnused, TNodiscard:
		return CPPMin(LangCPP17) | CMin(LangC23)
	case TAtomic:
		return CMin(LangC11) | CPPMin(LangCPP23)
	case TConst, TVolatile:
		return MinLang(LangC89)
	default:
		return LangSetAny
	}
}

// typeGroups lists the mutually exclusive elementary type groups: a bit may
// not be added to a value that already holds a different bit of the same
// group. The long → long long escalation is handled separately.
var typeGroups = []TypeID{
	// Exactly one primary base type.
	TVoid | TAutoType | TBool | TAnyChar | TInt | TAnyFloat | TEnum |
		TStruct | TUnion | TClass | TNamespace | TTypedefType,
	TShort | TLong | TLongLong,
	TSigned | TUnsigned,
	TComplex | TImaginary,
	// Exactly one storage class; thread_local composes with static/extern
	// and so is not in the group.
	TAutoStorage | TExtern | TRegister | TStatic | TTypedef | TMutable,
	TConsteval | TConstexpr,
	TDefault | TDelete,
	TNoexcept | TThrow,
	TRef | TRvalueRef,
}

// AddType adds the elementary type bits of add to dst, e.g. "short" to
// "unsigned", rejecting duplicate or conflicting combinations and bits not
// legal in lang. The one sanctioned double-add is "long" to "long", which
// escalates to "long long"; adding "long" a third time is a conflict.
func AddType(dst, add TypeID, lang LangID) (TypeID, error) {
	for bit := TypeID(1); bit != 0; bit <<= 1 {
		if add&bit == 0 {
			continue
		}
		if langs := typeLangs(bit); !langs.Has(lang) {
			return dst, fmt.Errorf("%w: %q not supported%s", ErrLang,
				TypeNameEnglish(bit), langWhich(langs, lang))
		}
		if dst&bit != 0 {
			if bit == TLong && dst&TLongLong == 0 {
				dst = (dst &^ TLong) | TLongLong
				continue
			}
			return dst, fmt.Errorf("%w: %q is duplicate", ErrConflict,
				TypeNameEnglish(bit))
		}
		for _, group := range typeGroups {
			if group&bit == 0 {
				continue
			}
			if held := dst & group &^ bit; held != 0 {
				return dst, fmt.Errorf("%w: %q with %q", ErrConflict,
					TypeNameEnglish(bit), TypeNameEnglish(lowestBit(held)))
			}
		}
		dst |= bit
	}
	return dst, nil
}

// typeIllegalPair marks a pair of type bit sets whose combination is gated
// to langs (LangSetNone means illegal in every dialect).
type typeIllegalPair struct {
	a, b  TypeID
	langs LangSet
}

var typeIllegalPairs = []typeIllegalPair{
	{TVirtual, TStatic, LangSetNone},
	{TVirtual, TFriend, LangSetNone},
	{TVirtual, TConstexpr, CPPMin(LangCPP20)},
	{TFriend, TStatic, LangSetNone},
	{TSigned | TUnsigned,
		TVoid | TBool | TAnyFloat | TWChar | TChar8 | TChar16 | TChar32,
		LangSetNone},
	{TShort, TVoid | TBool | TAnyChar | TAnyFloat, LangSetNone},
	{TLong, TVoid | TBool | TAnyChar | TFloat, LangSetNone},
	{TLongLong, TVoid | TBool | TAnyChar | TAnyFloat, LangSetNone},
	{TShort, TLong | TLongLong, LangSetNone},
	{TComplex | TImaginary,
		TVoid | TBool | TAnyChar | TInt | TShort | TSigned | TUnsigned,
		LangSetNone},
	{TRestrict, TVoid, LangSetNone},
}

// TypeCheck returns the set of dialects in which the combination of bits in
// t is legal. Some combinations (e.g. virtual static) are legal in no
// dialect; others are dialect-gated (e.g. constexpr virtual needs C++20).
func TypeCheck(t TypeID) LangSet {
	langs := LangSetAny
	for bit := TypeID(1); bit != 0; bit <<= 1 {
		if t&bit != 0 {
			langs &= typeLangs(bit)
		}
	}
	for _, pair := range typeIllegalPairs {
		if t&pair.a != 0 && t&pair.b != 0 {
			langs &= pair.langs
		}
	}
	return langs
}

// lowestBit returns the lowest set bit of t.
func lowestBit(t TypeID) TypeID { return t & -t }

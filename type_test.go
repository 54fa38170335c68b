package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTypeLongEscalation(t *testing.T) {
	got, err := AddType(TNone, TLong, LangC23)
	require.NoError(t, err)

	// A second "long" escalates to "long long" instead of conflicting.
	got, err = AddType(got, TLong, LangC23)
	require.NoError(t, err)
	assert.NotZero(t, got&TLongLong)
	assert.Zero(t, got&TLong)

	// A third "long" has nowhere to go.
	_, err = AddType(got, TLong, LangC23)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddTypeConflicts(t *testing.T) {
	tests := []struct {
		name string
		bits []TypeID
	}{
		{"short long", []TypeID{TShort, TLong}},
		{"signed unsigned", []TypeID{TSigned, TUnsigned}},
		{"static extern", []TypeID{TStatic, TExtern}},
		{"int double", []TypeID{TInt, TDouble}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TypeID
			var err error
			for _, bit := range tt.bits {
				got, err = AddType(got, bit, LangCPP23)
				if err != nil {
					break
				}
			}
			assert.ErrorIs(t, err, ErrConflict)
		})
	}
}

func TestAddTypeDialect(t *testing.T) {
	// bool does not exist before C99.
	_, err := AddType(TNone, TBool, LangC89)
	assert.ErrorIs(t, err, ErrLang)

	got, err := AddType(TNone, TBool, LangC99)
	require.NoError(t, err)
	assert.Equal(t, TBool, got)

	// thread_local needs C11 or C++11.
	_, err = AddType(TNone, TThreadLocal, LangC99)
	assert.ErrorIs(t, err, ErrLang)
	_, err = AddType(TNone, TThreadLocal, LangC11)
	assert.NoError(t, err)
}

func TestTypeCheckPairs(t *testing.T) {
	// virtual constexpr member functions arrive in C++20.
	langs := TypeCheck(TVirtual | TConstexpr)
	assert.False(t, langs.Has(LangCPP17))
	assert.True(t, langs.Has(LangCPP20))

	// unsigned void is legal nowhere; AddType alone doesn't catch it.
	assert.Equal(t, LangSetNone, TypeCheck(TUnsigned|TVoid))
	assert.Equal(t, LangSetNone, TypeCheck(TVirtual|TStatic))
}

func TestTypeNameSpelling(t *testing.T) {
	assert.Equal(t, "_Bool", TypeName(TBool, LangC99))
	assert.Equal(t, "bool", TypeName(TBool, LangC23))
	assert.Equal(t, "bool", TypeName(TBool, LangCPP98))
	assert.Equal(t, "_Thread_local", TypeName(TThreadLocal, LangC11))
	assert.Equal(t, "thread_local", TypeName(TThreadLocal, LangCPP11))
	assert.Equal(t, "unsigned long long int",
		TypeName(TUnsigned|TLongLong|TInt, LangC23))
}

func TestTypeNameEnglishAliases(t *testing.T) {
	assert.Equal(t, "non-returning", TypeNameEnglish(TNoreturn))
	assert.Equal(t, "deleted", TypeNameEnglish(TDelete))
	assert.Equal(t, "pure virtual", TypeNameEnglish(TPureVirtual|TVirtual))
}

func TestTypeNameEastConst(t *testing.T) {
	assert.Equal(t, "const char", typeNameIn(TConst|TChar, LangC23, false))
	assert.Equal(t, "char const", typeNameIn(TConst|TChar, LangC23, true))
}

package cdecl

import "strings"

// LangID represents a single C/C++ language dialect. Dialects are bit flags
// in ascending standard order, so ordinary < and >= comparisons work as
// "older than" and "at least" range tests.
type LangID uint32

// Language dialects.
const (
	LangNone  LangID = 0         // No language
	LangCKNR  LangID = 1 << iota // K&R C
	LangC89                      // C89
	LangC95                      // C95
	LangC99                      // C99
	LangC11                      // C11
	LangC17                      // C17
	LangC23                      // C23
	LangCPP98                    // C++98
	LangCPP03                    // C++03
	LangCPP11                    // C++11
	LangCPP14                    // C++14
	LangCPP17                    // C++17
	LangCPP20                    // C++20
	LangCPP23                    // C++23
)

// LangSet is a set of language dialects, the bitwise-or of LangID values.
type LangSet uint32

// Language set shorthands.
const (
	LangSetNone LangSet = 0
	LangSetCAny LangSet = LangSet(LangCKNR | LangC89 | LangC95 | LangC99 |
		LangC11 | LangC17 | LangC23)
	LangSetCPPAny LangSet = LangSet(LangCPP98 | LangCPP03 | LangCPP11 |
		LangCPP14 | LangCPP17 | LangCPP20 | LangCPP23)
	LangSetAny LangSet = LangSetCAny | LangSetCPPAny
)

// MinLang returns the set of l and every newer dialect. Because C dialect
// bits sit below C++ bits, a C minimum includes all of C++, matching the
// original range semantics ("C11 and later" admits C++11 code too when the
// caller doesn't mask by family).
func MinLang(l LangID) LangSet {
	return LangSet(^(uint32(l) - 1)) & LangSetAny
}

// MaxLang returns the set of l and every older dialect.
func MaxLang(l LangID) LangSet {
	return LangSet((uint32(l)<<1)-1) & LangSetAny
}

// CMin returns the set of C dialects that are l or newer.
func CMin(l LangID) LangSet { return MinLang(l) & LangSetCAny }

// CMax returns the set of C dialects that are l or older.
func CMax(l LangID) LangSet { return MaxLang(l) & LangSetCAny }

// CPPMin returns the set of C++ dialects that are l or newer.
func CPPMin(l LangID) LangSet { return MinLang(l) & LangSetCPPAny }

// CPPMax returns the set of C++ dialects that are l or older.
func CPPMax(l LangID) LangSet { return MaxLang(l) & LangSetCPPAny }

// Has reports whether s contains l.
func (s LangSet) Has(l LangID) bool { return LangSet(l)&s != 0 }

// IsC reports whether l is a C (not C++) dialect.
func (l LangID) IsC() bool { return LangSetCAny.Has(l) }

// IsCPP reports whether l is a C++ dialect.
func (l LangID) IsCPP() bool { return LangSetCPPAny.Has(l) }

// String returns the canonical name of l, e.g. "C99" or "C++17".
func (l LangID) String() string {
	switch l {
	case LangCKNR:
		return "K&RC"
	case LangC89:
		return "C89"
	case LangC95:
		return "C95"
	case LangC99:
		return "C99"
	case LangC11:
		return "C11"
	case LangC17:
		return "C17"
	case LangC23:
		return "C23"
	case LangCPP98:
		return "C++98"
	case LangCPP03:
		return "C++03"
	case LangCPP11:
		return "C++11"
	case LangCPP14:
		return "C++14"
	case LangCPP17:
		return "C++17"
	case LangCPP20:
		return "C++20"
	case LangCPP23:
		return "C++23"
	}
	return ""
}

// langAlias maps a user-typed language name to its dialect.
type langAlias struct {
	name string // Accepted spelling, compared case-insensitively
	lang LangID // Dialect it names
}

// langAliases lists every accepted language name spelling. The list is
// small, so linear search is good enough.
var langAliases = []langAlias{
	{"C", LangC23},
	{"CK&R", LangCKNR},
	{"CKNR", LangCKNR},
	{"CKR", LangCKNR},
	{"K&R", LangCKNR},
	{"K&RC", LangCKNR},
	{"KNR", LangCKNR},
	{"KNRC", LangCKNR},
	{"KR", LangCKNR},
	{"KRC", LangCKNR},
	{"C78", LangCKNR},
	{"C89", LangC89},
	{"C90", LangC89},
	{"C95", LangC95},
	{"C99", LangC99},
	{"C11", LangC11},
	{"C17", LangC17},
	{"C18", LangC17},
	{"C23", LangC23},
	{"C++", LangCPP23},
	{"C++98", LangCPP98},
	{"C++03", LangCPP03},
	{"C++11", LangCPP11},
	{"C++14", LangCPP14},
	{"C++17", LangCPP17},
	{"C++20", LangCPP20},
	{"C++23", LangCPP23},
}

// FindLang returns the dialect named by name, or LangNone if the name is not
// a recognized language spelling.
func FindLang(name string) LangID {
	for _, a := range langAliases {
		if strings.EqualFold(name, a.name) {
			return a.lang
		}
	}
	return LangNone
}

// LangNames returns the canonical names of every dialect in s, oldest first.
func (s LangSet) LangNames() []string {
	var names []string
	for l := LangCKNR; l != 0 && LangSet(l) <= LangSetAny; l <<= 1 {
		if s.Has(l) {
			names = append(names, l.String())
		}
	}
	return names
}

// oldest returns the oldest dialect in s, or LangNone.
func (s LangSet) oldest() LangID {
	for l := LangCKNR; l != 0 && LangSet(l) <= LangSetAny; l <<= 1 {
		if s.Has(l) {
			return l
		}
	}
	return LangNone
}

// newest returns the newest dialect in s, or LangNone.
func (s LangSet) newest() LangID {
	found := LangNone
	for l := LangCKNR; l != 0 && LangSet(l) <= LangSetAny; l <<= 1 {
		if s.Has(l) {
			found = l
		}
	}
	return found
}

// coarseName returns "C" if s contains only C dialects, "C++" if only C++
// dialects, and "" if it contains both or neither.
func (s LangSet) coarseName() string {
	isC := s&LangSetCAny != 0
	isCPP := s&LangSetCPPAny != 0
	if isC != isCPP {
		if isC {
			return "C"
		}
		return "C++"
	}
	return ""
}

// langWhich phrases, for a diagnostic, the relation between the dialects a
// construct is legal in and the current dialect: " unless C++", " since
// C11", " until C23", or "" when nothing useful can be said.
func langWhich(legal LangSet, current LangID) string {
	if legal == LangSetNone {
		return ""
	}

	if legal&(legal-1) == 0 {
		// Legal in exactly one dialect.
		only := legal.oldest()
		if only == current {
			return ""
		}
		return " unless " + only.String()
	}

	// Restrict to the current dialect's family.
	var family LangSet
	if current.IsC() {
		family = LangSetCAny
	} else {
		family = LangSetCPPAny
	}
	legal &= family
	if legal == LangSetNone {
		if current.IsC() {
			return " in C"
		}
		return " in C++"
	}

	oldest := legal.oldest()
	if current < oldest {
		return " until " + oldest.String()
	}

	// The newest legal dialect is the last in which the construct is legal,
	// so the dialect after it is the first in which it is illegal.
	after := LangID(legal.newest() << 1)
	if after == LangNone || after.String() == "" {
		return ""
	}
	return " since " + after.String()
}

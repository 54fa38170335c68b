package cdecl

import "strings"

// ScopedName is an ordered sequence of identifier segments representing a
// possibly scoped C++ name such as "S::T::x". Each segment may carry its own
// scope type (namespace, class, struct, union, or generic scope).
type ScopedName struct {
	segs []nameSegment
}

// nameSegment is one identifier of a ScopedName.
type nameSegment struct {
	Name string // Identifier text
	Type TypeID // Scope type of this segment, TNone if unknown
}

// NewScopedName returns a ScopedName with the given unscoped segments.
func NewScopedName(names ...string) ScopedName {
	var sn ScopedName
	for _, n := range names {
		sn.Append(n, TNone)
	}
	return sn
}

// Empty reports whether sn has no segments.
func (sn *ScopedName) Empty() bool { return len(sn.segs) == 0 }

// Count returns the number of segments.
func (sn *ScopedName) Count() int { return len(sn.segs) }

// Append adds one segment with its scope type.
func (sn *ScopedName) Append(name string, scopeType TypeID) {
	sn.segs = append(sn.segs, nameSegment{Name: name, Type: scopeType})
}

// FullName returns all segments joined by "::".
func (sn *ScopedName) FullName() string {
	parts := make([]string, len(sn.segs))
	for i, s := range sn.segs {
		parts[i] = s.Name
	}
	return strings.Join(parts, "::")
}

// LocalName returns the last segment, the unqualified name.
func (sn *ScopedName) LocalName() string {
	if len(sn.segs) == 0 {
		return ""
	}
	return sn.segs[len(sn.segs)-1].Name
}

// ScopeName returns every segment but the last joined by "::".
func (sn *ScopedName) ScopeName() string {
	if len(sn.segs) < 2 {
		return ""
	}
	parts := make([]string, len(sn.segs)-1)
	for i, s := range sn.segs[:len(sn.segs)-1] {
		parts[i] = s.Name
	}
	return strings.Join(parts, "::")
}

// ScopeType returns the scope type of the next-to-last segment, the
// innermost enclosing scope of the local name.
func (sn *ScopedName) ScopeType() TypeID {
	if len(sn.segs) < 2 {
		return TNone
	}
	return sn.segs[len(sn.segs)-2].Type
}

// SetScopeTypes sets the scope type of every segment but the last.
func (sn *ScopedName) SetScopeTypes(scopeType TypeID) {
	for i := range sn.segs[:max(len(sn.segs)-1, 0)] {
		sn.segs[i].Type = scopeType
	}
}

// Dup returns a deep copy of sn.
func (sn *ScopedName) Dup() ScopedName {
	out := ScopedName{segs: make([]nameSegment, len(sn.segs))}
	copy(out.segs, sn.segs)
	return out
}

// String returns the full "::"-joined name.
func (sn ScopedName) String() string { return sn.FullName() }

package gotypes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sghaida/obind/binding"
)

// Annotation is an immutable annotation value: a declared type, a member
// map, and an optional unwrap policy designating one member whose value
// stands in for the whole annotation during map-key grouping.
//
// Member values should be literals or binding.TypeRef handles; that is what
// the binding package's structural comparison understands.
type Annotation struct {
	typ          binding.TypeRef
	members      map[string]any
	unwrapMember string
}

// NewAnnotation creates an annotation of the given declared type with the
// given members. The member map is copied.
func NewAnnotation(typ binding.TypeRef, members map[string]any) Annotation {
	return Annotation{typ: typ, members: copyMembers(members)}
}

// Unwrapped returns a copy of the annotation whose grouping policy unwraps
// the named member.
func (a Annotation) Unwrapped(member string) Annotation {
	a.unwrapMember = member
	return a
}

// Type returns the annotation's declared type.
func (a Annotation) Type() binding.TypeRef { return a.typ }

// UnwrapsValue reports whether grouping uses the designated member's value
// instead of the whole annotation.
func (a Annotation) UnwrapsValue() bool { return a.unwrapMember != "" }

// Value returns the designated member's value, or nil when the annotation
// does not unwrap.
func (a Annotation) Value() any {
	if a.unwrapMember == "" {
		return nil
	}
	return a.members[a.unwrapMember]
}

// Members returns a copy of the annotation's member map.
func (a Annotation) Members() map[string]any {
	return copyMembers(a.members)
}

// String renders the annotation as @type{member: value, ...} with members
// in name order.
func (a Annotation) String() string {
	var sb strings.Builder
	sb.WriteByte('@')
	if a.typ != nil {
		sb.WriteString(a.typ.String())
	}
	if len(a.members) == 0 {
		return sb.String()
	}
	names := make([]string, 0, len(a.members))
	for name := range a.members {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(renderMember(a.members[name]))
	}
	sb.WriteByte('}')
	return sb.String()
}

func copyMembers(members map[string]any) map[string]any {
	if len(members) == 0 {
		return nil
	}
	out := make(map[string]any, len(members))
	for name, value := range members {
		out[name] = value
	}
	return out
}

func renderMember(v any) string {
	switch v := v.(type) {
	case string:
		return `"` + v + `"`
	case binding.TypeRef:
		return v.String()
	case interface{ String() string }:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

package binding

import "github.com/google/go-cmp/cmp"

// Key identifies a requested type plus an optional qualifier annotation.
//
// Keys are small immutable values with structural equality: two keys are
// equal when their types are structurally equal and their qualifiers (if
// any) are structurally equal annotations.
type Key struct {
	typ       TypeRef
	qualifier Annotation
}

// NewKey returns an unqualified key for the given type.
func NewKey(typ TypeRef) Key {
	return Key{typ: typ}
}

// QualifiedKey returns a key for the given type carrying a qualifier
// annotation. A nil qualifier yields the same key as NewKey.
func QualifiedKey(typ TypeRef, qualifier Annotation) Key {
	return Key{typ: typ, qualifier: qualifier}
}

// Type returns the requested type.
func (k Key) Type() TypeRef { return k.typ }

// Qualifier returns the qualifier annotation, if any.
func (k Key) Qualifier() (Annotation, bool) {
	return k.qualifier, k.qualifier != nil
}

// Equal reports structural equality with another key.
func (k Key) Equal(other Key) bool {
	if !typeRefsEqual(k.typ, other.typ) {
		return false
	}
	return annotationsEqual(k.qualifier, other.qualifier)
}

// String renders the key as "type" or "@qualifier type".
func (k Key) String() string {
	if k.typ == nil {
		return "<untyped key>"
	}
	if k.qualifier == nil {
		return k.typ.String()
	}
	return "@" + k.qualifier.Type().String() + " " + k.typ.String()
}

// RequestKind describes how a dependency is consumed at the request site:
// directly, or through one of the framework's deferred wrappers.
type RequestKind uint8

const (
	// InstanceRequest consumes the dependency's value directly.
	InstanceRequest RequestKind = iota

	// ProviderRequest consumes a provider of the value.
	ProviderRequest

	// LazyRequest consumes a memoizing, on-demand view of the value.
	LazyRequest

	// ProducerRequest consumes a producer of the value.
	ProducerRequest
)

// String implements fmt.Stringer.
func (k RequestKind) String() string {
	switch k {
	case InstanceRequest:
		return "INSTANCE"
	case ProviderRequest:
		return "PROVIDER"
	case LazyRequest:
		return "LAZY"
	case ProducerRequest:
		return "PRODUCER"
	default:
		return "UNKNOWN"
	}
}

// DependencyRequest is one dependency edge of a binding: the key it asks for
// and how it wants it. The order of requests within a binding is significant
// because it drives generated-code parameter order.
type DependencyRequest struct {
	key  Key
	kind RequestKind
}

// NewDependencyRequest returns a dependency request for the given key.
func NewDependencyRequest(key Key, kind RequestKind) DependencyRequest {
	return DependencyRequest{key: key, kind: kind}
}

// Key returns the requested key.
func (r DependencyRequest) Key() Key { return r.key }

// Kind returns how the dependency is consumed.
func (r DependencyRequest) Kind() RequestKind { return r.kind }

// typeRefComparer lets go-cmp compare values that carry TypeRef handles by
// delegating to the handles' own structural equality.
var typeRefComparer = cmp.Comparer(func(a, b TypeRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
})

func typeRefsEqual(a, b TypeRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// structurallyEqual compares two grouping values by content. TypeRef handles
// nested anywhere inside the values are compared via their Equal method.
func structurallyEqual(a, b any) bool {
	return cmp.Equal(a, b, typeRefComparer)
}

// annotationsEqual compares two annotations structurally: same declared
// type, same member values.
func annotationsEqual(a, b Annotation) bool {
	if a == nil || b == nil {
		return a == b
	}
	return typeRefsEqual(a.Type(), b.Type()) && structurallyEqual(a.Members(), b.Members())
}

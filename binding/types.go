package binding

// TypeRef is an opaque handle to a resolved type, supplied by a front-end.
//
// The core needs nothing from a type beyond structural equality and a
// printable form; shape questions (is this a set, is this a map) go through
// a ShapeInspector instead so the core never learns a type system.
type TypeRef interface {
	// Equal reports structural equality with another handle. Handles from
	// different front-ends are never equal.
	Equal(TypeRef) bool

	// String returns a stable, human-readable form used in error messages.
	String() string
}

// Element is an opaque handle to the source declaration that produced a
// binding (a constructor, a module method, a component method).
//
// The core only ever asks whether invoking the declaration needs a live
// owning-module instance, so the surface is the two modifier flags that
// decide it.
type Element interface {
	// Name identifies the declaration for error messages.
	Name() string

	// Static reports that the declaration is invocable without an instance
	// of its owner.
	Static() bool

	// Abstract reports that the declaration has no body of its own and is
	// implemented elsewhere.
	Abstract() bool
}

// Annotation is the map-key (or qualifier) metadata attached to a binding.
//
// Two annotations are compared structurally: same declared type, same member
// values. When UnwrapsValue is true the annotation designates a single
// member whose value stands in for the whole annotation during map-key
// grouping.
type Annotation interface {
	// Type is the declared type of the annotation.
	Type() TypeRef

	// UnwrapsValue reports the annotation's grouping policy: true means
	// grouping uses the designated member's value, false means grouping
	// compares the whole annotation.
	UnwrapsValue() bool

	// Value returns the designated member's value. Meaningful only when
	// UnwrapsValue is true.
	Value() any

	// Members returns the annotation's full structural content, member name
	// to value. Used for whole-annotation comparison.
	Members() map[string]any
}

// ShapeInspector answers the structural shape questions the core needs about
// a type. It is supplied by the same front-end that mints TypeRefs.
type ShapeInspector interface {
	// IsSet reports whether the type is a set of some element type.
	IsSet(TypeRef) bool

	// IsMap reports whether the type is a map from some key to some value.
	IsMap(TypeRef) bool

	// SetElementType returns the element type of a set-shaped type. It
	// fails when the type is not set-shaped.
	SetElementType(TypeRef) (TypeRef, error)

	// MapValueType returns the value type of a map-shaped type. It fails
	// when the type is not map-shaped.
	MapValueType(TypeRef) (TypeRef, error)

	// UnwrappedMapValueType returns the value type of a map-shaped type
	// after stripping the given framework's deferred wrapper from the value
	// slot, or the value type unchanged when the slot is not wrapped. It
	// fails when the type is not map-shaped.
	UnwrappedMapValueType(t TypeRef, framework FrameworkType) (TypeRef, error)
}

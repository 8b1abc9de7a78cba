package gotypes

import (
	"go/types"

	"github.com/sghaida/obind/binding"
)

// NotSetShapedError reports a set-element query on a type that is not
// set-shaped.
type NotSetShapedError struct {
	// Type is the queried type handle.
	Type binding.TypeRef
}

// Error implements the error interface.
func (e NotSetShapedError) Error() string {
	return "gotypes: not a set-shaped type: " + e.Type.String()
}

// NotMapShapedError reports a map-value query on a type that is not
// map-shaped.
type NotMapShapedError struct {
	// Type is the queried type handle.
	Type binding.TypeRef
}

// Error implements the error interface.
func (e NotMapShapedError) Error() string {
	return "gotypes: not a map-shaped type: " + e.Type.String()
}

// Shapes answers the binding package's shape questions in go/types terms:
// slices are sets, map[K]V is a map, and deferred wrappers are thunks.
//
// The zero value mints fresh handles on every answer; NewShapes with an
// interner canonicalizes answers through it.
type Shapes struct {
	interner *Interner
}

// NewShapes returns a shape inspector whose answers are canonicalized
// through the given interner. A nil interner is allowed.
func NewShapes(in *Interner) Shapes {
	return Shapes{interner: in}
}

func (s Shapes) handle(t types.Type) binding.TypeRef {
	if s.interner != nil {
		return s.interner.Intern(t)
	}
	return NewType(t)
}

// IsSet reports whether the type is set-shaped: its underlying type is a
// slice.
func (s Shapes) IsSet(ref binding.TypeRef) bool {
	t, ok := goType(ref)
	if !ok {
		return false
	}
	_, isSlice := t.Underlying().(*types.Slice)
	return isSlice
}

// IsMap reports whether the type is map-shaped: its underlying type is a
// map.
func (s Shapes) IsMap(ref binding.TypeRef) bool {
	t, ok := goType(ref)
	if !ok {
		return false
	}
	_, isMap := t.Underlying().(*types.Map)
	return isMap
}

// SetElementType returns the element type of a set-shaped type.
func (s Shapes) SetElementType(ref binding.TypeRef) (binding.TypeRef, error) {
	t, ok := goType(ref)
	if !ok {
		return nil, ErrForeignType
	}
	slice, ok := t.Underlying().(*types.Slice)
	if !ok {
		return nil, NotSetShapedError{Type: ref}
	}
	return s.handle(slice.Elem()), nil
}

// MapValueType returns the value type of a map-shaped type, wrapper and
// all.
func (s Shapes) MapValueType(ref binding.TypeRef) (binding.TypeRef, error) {
	t, ok := goType(ref)
	if !ok {
		return nil, ErrForeignType
	}
	m, ok := t.Underlying().(*types.Map)
	if !ok {
		return nil, NotMapShapedError{Type: ref}
	}
	return s.handle(m.Elem()), nil
}

// UnwrappedMapValueType returns the value type of a map-shaped type after
// stripping the framework's thunk wrapper from the value slot: func() V
// unwraps to V for providers, func() (V, error) to V for producers. A value
// slot that is not the asked-about wrapper is returned unchanged.
func (s Shapes) UnwrappedMapValueType(ref binding.TypeRef, framework binding.FrameworkType) (binding.TypeRef, error) {
	t, ok := goType(ref)
	if !ok {
		return nil, ErrForeignType
	}
	m, ok := t.Underlying().(*types.Map)
	if !ok {
		return nil, NotMapShapedError{Type: ref}
	}
	value := m.Elem()
	if wrapped, ok := unwrapThunk(value, framework); ok {
		return s.handle(wrapped), nil
	}
	return s.handle(value), nil
}

// unwrapThunk matches a framework's deferred-wrapper shape against t and
// returns the wrapped value type on a match.
func unwrapThunk(t types.Type, framework binding.FrameworkType) (types.Type, bool) {
	sig, ok := t.Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Variadic() || sig.Recv() != nil {
		return nil, false
	}
	results := sig.Results()
	switch framework {
	case binding.ProviderFramework:
		if results.Len() == 1 {
			return results.At(0).Type(), true
		}
	case binding.ProducerFramework:
		if results.Len() == 2 && isErrorType(results.At(1).Type()) {
			return results.At(0).Type(), true
		}
	}
	return nil, false
}

func isErrorType(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

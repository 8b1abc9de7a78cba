package binding_test

import "github.com/sghaida/obind/binding"

// fakeType is a structural type handle for tests: two handles are equal when
// their names match.
type fakeType string

func (t fakeType) Equal(other binding.TypeRef) bool {
	o, ok := other.(fakeType)
	return ok && o == t
}

func (t fakeType) String() string { return string(t) }

// fakeElement is a declaration handle with explicit modifier flags.
type fakeElement struct {
	name     string
	static   bool
	abstract bool
}

func (e fakeElement) Name() string   { return e.name }
func (e fakeElement) Static() bool   { return e.static }
func (e fakeElement) Abstract() bool { return e.abstract }

// fakeAnnotation is an annotation value with a configurable unwrap policy.
type fakeAnnotation struct {
	typ     binding.TypeRef
	members map[string]any
	unwrap  string // member designated by the unwrap policy, "" for none
}

func (a fakeAnnotation) Type() binding.TypeRef { return a.typ }
func (a fakeAnnotation) UnwrapsValue() bool    { return a.unwrap != "" }

func (a fakeAnnotation) Value() any {
	if a.unwrap == "" {
		return nil
	}
	return a.members[a.unwrap]
}

func (a fakeAnnotation) Members() map[string]any { return a.members }

// fakeShapes answers shape queries from explicit lookup tables.
type fakeShapes struct {
	setElems  map[binding.TypeRef]binding.TypeRef
	mapValues map[binding.TypeRef]binding.TypeRef
	unwrapped map[binding.TypeRef]map[binding.FrameworkType]binding.TypeRef
}

func (s fakeShapes) IsSet(t binding.TypeRef) bool {
	_, ok := s.setElems[t]
	return ok
}

func (s fakeShapes) IsMap(t binding.TypeRef) bool {
	_, ok := s.mapValues[t]
	return ok
}

func (s fakeShapes) SetElementType(t binding.TypeRef) (binding.TypeRef, error) {
	elem, ok := s.setElems[t]
	if !ok {
		return nil, errNotSet
	}
	return elem, nil
}

func (s fakeShapes) MapValueType(t binding.TypeRef) (binding.TypeRef, error) {
	value, ok := s.mapValues[t]
	if !ok {
		return nil, errNotMap
	}
	return value, nil
}

func (s fakeShapes) UnwrappedMapValueType(t binding.TypeRef, framework binding.FrameworkType) (binding.TypeRef, error) {
	byFramework, ok := s.unwrapped[t]
	if !ok {
		return nil, errNotMap
	}
	return byFramework[framework], nil
}

type fakeShapeError string

func (e fakeShapeError) Error() string { return string(e) }

const (
	errNotSet fakeShapeError = "fake: not a set"
	errNotMap fakeShapeError = "fake: not a map"
)

package binding

// ContributionBinding is an immutable record describing one contribution:
// one way of supplying a value for its key.
//
// Bindings are created exactly once by a construction path that fixes their
// Kind (the Builder for declared kinds, the synthetic constructors for
// graph-internal ones) and are read-only afterwards, so they can be shared
// freely across graph-construction and code-generation passes.
type ContributionBinding struct {
	element          Element
	module           TypeRef
	key              Key
	deps             []DependencyRequest
	nullableType     TypeRef
	mapKey           Annotation
	contributionType ContributionType
	kind             Kind
}

// Key returns the key this binding contributes to.
func (b *ContributionBinding) Key() Key { return b.key }

// Kind returns the binding's origin tag.
func (b *ContributionBinding) Kind() Kind { return b.kind }

// ContributionType returns how the binding participates in the supply of
// its key.
func (b *ContributionBinding) ContributionType() ContributionType { return b.contributionType }

// Element returns the source declaration behind the binding. Synthetic
// bindings have none.
func (b *ContributionBinding) Element() (Element, bool) {
	return b.element, b.element != nil
}

// ContributingModule returns the module type that owns the binding's
// declaration, if any.
func (b *ContributionBinding) ContributingModule() (TypeRef, bool) {
	return b.module, b.module != nil
}

// Dependencies returns the binding's dependency requests in declaration
// order. The returned slice is a copy; callers may not mutate binding state
// through it.
func (b *ContributionBinding) Dependencies() []DependencyRequest {
	if len(b.deps) == 0 {
		return nil
	}
	out := make([]DependencyRequest, len(b.deps))
	copy(out, b.deps)
	return out
}

// NullableType returns the type that marks this contribution as allowed to
// produce null, if any.
func (b *ContributionBinding) NullableType() (TypeRef, bool) {
	return b.nullableType, b.nullableType != nil
}

// IsNullable reports whether the contribution may legitimately produce
// null.
func (b *ContributionBinding) IsNullable() bool { return b.nullableType != nil }

// MapKey returns the binding's map-key annotation.
//
// Only map contributions carry one; querying anything else is a caller bug
// and fails with a MissingMapKeyError.
func (b *ContributionBinding) MapKey() (Annotation, error) {
	if b.contributionType != Map {
		return nil, MissingMapKeyError{Key: b.key, ContributionType: b.contributionType}
	}
	return b.mapKey, nil
}

// Framework returns the deferred abstraction the binding resolves through,
// derived from its kind's category.
func (b *ContributionBinding) Framework() FrameworkType { return b.kind.Framework() }

// RequiresModuleInstance reports whether invoking the binding's declaration
// needs a live instance of its owning module: the declaration and module
// are both present and the declaration is an instance-level callable that
// is neither abstract nor static.
func (b *ContributionBinding) RequiresModuleInstance() bool {
	if b.element == nil || b.module == nil {
		return false
	}
	return !b.element.Abstract() && !b.element.Static()
}

// FactoryCreationStrategy is the policy for how a binding's generated
// factory is instantiated.
type FactoryCreationStrategy uint8

const (
	// SharedInstance is a stateless singleton factory with no captured
	// data, shared by every request site.
	SharedInstance FactoryCreationStrategy = iota

	// ConstructedInstance is a factory instantiated with its captured
	// dependencies and/or a module instance.
	ConstructedInstance

	// Delegated is a factory that simply forwards to another binding's
	// factory.
	Delegated
)

// String implements fmt.Stringer.
func (s FactoryCreationStrategy) String() string {
	switch s {
	case SharedInstance:
		return "SHARED_INSTANCE"
	case ConstructedInstance:
		return "CONSTRUCTED_INSTANCE"
	case Delegated:
		return "DELEGATED"
	default:
		return "UNKNOWN"
	}
}

// FactoryCreationStrategy resolves the construction strategy for the
// binding's generated factory.
//
// Delegate bindings delegate. A shared stateless factory is only safe when
// there is nothing to capture: no dependencies and, for provision methods,
// no module instance. Everything else gets a constructed factory.
func (b *ContributionBinding) FactoryCreationStrategy() FactoryCreationStrategy {
	switch b.kind {
	case SyntheticDelegateBinding:
		return Delegated
	case Provision:
		if len(b.deps) == 0 && !b.RequiresModuleInstance() {
			return SharedInstance
		}
		return ConstructedInstance
	case Injection, SyntheticMultiboundSet, SyntheticMultiboundMap:
		if len(b.deps) == 0 {
			return SharedInstance
		}
		return ConstructedInstance
	case SyntheticMap, Component, ComponentProvision, SubcomponentBuilder,
		Immediate, FutureProduction, ComponentProduction:
		return ConstructedInstance
	default:
		return ConstructedInstance
	}
}

// FactoryType resolves the type of the value the binding's generated
// factory ultimately yields: the unwrapped map value for a map
// contribution, the set element for a set contribution, and the key's own
// type otherwise.
func (b *ContributionBinding) FactoryType(shapes ShapeInspector) (TypeRef, error) {
	switch b.contributionType {
	case Map:
		return shapes.UnwrappedMapValueType(b.key.Type(), b.Framework())
	case Set:
		return shapes.SetElementType(b.key.Type())
	case SetValues, Unique:
		return b.key.Type(), nil
	default:
		return nil, UnreachableContributionTypeError{ContributionType: b.contributionType}
	}
}

package binding

// ContributionType describes how a contribution participates in the supply
// of its key: on its own, or as part of a synthesized set or map.
type ContributionType uint8

const (
	// Unique is a contribution that is the sole supplier of its key.
	Unique ContributionType = iota

	// Set contributes one element to a multibound set.
	Set

	// SetValues contributes a whole set of elements to a multibound set.
	SetValues

	// Map contributes one entry to a multibound map, keyed by the
	// binding's map-key annotation.
	Map
)

// String implements fmt.Stringer.
func (t ContributionType) String() string {
	switch t {
	case Unique:
		return "UNIQUE"
	case Set:
		return "SET"
	case SetValues:
		return "SET_VALUES"
	case Map:
		return "MAP"
	default:
		return "UNKNOWN"
	}
}

// IsMultibinding reports whether the contribution joins a synthesized
// aggregate rather than supplying its key alone.
func (t ContributionType) IsMultibinding() bool {
	return t == Set || t == SetValues || t == Map
}

// Kind is the closed taxonomy of binding origins. Every binding is tagged
// with exactly one Kind at construction; the Kind decides which invariants
// and decision rules apply to it elsewhere.
type Kind uint8

const (
	// SyntheticMap is the graph-internal binding for a map of values that
	// depends on the corresponding map of providers or producers.
	SyntheticMap Kind = iota

	// SyntheticMultiboundSet is the graph-internal binding for a multibound
	// set, depending on the individual set contributions.
	SyntheticMultiboundSet

	// SyntheticMultiboundMap is the graph-internal binding for a multibound
	// map, depending on the individual map contributions.
	SyntheticMultiboundMap

	// SyntheticDelegateBinding satisfies requests for one key by delegating
	// to another binding.
	SyntheticDelegateBinding

	// Injection is a constructor the framework invokes directly.
	Injection

	// Provision is a provider method declared on a module.
	Provision

	// Component is the implicit binding for the component type itself.
	Component

	// ComponentProvision is a provision method on a component dependency.
	ComponentProvision

	// SubcomponentBuilder is a subcomponent builder method on a component
	// or subcomponent.
	SubcomponentBuilder

	// Immediate is a producer method that yields its value synchronously.
	Immediate

	// FutureProduction is a producer method that yields a future.
	FutureProduction

	// ComponentProduction is a production method on a production
	// component's dependency that yields a future.
	ComponentProduction
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case SyntheticMap:
		return "SYNTHETIC_MAP"
	case SyntheticMultiboundSet:
		return "SYNTHETIC_MULTIBOUND_SET"
	case SyntheticMultiboundMap:
		return "SYNTHETIC_MULTIBOUND_MAP"
	case SyntheticDelegateBinding:
		return "SYNTHETIC_DELEGATE_BINDING"
	case Injection:
		return "INJECTION"
	case Provision:
		return "PROVISION"
	case Component:
		return "COMPONENT"
	case ComponentProvision:
		return "COMPONENT_PROVISION"
	case SubcomponentBuilder:
		return "SUBCOMPONENT_BUILDER"
	case Immediate:
		return "IMMEDIATE"
	case FutureProduction:
		return "FUTURE_PRODUCTION"
	case ComponentProduction:
		return "COMPONENT_PRODUCTION"
	default:
		return "UNKNOWN"
	}
}

// IsSynthetic reports whether the kind is graph-internal, with no direct
// source declaration behind it.
func (k Kind) IsSynthetic() bool {
	switch k {
	case SyntheticMap, SyntheticMultiboundSet, SyntheticMultiboundMap, SyntheticDelegateBinding:
		return true
	default:
		return false
	}
}

// IsMultibinding reports whether the kind is one of the synthetic
// multibinding aggregates.
func (k Kind) IsMultibinding() bool {
	return k == SyntheticMultiboundSet || k == SyntheticMultiboundMap
}

// IsProduction reports whether the kind belongs to the production category,
// whose values may be produced asynchronously.
func (k Kind) IsProduction() bool {
	switch k {
	case Immediate, FutureProduction, ComponentProduction:
		return true
	default:
		return false
	}
}

// FrameworkType identifies which deferred abstraction the generated code
// resolves a binding through.
type FrameworkType uint8

const (
	// ProviderFramework resolves through a synchronous provider.
	ProviderFramework FrameworkType = iota

	// ProducerFramework resolves through an asynchronous producer.
	ProducerFramework
)

// String implements fmt.Stringer.
func (f FrameworkType) String() string {
	switch f {
	case ProviderFramework:
		return "PROVIDER"
	case ProducerFramework:
		return "PRODUCER"
	default:
		return "UNKNOWN"
	}
}

// Framework returns the deferred abstraction for the kind's category:
// production kinds resolve through producers, everything else through
// providers.
func (k Kind) Framework() FrameworkType {
	if k.IsProduction() {
		return ProducerFramework
	}
	return ProviderFramework
}

// KindForMultibindingKey derives the synthetic multibinding kind for a key:
// SyntheticMultiboundSet for a set-shaped key, SyntheticMultiboundMap for a
// map-shaped one.
//
// Any other shape is a caller bug (callers must pre-filter to multibinding
// keys) and fails with an InvalidMultibindingKeyError.
func KindForMultibindingKey(key Key, shapes ShapeInspector) (Kind, error) {
	switch {
	case shapes.IsSet(key.Type()):
		return SyntheticMultiboundSet, nil
	case shapes.IsMap(key.Type()):
		return SyntheticMultiboundMap, nil
	default:
		return 0, InvalidMultibindingKeyError{Key: key}
	}
}

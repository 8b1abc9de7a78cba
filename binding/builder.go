package binding

// Builder assembles a ContributionBinding for a declared (non-synthetic)
// kind. Setters may be chained; all validation happens in Build so a
// half-configured builder is never an error by itself.
type Builder struct {
	binding ContributionBinding
	kindSet bool
}

// NewBuilder starts a builder for a binding that contributes to key.
func NewBuilder(key Key) *Builder {
	b := &Builder{}
	b.binding.key = key
	return b
}

// ContributionType sets how the binding participates in the supply of its
// key. The zero value is Unique.
func (b *Builder) ContributionType(t ContributionType) *Builder {
	b.binding.contributionType = t
	return b
}

// Kind tags the binding's origin. Synthetic kinds are rejected at Build
// time; use the dedicated constructors for those.
func (b *Builder) Kind(k Kind) *Builder {
	b.binding.kind = k
	b.kindSet = true
	return b
}

// Element records the source declaration behind the binding.
func (b *Builder) Element(e Element) *Builder {
	b.binding.element = e
	return b
}

// Module records the module type that owns the binding's declaration.
func (b *Builder) Module(m TypeRef) *Builder {
	b.binding.module = m
	return b
}

// Dependencies records the binding's dependency requests in declaration
// order, replacing any previously recorded ones. The slice is copied.
func (b *Builder) Dependencies(deps ...DependencyRequest) *Builder {
	if len(deps) == 0 {
		b.binding.deps = nil
		return b
	}
	b.binding.deps = make([]DependencyRequest, len(deps))
	copy(b.binding.deps, deps)
	return b
}

// Nullable marks the contribution as allowed to produce null, recording the
// type that says so.
func (b *Builder) Nullable(t TypeRef) *Builder {
	b.binding.nullableType = t
	return b
}

// MapKey records the map-key annotation for a Map contribution.
func (b *Builder) MapKey(ann Annotation) *Builder {
	b.binding.mapKey = ann
	return b
}

// Build validates the configuration and returns the immutable binding.
//
// It fails with ErrUntypedKey for a key without a type, ErrUnspecifiedKind
// when no kind was set, a SyntheticKindError for synthetic kinds, and a
// MapKeyMismatchError when the Map contribution type and the map-key
// annotation disagree (a map contribution must carry one, nothing else
// may).
func (b *Builder) Build() (*ContributionBinding, error) {
	if b.binding.key.Type() == nil {
		return nil, ErrUntypedKey
	}
	if !b.kindSet {
		return nil, ErrUnspecifiedKind
	}
	if b.binding.kind.IsSynthetic() {
		return nil, SyntheticKindError{Kind: b.binding.kind}
	}
	if err := checkMapKeyPairing(b.binding.contributionType, b.binding.mapKey); err != nil {
		return nil, err
	}

	built := b.binding
	return &built, nil
}

// checkMapKeyPairing enforces the Map ⇔ map-key invariant at construction
// time.
func checkMapKeyPairing(t ContributionType, mapKey Annotation) error {
	if (t == Map) == (mapKey != nil) {
		return nil
	}
	return MapKeyMismatchError{ContributionType: t, HasMapKey: mapKey != nil}
}

// DelegateOption configures a delegate binding beyond its key and target.
type DelegateOption func(*ContributionBinding)

// DelegateAs sets the delegate's contribution type; delegated declarations
// can themselves contribute into sets and maps.
func DelegateAs(t ContributionType) DelegateOption {
	return func(b *ContributionBinding) { b.contributionType = t }
}

// DelegateMapKey attaches the map-key annotation of a delegated map
// contribution.
func DelegateMapKey(ann Annotation) DelegateOption {
	return func(b *ContributionBinding) { b.mapKey = ann }
}

// DelegateNullable marks the delegated contribution as allowed to produce
// null.
func DelegateNullable(t TypeRef) DelegateOption {
	return func(b *ContributionBinding) { b.nullableType = t }
}

// NewDelegateBinding creates the synthetic binding that satisfies requests
// for key by forwarding to the binding for delegate's key. Its kind is
// always SyntheticDelegateBinding and its only dependency is the delegation
// target.
func NewDelegateBinding(key Key, delegate DependencyRequest, opts ...DelegateOption) (*ContributionBinding, error) {
	if key.Type() == nil {
		return nil, ErrUntypedKey
	}
	b := ContributionBinding{
		key:              key,
		deps:             []DependencyRequest{delegate},
		contributionType: Unique,
		kind:             SyntheticDelegateBinding,
	}
	for _, opt := range opts {
		opt(&b)
	}
	if err := checkMapKeyPairing(b.contributionType, b.mapKey); err != nil {
		return nil, err
	}
	return &b, nil
}

// NewMultiboundBinding creates the synthetic aggregate binding for a
// multibound set or map key, depending on the individual contributions in
// deps. The kind is derived from the key's shape, so a key that is neither
// set- nor map-shaped fails with an InvalidMultibindingKeyError.
func NewMultiboundBinding(key Key, shapes ShapeInspector, deps ...DependencyRequest) (*ContributionBinding, error) {
	if key.Type() == nil {
		return nil, ErrUntypedKey
	}
	kind, err := KindForMultibindingKey(key, shapes)
	if err != nil {
		return nil, err
	}
	b := ContributionBinding{
		key:              key,
		contributionType: Unique,
		kind:             kind,
	}
	if len(deps) > 0 {
		b.deps = make([]DependencyRequest, len(deps))
		copy(b.deps, deps)
	}
	return &b, nil
}

// NewSyntheticMapBinding creates the synthetic binding for a map of values
// that depends on the corresponding map of providers or producers.
func NewSyntheticMapBinding(key Key, frameworkMap DependencyRequest) (*ContributionBinding, error) {
	if key.Type() == nil {
		return nil, ErrUntypedKey
	}
	return &ContributionBinding{
		key:              key,
		deps:             []DependencyRequest{frameworkMap},
		contributionType: Unique,
		kind:             SyntheticMap,
	}, nil
}

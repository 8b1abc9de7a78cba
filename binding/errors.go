package binding

import "errors"

var (
	// ErrInvalidMultibindingKey is the sentinel behind
	// InvalidMultibindingKeyError: a multibinding kind was derived from a
	// key that is neither set- nor map-shaped.
	ErrInvalidMultibindingKey = errors.New("binding: key is not for a set or map")

	// ErrMissingMapKey is the sentinel behind MissingMapKeyError: a map key
	// was queried on a binding that is not a map contribution.
	ErrMissingMapKey = errors.New("binding: no map key on a non-map contribution")

	// ErrUnreachableContributionType is the sentinel behind
	// UnreachableContributionTypeError: a decision function reached a
	// contribution type outside the closed enum.
	ErrUnreachableContributionType = errors.New("binding: unreachable contribution type")

	// ErrUntypedKey is returned when a binding is constructed for a key
	// that carries no type.
	ErrUntypedKey = errors.New("binding: key has no type")

	// ErrUnspecifiedKind is returned when a builder is finalized without a
	// kind.
	ErrUnspecifiedKind = errors.New("binding: kind not specified")
)

// InvalidMultibindingKeyError reports the key whose shape was neither set
// nor map. It signals a bug in the caller's pre-filtering, not bad input.
type InvalidMultibindingKeyError struct {
	// Key is the offending key.
	Key Key
}

// Error implements the error interface.
func (e InvalidMultibindingKeyError) Error() string {
	// Example: binding: key is not for a set or map: @Named config.Loader
	return ErrInvalidMultibindingKey.Error() + ": " + e.Key.String()
}

// Unwrap supports errors.Is against ErrInvalidMultibindingKey.
func (e InvalidMultibindingKeyError) Unwrap() error { return ErrInvalidMultibindingKey }

// MissingMapKeyError reports a map-key query on a binding whose
// contribution type is not Map. It signals a caller bug.
type MissingMapKeyError struct {
	// Key is the key of the binding that was queried.
	Key Key

	// ContributionType is the binding's actual contribution type.
	ContributionType ContributionType
}

// Error implements the error interface.
func (e MissingMapKeyError) Error() string {
	// Example: binding: no map key on a non-map contribution: UNIQUE binding for api.Server
	return ErrMissingMapKey.Error() + ": " + e.ContributionType.String() + " binding for " + e.Key.String()
}

// Unwrap supports errors.Is against ErrMissingMapKey.
func (e MissingMapKeyError) Unwrap() error { return ErrMissingMapKey }

// UnreachableContributionTypeError is a defensive assertion: a switch over
// the closed ContributionType enum fell through.
type UnreachableContributionTypeError struct {
	// ContributionType is the value that no branch handled.
	ContributionType ContributionType
}

// Error implements the error interface.
func (e UnreachableContributionTypeError) Error() string {
	return ErrUnreachableContributionType.Error() + ": " + e.ContributionType.String()
}

// Unwrap supports errors.Is against ErrUnreachableContributionType.
func (e UnreachableContributionTypeError) Unwrap() error { return ErrUnreachableContributionType }

// SyntheticKindError is returned when a Builder is asked to produce a
// synthetic binding. Synthetic kinds have dedicated constructors so the kind
// always matches the construction path.
type SyntheticKindError struct {
	// Kind is the synthetic kind that was passed to the builder.
	Kind Kind
}

// Error implements the error interface.
func (e SyntheticKindError) Error() string {
	return "binding: " + e.Kind.String() + " bindings have a dedicated constructor"
}

// MapKeyMismatchError is returned at construction when the Map contribution
// type and the presence of a map-key annotation disagree: a map
// contribution must carry a map key, and nothing else may.
type MapKeyMismatchError struct {
	// ContributionType is the binding's declared contribution type.
	ContributionType ContributionType

	// HasMapKey reports whether a map-key annotation was supplied.
	HasMapKey bool
}

// Error implements the error interface.
func (e MapKeyMismatchError) Error() string {
	if e.HasMapKey {
		return "binding: map key supplied for a " + e.ContributionType.String() + " contribution"
	}
	return "binding: MAP contribution without a map key"
}

package gotypes

import (
	"errors"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sghaida/obind/binding"
)

// ErrForeignType is returned when a shape query receives a type handle that
// was not minted by this package.
var ErrForeignType = errors.New("gotypes: type handle not minted by this package")

// Type is an immutable handle to a go/types type, implementing
// binding.TypeRef with types.Identical equality.
type Type struct {
	t types.Type
}

// NewType wraps a go/types type in a handle.
func NewType(t types.Type) Type {
	return Type{t: t}
}

// GoType returns the underlying go/types type.
func (t Type) GoType() types.Type { return t.t }

// Equal reports structural identity with another handle. Handles from other
// front-ends are never equal.
func (t Type) Equal(other binding.TypeRef) bool {
	o, ok := other.(Type)
	if !ok {
		return false
	}
	return types.Identical(t.t, o.t)
}

// String renders the type with full package paths, matching go/types.
func (t Type) String() string {
	return types.TypeString(t.t, nil)
}

// goType extracts the go/types type behind a binding.TypeRef minted here.
func goType(ref binding.TypeRef) (types.Type, bool) {
	t, ok := ref.(Type)
	if !ok {
		return nil, false
	}
	return t.t, true
}

// Interner canonicalizes type handles: structurally identical types.Type
// values intern to the same handle, so downstream passes can hold one
// handle per type identity.
//
// The zero value is ready to use. An Interner is not safe for concurrent
// mutation; intern everything up front if handles are shared across passes.
type Interner struct {
	m typeutil.Map
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{}
}

// Intern returns the canonical handle for t, minting one on first sight.
func (in *Interner) Intern(t types.Type) binding.TypeRef {
	if v := in.m.At(t); v != nil {
		return v.(Type)
	}
	ref := NewType(t)
	in.m.Set(t, ref)
	return ref
}

// Len reports how many distinct type identities have been interned.
func (in *Interner) Len() int { return in.m.Len() }

package gotypes_test

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/obind/binding"
	"github.com/sghaida/obind/gotypes"
)

// foreignType is a handle from a different front-end; it must never equal a
// gotypes handle.
type foreignType string

func (t foreignType) Equal(binding.TypeRef) bool { return false }
func (t foreignType) String() string             { return string(t) }

//
// -----------------------------------------------------------------------------
// Type
// -----------------------------------------------------------------------------

// TestType_Equal verifies handle equality is types.Identical: two handles
// built independently around structurally identical types are equal.
func TestType_Equal(t *testing.T) {
	t.Parallel()

	str := types.Typ[types.String]
	a := gotypes.NewType(types.NewSlice(str))
	b := gotypes.NewType(types.NewSlice(str))
	c := gotypes.NewType(types.NewSlice(types.Typ[types.Int]))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(foreignType("[]string")))
}

// TestType_String verifies the printable form matches go/types rendering.
func TestType_String(t *testing.T) {
	t.Parallel()

	slice := gotypes.NewType(types.NewSlice(types.Typ[types.String]))
	assert.Equal(t, "[]string", slice.String())

	m := gotypes.NewType(types.NewMap(types.Typ[types.String], types.Typ[types.Int]))
	assert.Equal(t, "map[string]int", m.String())
}

// TestType_GoType verifies the underlying type round-trips.
func TestType_GoType(t *testing.T) {
	t.Parallel()

	slice := types.NewSlice(types.Typ[types.String])
	assert.Same(t, slice, gotypes.NewType(slice).GoType().(*types.Slice))
}

//
// -----------------------------------------------------------------------------
// Interner
// -----------------------------------------------------------------------------

// TestInterner_CanonicalHandles verifies structurally identical but
// distinct types.Type values intern to the same handle.
func TestInterner_CanonicalHandles(t *testing.T) {
	t.Parallel()

	in := gotypes.NewInterner()

	first := in.Intern(types.NewSlice(types.Typ[types.String]))
	second := in.Intern(types.NewSlice(types.Typ[types.String]))
	other := in.Intern(types.NewSlice(types.Typ[types.Int]))

	require.Equal(t, first, second)
	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(other))
	assert.Equal(t, 2, in.Len())
}

// TestInterner_ZeroValue verifies the zero value is usable.
func TestInterner_ZeroValue(t *testing.T) {
	t.Parallel()

	var in gotypes.Interner
	ref := in.Intern(types.Typ[types.Bool])
	assert.True(t, ref.Equal(gotypes.NewType(types.Typ[types.Bool])))
	assert.Equal(t, 1, in.Len())
}

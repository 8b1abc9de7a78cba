package gotypes_test

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/obind/binding"
	"github.com/sghaida/obind/gotypes"
)

func routeKeyType() binding.TypeRef {
	named := types.NewNamed(
		types.NewTypeName(token.NoPos, nil, "RouteKey", nil),
		types.NewStruct(nil, nil),
		nil,
	)
	return gotypes.NewType(named)
}

//
// -----------------------------------------------------------------------------
// Annotation
// -----------------------------------------------------------------------------

// TestAnnotation_Policy verifies the unwrap policy: a plain annotation
// compares as a whole, an unwrapped one designates one member's value.
func TestAnnotation_Policy(t *testing.T) {
	t.Parallel()

	whole := gotypes.NewAnnotation(routeKeyType(), map[string]any{"value": "/v1"})
	assert.False(t, whole.UnwrapsValue())
	assert.Nil(t, whole.Value())

	unwrapped := whole.Unwrapped("value")
	assert.True(t, unwrapped.UnwrapsValue())
	assert.Equal(t, "/v1", unwrapped.Value())

	// Unwrapped returns a copy; the original keeps its policy.
	assert.False(t, whole.UnwrapsValue())
}

// TestAnnotation_MembersCopied verifies member maps are insulated both on
// construction and on access.
func TestAnnotation_MembersCopied(t *testing.T) {
	t.Parallel()

	input := map[string]any{"value": "/v1"}
	ann := gotypes.NewAnnotation(routeKeyType(), input)

	input["value"] = "/v2"
	assert.Equal(t, "/v1", ann.Members()["value"])

	got := ann.Members()
	got["value"] = "/v3"
	assert.Equal(t, "/v1", ann.Members()["value"])
}

// TestAnnotation_String verifies the printable form orders members by
// name.
func TestAnnotation_String(t *testing.T) {
	t.Parallel()

	ann := gotypes.NewAnnotation(routeKeyType(), map[string]any{
		"value": "/v1",
		"rank":  3,
		"class": gotypes.NewType(types.Typ[types.String]),
	})
	assert.Equal(t, `@RouteKey{class: string, rank: 3, value: "/v1"}`, ann.String())

	empty := gotypes.NewAnnotation(routeKeyType(), nil)
	assert.Equal(t, "@RouteKey", empty.String())
}

//
// -----------------------------------------------------------------------------
// End-to-end with the binding package
// -----------------------------------------------------------------------------

// TestClassifyMapContributions runs the full path a code generator would:
// build map contributions over go/types shapes, resolve their factory
// types, and index them by map key and by annotation type.
func TestClassifyMapContributions(t *testing.T) {
	t.Parallel()

	in := gotypes.NewInterner()
	shapes := gotypes.NewShapes(in)

	handler := types.NewNamed(
		types.NewTypeName(token.NoPos, nil, "Handler", nil),
		types.NewStruct(nil, nil),
		nil,
	)
	// map[string]func() Handler — a map of provider thunks.
	mapKeyType := in.Intern(types.NewMap(
		types.Typ[types.String],
		types.NewSignatureType(nil, nil, nil, nil,
			types.NewTuple(types.NewVar(token.NoPos, nil, "", handler)), false),
	))
	key := binding.NewKey(mapKeyType)

	routeKey := routeKeyType()
	contribution := func(route string) *binding.ContributionBinding {
		ann := gotypes.NewAnnotation(routeKey, map[string]any{"value": route}).Unwrapped("value")
		b, err := binding.NewBuilder(key).
			Kind(binding.Provision).
			ContributionType(binding.Map).
			MapKey(ann).
			Build()
		require.NoError(t, err)
		return b
	}

	b1 := contribution("/health")
	b2 := contribution("/metrics")
	b3 := contribution("/health")

	// The factory for each contribution yields the unwrapped Handler.
	factoryType, err := b1.FactoryType(shapes)
	require.NoError(t, err)
	assert.True(t, factoryType.Equal(in.Intern(handler)))

	byKey, err := binding.IndexMapBindingsByMapKey([]*binding.ContributionBinding{b1, b2, b3})
	require.NoError(t, err)
	require.Len(t, byKey, 2)
	assert.Equal(t, "/health", byKey[0].Key)
	assert.Equal(t, []*binding.ContributionBinding{b1, b3}, byKey[0].Bindings)

	byType, err := binding.IndexMapBindingsByAnnotationType([]*binding.ContributionBinding{b1, b2, b3})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.True(t, byType[0].Type.Equal(routeKey))
	assert.Len(t, byType[0].Bindings, 3)

	// The synthetic aggregate for the same key derives the multibound-map
	// kind and an empty aggregate resolves to a shared factory.
	aggregate, err := binding.NewMultiboundBinding(key, shapes)
	require.NoError(t, err)
	assert.Equal(t, binding.SyntheticMultiboundMap, aggregate.Kind())
	assert.Equal(t, binding.SharedInstance, aggregate.FactoryCreationStrategy())
}

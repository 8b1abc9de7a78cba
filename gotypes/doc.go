// Package gotypes implements the binding package's front-end capability
// interfaces on top of go/types.
//
// It is the type-resolution side of the boundary: given resolved types a
// front-end already holds (from whatever loader it uses), gotypes mints
// structural type handles, answers set/map shape questions, exposes
// declaration modifier flags, and carries annotation values. It never loads
// or parses source itself.
//
// Conventions baked into the shape inspector:
//
//   - a multibound set renders as a slice, so []T is set-shaped with
//     element type T;
//   - map[K]V is map-shaped;
//   - the deferred wrapper in a map's value slot is a thunk: func() V for
//     providers, func() (V, error) for producers. UnwrappedMapValueType
//     strips exactly the wrapper of the framework asked about and leaves
//     anything else alone.
//
// Type handles compare with types.Identical. An Interner (backed by
// x/tools' typeutil.Map) canonicalizes handles so structurally identical
// types.Type values share one handle.
package gotypes

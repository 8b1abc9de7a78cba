// Package binding models how a single dependency-injection contribution —
// one way of supplying a value for a requested key — is represented,
// classified, and turned into a decision about how its generated factory
// should be constructed.
//
// This package intentionally contains no I/O, no container, and no runtime
// injection. Every operation is either a pure function or a one-shot
// construction of an immutable value, so bindings are safe to read from any
// number of downstream passes without synchronization.
//
// The model, leaves first:
//
//   - Key: the identity of a requested type plus an optional qualifier
//     annotation. Equality is structural.
//   - DependencyRequest: one edge of the dependency graph, ordered within a
//     binding because order drives generated parameter order.
//   - ContributionBinding: an immutable record describing one contribution.
//     It is tagged with exactly one Kind at construction and never changes
//     afterwards.
//
// The decisions:
//
//   - Kind is a closed taxonomy of binding origins (synthetic, provision,
//     production). KindForMultibindingKey derives the synthetic multibinding
//     kind from a key's set/map shape.
//   - FactoryCreationStrategy resolves, from a binding's kind, dependency
//     count, and module-instance requirement, whether the generated factory
//     can be a shared stateless instance, must be constructed, or simply
//     delegates to another factory.
//   - FactoryType resolves the type shape of the value the generated factory
//     ultimately yields.
//   - IndexMapBindingsByMapKey and IndexMapBindingsByAnnotationType group
//     map contributions by their map-key annotation, under structural
//     equivalence, for downstream conflict validation and partitioning.
//
// Type resolution is not reconstructed here. The package consumes narrow
// capability interfaces (TypeRef, Element, Annotation, ShapeInspector)
// supplied by a front-end; see the gotypes package for an implementation
// backed by go/types.
//
// Errors in this package signal caller bugs, not bad user input: querying a
// map key on a non-map contribution, deriving a multibinding kind from a key
// that is neither set- nor map-shaped, and similar precondition violations.
// They are typed, wrap a sentinel (errors.Is and errors.As both work), and
// are expected to be translated into user-facing diagnostics by the graph
// validation layer that sits above this package.
package binding

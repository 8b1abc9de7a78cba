// Package obind models the value layer of a dependency-injection code
// generator: how one "contribution" — one way of supplying a value for a
// requested key — is represented, classified, and turned into a decision
// about how its generated factory should be constructed.
//
// The repository is split into two small packages:
//
//   - binding: the core value model. Keys, contribution bindings, the closed
//     Kind taxonomy, factory-creation strategy resolution, factory type
//     resolution, and map-key indexing over map multibindings. Everything in
//     this package is a pure function or an immutable value; there is no
//     I/O, no container, and no runtime injection.
//
//   - gotypes: a front-end adapter that answers the type questions the core
//     asks (structural equality, set/map shapes, declaration modifiers) in
//     terms of go/types. It never parses source; it only inspects resolved
//     types a front-end already has.
//
// Graph resolution, conflict validation, and code emission live downstream of
// this module and consume its outputs (Kind tags, strategies, resolved
// factory types, index groups). They are intentionally out of scope here.
//
// Start with the binding package docs for the model and the decision rules.
package obind

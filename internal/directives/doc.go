// Package directives implements schema directive visitors: a generic engine
// that dispatches caller-registered handlers to every directive applied in a
// GraphQL schema.
//
// # Overview
//
// A Registry maps directive names to Visitor values. A Visitor is a
// capability bundle with one optional callback slot per schema location
// (schema, scalar, object, field definition, argument definition, interface,
// union, enum, enum value, input object, input field definition). Implementing
// a slot declares that the directive is handled at that location; leaving it
// nil means applications at that location are skipped for that visitor.
//
// VisitSchema walks the schema in a single deterministic pass: the schema
// definition first, then every named type in declaration order, recursing
// into fields, arguments, enum values and input fields in declaration order.
// At each node, every applied directive is considered in source order. When
// the registry holds a visitor implementing the slot for the node's location,
// the engine builds an Application — the directive name plus its arguments
// with declaration defaults merged in — and invokes the slot with the node
// and, where the location needs disambiguation, an ancestry context (the
// owning type for fields and input fields, the owning field and type for
// arguments, the enum type for enum values).
//
// # Contracts
//
//   - Before any node is visited, every registered visitor is checked against
//     its directive declaration: implementing a slot for a location outside
//     the declared set fails with *LocationError.
//   - Directive names with no registered visitor are inert; declared
//     locations with no implemented slot are inert too.
//   - Callbacks run synchronously, one at a time, in traversal order. Two
//     walks over the same schema with the same registry produce the same
//     invocation sequence.
//   - A callback error aborts the walk and propagates to the caller wrapped
//     with the directive name and node path. Mutations applied by earlier
//     callbacks remain in place.
//   - Callbacks may mutate the node they are handed; that is the sanctioned
//     side-effect channel. The engine ignores anything else a callback does.
//
// The walk publishes VisitStart, DirectiveVisit and VisitFinish events on the
// process event bus for observation; the engine itself never depends on a
// subscriber being present.
package directives

// Package ast defines the abstract syntax tree for GraphQL executable
// documents (operations and fragments).
// Invariants:
//   - Every node carries the Span of the source text it was parsed from.
//   - Children() returns structural children in source order; analyzers and
//     the traversal engine rely on that order being stable.
//   - The tree is immutable after parsing; analysis never mutates nodes.
package ast

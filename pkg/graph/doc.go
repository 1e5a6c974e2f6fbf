// Package graph provides a generic undirected graph container used as the
// structural backbone of the chemistry layer.
//
// # Storage model
//
// Vertices live in an arena of records addressed by opaque [VertexID]
// indices. Payloads are arbitrary types supplied as generic parameters; the
// graph never inspects them except through caller-supplied functions.
// Equivalence of payloads (used during isomorphism matching) is deliberately
// separate from storage identity: two distinct vertices may carry equivalent
// payloads.
//
// Edges are stored symmetrically: when (a,b) exists, (b,a) exists and refers
// to the same payload. Removing a vertex removes all of its incident edges in
// the same operation, so no edge is ever left with a dangling endpoint.
//
// # Capabilities
//
//   - CRUD on vertices and edges ([Graph.AddVertex], [Graph.AddEdge], ...)
//   - Canonical vertex ordering via connectivity-value refinement
//     ([Graph.Sort])
//   - Shallow and deep copies ([Graph.Clone])
//   - Cycle membership for vertices and edges ([Graph.VertexInCycle],
//     [Graph.EdgeInCycle])
//   - Isomorphism testing parameterized by vertex and edge equivalence
//     predicates ([Isomorphic])
//
// The container is not safe for concurrent use; callers own their graphs
// exclusively.
package graph

// Package components partitions the vertices of a core.Graph into
// components by seeding successive traversals from unvisited vertices.
//
// What
//
//   - Reset visitation state, then sweep ids 1..VertexCount ascending;
//     every undiscovered vertex seeds one traversal whose reachable set
//     becomes one component, labeled 1, 2, 3, ...
//   - BFS and DFS are interchangeable collection primitives, selected
//     with WithTraversal; they differ only in member ordering.
//   - Returns a Result of Components; the partition is disjoint and
//     covers every vertex exactly once.
//
// Directed graphs
//
//	Traversal follows outgoing edges only, so for a directed graph the
//	enumerated components are forward-reachability partitions seeded in
//	ascending id order. They coincide with weak components only when
//	every edge has been inserted in both directions.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   for an unknown Traversal value.
package components

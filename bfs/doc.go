// Package bfs provides seed-and-sweep breadth-first traversal over a
// core.Graph, returning the full emission order across all components.
//
// What
//
//   - Explore vertices in FIFO order starting from a seed vertex.
//   - After the seeded tree drains, sweep ids 1..VertexCount ascending
//     and restart from every undiscovered vertex, so disconnected
//     regions are covered in one call.
//   - Returns a Result whose Order is the emission sequence; the
//     optional OnVisit hook streams the same sequence to a caller-owned
//     sink.
//
// Determinism
//
//	Out-edges are explored in insertion order and sweep seeds ascend by
//	id, so the emission sequence is fully reproducible.
//
// Visitation state
//
//	BFS reads and writes the graph's own discovered/processed state and
//	never resets it. Call core.Graph.Unvisit between independent runs;
//	without a reset a second BFS is a no-op over already-covered
//	vertices.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex enqueued at most once)
//   - Memory: O(V)       (queue and result order)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - Context errors when a WithContext context is cancelled.
package bfs

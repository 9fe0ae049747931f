// Package dfs provides seed-and-sweep depth-first traversal over a
// core.Graph, emitting vertices in pre-order across all components.
//
// What
//
//   - Walk depth-first from a seed vertex, emitting each vertex when it
//     is first discovered, descending into out-edge targets in
//     insertion order, and marking a vertex processed after all of its
//     children return.
//   - After the seeded tree completes, sweep ids 1..VertexCount
//     ascending and restart from every undiscovered vertex.
//   - Returns a Result whose Order is the pre-order emission sequence;
//     the optional OnVisit hook streams the same sequence as it is
//     produced.
//
// Recursion depth
//
//	The walk is driven by an explicit stack of (vertex, next-edge)
//	frames, so a path graph of any supported size traverses without
//	risking call-stack exhaustion.
//
// Visitation state
//
//	DFS reads and writes the graph's own discovered/processed state and
//	never resets it. Call core.Graph.Unvisit between independent runs;
//	a run over already-covered vertices emits nothing.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack and result order
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - Context errors when a WithContext context is cancelled.
package dfs

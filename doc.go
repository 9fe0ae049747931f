// Package vgraph is a compact in-memory toolkit for graphs over a
// bounded dense integer-id space — traversal, cycle detection,
// components, and topological ordering.
//
// 🚀 What is vgraph?
//
//	A small, dependency-light library built around one engine:
//		• Core engine: fixed vertex set 1..n, ordered out-edge lists,
//		  per-instance discovered/processed visitation state
//		• Traversals: seed-and-sweep BFS and DFS covering every component
//		• Cycle detection: edge-identity DFS scan (undirected),
//		  Kahn indegree elimination (directed)
//		• Topological order: a byproduct of the directed cycle check
//		• Components: successive unvisited seeds partition the vertex set
//
// ✨ Why choose vgraph?
//
//   - Dense-id fast path – slices and bit-flags, no hashing, no boxing
//   - Deterministic – insertion-order edges and ascending sweeps make
//     every emission sequence reproducible
//   - Decoupled output – algorithms return ordered sequences or stream
//     through hooks; printing lives in the CLI, not the engine
//
// Everything is organized under small subpackages:
//
//	core/       — Graph, Edge, construction, mutation, visitation state
//	bfs/        — breadth-first seed-and-sweep traversal
//	dfs/        — depth-first traversal on an explicit frame stack
//	cycle/      — unified cycle detection for both directednesses
//	topo/       — Kahn's algorithm: topological order + cycle proof
//	components/ — component enumeration (BFS or DFS collection)
//	graphio/    — edge-list reader and order writer collaborators
//	cmd/vgraph  — cobra CLI driver over stdin edge lists
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	an undirected square: one component, one cycle, four vertices
//	reachable from any seed.
//
//	go get github.com/katalvlaran/vgraph
package vgraph

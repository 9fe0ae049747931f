// Structural mutation, queries, and the visitation-state API.
//
// Edge insertion validates endpoints once; the traversal and cycle
// packages assume a validated structure and do not re-check ranges.

package core

import "fmt"

// AddEdge appends a logical edge from 'from' to 'to' with the given
// weight. Duplicate edges and self-loops are permitted and never
// deduplicated.
//
// For an undirected graph the mirror arc to→from is stored as well,
// sharing the same edge ID; callers never insert the reverse
// themselves. Degree counters are maintained only for directed graphs,
// since no undirected algorithm consumes them.
//
// Returns ErrVertexRange if an endpoint lies outside [1, VertexCount],
// ErrBadWeight for a non-zero weight on an unweighted graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if from < 1 || from > g.n {
		return fmt.Errorf("%w: from=%d (want 1..%d)", ErrVertexRange, from, g.n)
	}
	if to < 1 || to > g.n {
		return fmt.Errorf("%w: to=%d (want 1..%d)", ErrVertexRange, to, g.n)
	}
	if weight != 0 && !g.weighted {
		return fmt.Errorf("%w: weight=%d", ErrBadWeight, weight)
	}

	id := g.nextEdge
	g.nextEdge++

	g.vertices[from].out = append(g.vertices[from].out, Edge{ID: id, To: to, Weight: weight})
	if g.directed {
		g.vertices[from].outdegree++
		g.vertices[to].indegree++
	} else {
		// Mirror arc under the same logical ID.
		g.vertices[to].out = append(g.vertices[to].out, Edge{ID: id, To: from, Weight: weight})
	}

	return nil
}

// VertexCount returns the number of vertices; valid ids are 1..VertexCount.
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// EdgeCount returns the number of logical edges inserted via AddEdge.
// Mirror arcs of undirected edges are not counted separately.
func (g *Graph) EdgeCount() int { return g.nextEdge }

// HasVertex reports whether id is a valid vertex id for this graph.
func (g *Graph) HasVertex(id int) bool { return id >= 1 && id <= g.n }

// OutEdges returns the out-edge list of v in insertion order.
// The returned slice is the graph's internal storage: callers must
// treat it as read-only.
//
// Complexity: O(1)
func (g *Graph) OutEdges(v int) []Edge { return g.vertices[v].out }

// Indegree returns the number of incoming edges of v.
// Meaningful only for directed graphs; always 0 otherwise.
func (g *Graph) Indegree(v int) int { return g.vertices[v].indegree }

// Outdegree returns the number of outgoing edges of v.
// Meaningful only for directed graphs; always 0 otherwise.
func (g *Graph) Outdegree(v int) int { return g.vertices[v].outdegree }

// Indegrees returns a fresh working copy of all indegree counters,
// indexed by vertex id (index 0 unused). Consumers such as Kahn's
// algorithm decrement the copy, never the graph's persistent state.
//
// Complexity: O(V)
func (g *Graph) Indegrees() []int {
	indeg := make([]int, g.n+1)
	for v := 1; v <= g.n; v++ {
		indeg[v] = g.vertices[v].indegree
	}

	return indeg
}

// Discovered reports whether v has been encountered by a traversal
// since the last Unvisit.
func (g *Graph) Discovered(v int) bool { return g.discovered[v] }

// Processed reports whether all neighbors of v have been explored
// since the last Unvisit.
func (g *Graph) Processed(v int) bool { return g.processed[v] }

// MarkDiscovered records that v has been encountered.
func (g *Graph) MarkDiscovered(v int) { g.discovered[v] = true }

// MarkProcessed records that all neighbors of v have been explored.
// It also marks v discovered, preserving processed ⇒ discovered.
func (g *Graph) MarkProcessed(v int) {
	g.discovered[v] = true
	g.processed[v] = true
}

// Unvisit clears the discovered and processed state for every vertex,
// leaving vertices, edges, and degree counters untouched. Call it
// between independent traversal or cycle-check runs whenever a clean
// slate is required.
//
// Complexity: O(V)
func (g *Graph) Unvisit() {
	for v := range g.discovered {
		g.discovered[v] = false
		g.processed[v] = false
	}
}

// Package topo implements Kahn's indegree-elimination algorithm on
// directed core.Graphs, producing a topological order and, as a
// byproduct, directed cycle detection.
//
// Sort seeds a LIFO stack with every zero-indegree vertex, then
// repeatedly pops a vertex, records it, and decrements the indegree of
// each out-edge target, pushing targets that reach zero. Vertices on a
// cycle never reach indegree zero, so draining fewer than VertexCount
// vertices proves a cycle.
//
// Sort operates on a working copy of the indegree counters obtained
// via core.Graph.Indegrees, never on the graph's persistent state, so
// repeated calls against an unmutated graph are idempotent. It does
// not touch the discovered/processed visitation state at all.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge handled once)
//   - Memory: O(V)     (indegree copy, stack, order)
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer.
//	ErrUndirectedGraph  - Sort requires a directed graph.
//	ErrCycleDetected    - the graph contains a directed cycle.
package topo

import (
	"errors"

	"github.com/katalvlaran/vgraph/core"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrUndirectedGraph is returned when Sort is run on an undirected graph.
	ErrUndirectedGraph = errors.New("topo: directed graph required")

	// ErrCycleDetected indicates the graph contains a directed cycle and
	// admits no topological order.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// Sort computes a topological ordering of all vertices in g.
// The returned order linearizes every edge u→v with u before v.
// Returns ErrCycleDetected when the graph contains a directed cycle.
func Sort(g *core.Graph) ([]int, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Indegree elimination is meaningless without directed degree bookkeeping
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 3. Work on a copy of the indegree counters so repeated calls
	// against an unmutated graph return the same result.
	n := g.VertexCount()
	indeg := g.Indegrees()

	// 4. Seed the stack with every zero-indegree vertex
	stack := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if indeg[v] == 0 {
			stack = append(stack, v)
		}
	}

	// 5. Pop, record, and release out-edge targets
	order := make([]int, 0, n)
	var v int
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)

		for _, e := range g.OutEdges(v) {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				stack = append(stack, e.To)
			}
		}
	}

	// 6. Any vertex left undrained sits on a cycle
	if len(order) != n {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// HasCycle reports whether the directed graph g contains a cycle.
// It is a thin wrapper over Sort, discarding the order.
func HasCycle(g *core.Graph) (bool, error) {
	if _, err := Sort(g); err != nil {
		if errors.Is(err, ErrCycleDetected) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}

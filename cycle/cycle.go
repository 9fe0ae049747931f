// Package cycle implements cycle detection for both directed and
// undirected core.Graphs behind a single Detect entry point.
//
// Undirected graphs are scanned component by component with a
// depth-first walk that remembers, per vertex, the identity of the
// logical edge used to discover it. Because an undirected edge stores
// mirror arcs sharing one edge ID, excluding exactly that ID from
// back-edge checks rules out the trivial "edge back to the discovering
// vertex" without masking real cycles: self-loops and parallel edges
// between the same pair carry their own IDs and are reported
// correctly.
//
// Directed graphs delegate to topo.Sort: a cycle exists exactly when
// Kahn's elimination cannot drain every vertex.
//
// Detect resets the graph's visitation state on entry, so repeated
// calls against an unmutated graph return the same boolean. It
// short-circuits on the first cycle found.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package cycle

import (
	"errors"

	"github.com/katalvlaran/vgraph/core"
	"github.com/katalvlaran/vgraph/topo"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Detect.
var ErrGraphNil = errors.New("cycle: graph is nil")

// noEdge marks a scan root, which was not discovered via any edge.
const noEdge = -1

// Detect reports whether g contains a cycle.
func Detect(g *core.Graph) (bool, error) {
	// 1. Validate input graph
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Fresh visitation state before either strategy runs
	g.Unvisit()

	// 3. Directed case: Kahn's elimination via topo
	if g.Directed() {
		return topo.HasCycle(g)
	}

	// 4. Undirected case: scan every component
	s := &scanner{graph: g}
	for v := 1; v <= g.VertexCount(); v++ {
		if !g.Discovered(v) {
			if s.scan(v) {
				return true, nil
			}
		}
	}

	return false, nil
}

// scanFrame is one explicit-stack entry of the undirected scan: the
// vertex, the ID of the logical edge used to discover it (noEdge for
// roots), and the index of the next out-edge to examine.
type scanFrame struct {
	v    int
	via  int
	next int
}

// scanner holds the frame stack of one undirected cycle scan.
type scanner struct {
	graph *core.Graph
	stack []scanFrame
}

// scan walks the component of root depth-first and reports whether it
// contains a cycle. An edge to an already-discovered vertex is a
// back-edge, and therefore a cycle, unless it is the exact edge the
// current vertex was discovered through.
func (s *scanner) scan(root int) bool {
	s.stack = s.stack[:0]
	s.stack = append(s.stack, scanFrame{v: root, via: noEdge})
	s.graph.MarkDiscovered(root)

	for len(s.stack) > 0 {
		f := &s.stack[len(s.stack)-1]

		out := s.graph.OutEdges(f.v)
		if f.next >= len(out) {
			s.graph.MarkProcessed(f.v)
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		e := out[f.next]
		f.next++

		// The mirror arc of the edge we walked in on: not a cycle.
		if e.ID == f.via {
			continue
		}

		if s.graph.Discovered(e.To) {
			// Back-edge over a distinct logical edge: cycle. This also
			// catches self-loops (e.To == f.v with its own edge ID) and
			// the second of two parallel edges.
			return true
		}

		s.graph.MarkDiscovered(e.To)
		s.stack = append(s.stack, scanFrame{v: e.To, via: e.ID})
	}

	return false
}

// Package dfs implements seed-and-sweep depth-first traversal over a
// core.Graph using an explicit frame stack, so traversal depth is
// bounded by heap memory rather than the call stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// frame is one explicit-stack entry: the vertex and the index of the
// next out-edge to explore. next == 0 marks a frame not yet entered.
type frame struct {
	v    int
	next int
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	stack []frame
	res   *Result
}

// DFS runs depth-first traversal on g with the same seed-and-sweep
// policy as bfs.BFS: seed at start when it is a valid, undiscovered
// vertex, then sweep ids 1..VertexCount ascending, restarting from
// every vertex not yet discovered.
//
// Each tree emits vertices in pre-order: a vertex is marked discovered
// and emitted on first visit, its out-edge targets are explored in
// insertion order (already-discovered targets are skipped at entry),
// and the vertex is marked processed once all children return.
//
// DFS consumes the graph's visitation state and does not reset it:
// call g.Unvisit() first if a clean traversal is required.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		stack: make([]frame, 0, n),
		res:   &Result{Order: make([]int, 0, n)},
	}

	// 3. Seed at start when it is in range and undiscovered.
	// An out-of-range start is not an error: the sweep still runs.
	if g.HasVertex(start) && !g.Discovered(start) {
		if err := w.run(start); err != nil {
			return w.res, err
		}
	}

	// 4. Sweep remaining undiscovered vertices in ascending id order
	for v := 1; v <= n; v++ {
		if !g.Discovered(v) {
			if err := w.run(v); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// run performs one depth-first walk seeded at seed, driving the
// explicit frame stack. Children are pushed unconditionally and the
// discovery check happens at frame entry, mirroring a recursive walk
// that tests discovered at the top of each call.
func (w *walker) run(seed int) error {
	w.stack = w.stack[:0]
	w.stack = append(w.stack, frame{v: seed})

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := &w.stack[len(w.stack)-1]

		// Frame entry: skip already-discovered vertices, otherwise
		// mark and emit in pre-order.
		if f.next == 0 {
			if w.graph.Discovered(f.v) {
				w.stack = w.stack[:len(w.stack)-1]
				continue
			}
			w.graph.MarkDiscovered(f.v)
			if err := w.emit(f.v); err != nil {
				return err
			}
		}

		// Descend into the next out-edge target, if any remain.
		if out := w.graph.OutEdges(f.v); f.next < len(out) {
			child := out[f.next].To
			f.next++
			w.stack = append(w.stack, frame{v: child})
			continue
		}

		// All children explored: mark processed and return.
		w.graph.MarkProcessed(f.v)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// emit records v in Order and calls the OnVisit hook.
func (w *walker) emit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

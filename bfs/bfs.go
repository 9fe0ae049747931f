// Package bfs implements seed-and-sweep breadth-first traversal over a
// core.Graph, returning the full visit order across all components.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first traversal on g. If start is a valid,
// undiscovered vertex, the first tree is seeded there; regardless, all
// vertices 1..VertexCount are then swept in ascending id order and a
// fresh BFS is started from each one not yet discovered, so the whole
// vertex set is covered across disconnected components.
//
// BFS consumes the graph's visitation state and does not reset it:
// call g.Unvisit() first if a clean traversal is required. Running BFS
// twice without a reset emits nothing on the second run.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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
		queue: make([]int, 0, n),
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

// run performs one FIFO traversal seeded at seed. Vertices are marked
// discovered on enqueue, so no vertex is enqueued twice; each dequeued
// vertex explores its out-edges in insertion order, is marked
// processed, and is emitted.
func (w *walker) run(seed int) error {
	w.queue = w.queue[:0]
	w.enqueue(seed)

	var v int
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v = w.queue[0]
		w.queue = w.queue[1:]

		for _, e := range w.graph.OutEdges(v) {
			if !w.graph.Discovered(e.To) {
				w.enqueue(e.To)
			}
		}

		w.graph.MarkProcessed(v)
		if err := w.emit(v); err != nil {
			return err
		}
	}

	return nil
}

// enqueue marks v discovered and appends it to the queue.
func (w *walker) enqueue(v int) {
	w.graph.MarkDiscovered(v)
	w.queue = append(w.queue, v)
}

// emit records v in Order and calls the OnVisit hook.
func (w *walker) emit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// Package components enumerates the components of a core.Graph by
// seeding successive traversals from unvisited vertices.
package components

import (
	"fmt"

	"github.com/katalvlaran/vgraph/core"
)

// Find resets the graph's visitation state, then sweeps vertex ids
// 1..VertexCount in ascending order: each vertex not yet discovered
// seeds one traversal (BFS or DFS per WithTraversal), and that
// traversal's reachable set becomes one component, labeled with an
// incrementing index starting at 1. Every vertex lands in exactly one
// component.
//
// For directed graphs the traversal follows outgoing edges only, so
// the result is a forward-reachability partition, not a true weak
// partition, unless every edge was inserted in both directions.
//
// Complexity: O(V + E) time, O(V) memory.
func Find(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options and catch invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Fresh visitation state, then ascending seed sweep
	g.Unvisit()
	res := &Result{}
	var members []int
	for v := 1; v <= g.VertexCount(); v++ {
		if g.Discovered(v) {
			continue
		}
		if o.Traversal == UseBFS {
			members = collectBFS(g, v)
		} else {
			members = collectDFS(g, v)
		}
		res.Components = append(res.Components, Component{
			Index:    len(res.Components) + 1,
			Vertices: members,
		})
	}

	return res, nil
}

// collectBFS gathers the vertices reachable from seed in FIFO visit
// order, marking discovered on enqueue and processed on dequeue.
func collectBFS(g *core.Graph, seed int) []int {
	queue := []int{seed}
	g.MarkDiscovered(seed)
	var members []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, e := range g.OutEdges(u) {
			if !g.Discovered(e.To) {
				g.MarkDiscovered(e.To)
				queue = append(queue, e.To)
			}
		}
		g.MarkProcessed(u)
		members = append(members, u)
	}

	return members
}

// collectDFS gathers the vertices reachable from seed in pre-order,
// using an explicit frame stack like package dfs.
func collectDFS(g *core.Graph, seed int) []int {
	type frame struct{ v, next int }
	stack := []frame{{v: seed}}
	var members []int

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == 0 {
			if g.Discovered(f.v) {
				stack = stack[:len(stack)-1]
				continue
			}
			g.MarkDiscovered(f.v)
			members = append(members, f.v)
		}
		if out := g.OutEdges(f.v); f.next < len(out) {
			child := out[f.next].To
			f.next++
			stack = append(stack, frame{v: child})
			continue
		}
		g.MarkProcessed(f.v)
		stack = stack[:len(stack)-1]
	}

	return members
}

// String renders a component in the reference reporter shape,
// "component <index>: <v1> <v2> ...".
func (c Component) String() string {
	s := fmt.Sprintf("component %d:", c.Index)
	for _, v := range c.Vertices {
		s += fmt.Sprintf(" %d", v)
	}

	return s
}

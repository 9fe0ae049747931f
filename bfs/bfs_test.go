package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/vgraph/bfs"
	"github.com/katalvlaran/vgraph/core"
	"github.com/katalvlaran/vgraph/dfs"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		t.Fatalf("NewGraph(%d): %v", n, err)
	}
	return g
}

// addEdges inserts unweighted edges or fails the test.
func addEdges(t *testing.T, g *core.Graph, edges [][2]int) {
	t.Helper()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
}

// TestBFS_NilGraph verifies the nil-graph sentinel.
func TestBFS_NilGraph(t *testing.T) {
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestBFS_DiamondVisitsOnce covers two inbound paths to one vertex:
// despite edges 2→4 and 3→4, vertex 4 is emitted exactly once.
func TestBFS_DiamondVisitsOnce(t *testing.T) {
	g := mustGraph(t, 4, core.WithDirected())
	addEdges(t, g, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}})

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_SweepCoversDisconnected ensures the ascending sweep reaches
// every component after the seeded tree drains.
func TestBFS_SweepCoversDisconnected(t *testing.T) {
	g := mustGraph(t, 5)
	addEdges(t, g, [][2]int{{1, 2}, {4, 5}})

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_InvalidStartStillSweeps checks that an out-of-range seed is
// not an error: the sweep alone covers the graph.
func TestBFS_InvalidStartStillSweeps(t *testing.T) {
	g := mustGraph(t, 3)
	addEdges(t, g, [][2]int{{1, 2}})

	for _, start := range []int{0, -1, 99} {
		g.Unvisit()
		res, err := bfs.BFS(g, start)
		if err != nil {
			t.Fatalf("start=%d: %v", start, err)
		}
		if want := []int{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
			t.Errorf("start=%d: Order = %v; want %v", start, res.Order, want)
		}
	}
}

// TestBFS_IdempotentWithoutReset verifies that a second run on consumed
// visitation state emits nothing, and that Unvisit restores emission.
func TestBFS_IdempotentWithoutReset(t *testing.T) {
	g := mustGraph(t, 3)
	addEdges(t, g, [][2]int{{1, 2}, {2, 3}})

	first, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Order) != 3 {
		t.Fatalf("first run Order = %v; want 3 vertices", first.Order)
	}

	second, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Order) != 0 {
		t.Errorf("second run without reset emitted %v; want nothing", second.Order)
	}

	g.Unvisit()
	third, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(third.Order, first.Order) {
		t.Errorf("after Unvisit: Order = %v; want %v", third.Order, first.Order)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do
// not enqueue a vertex twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := mustGraph(t, 2)
	addEdges(t, g, [][2]int{{1, 1}, {1, 2}, {1, 2}})

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitHook checks the hook sees the emission order and that
// a hook error aborts with wrapping.
func TestBFS_OnVisitHook(t *testing.T) {
	g := mustGraph(t, 3)
	addEdges(t, g, [][2]int{{1, 2}, {2, 3}})

	var seen []int
	res, err := bfs.BFS(g, 1, bfs.WithOnVisit(func(v int) error {
		seen = append(seen, v)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, res.Order) {
		t.Errorf("hook saw %v; Order is %v", seen, res.Order)
	}

	g.Unvisit()
	boom := errors.New("boom")
	if _, err = bfs.BFS(g, 1, bfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})); !errors.Is(err, boom) {
		t.Errorf("hook abort: want wrapped boom, got %v", err)
	}
}

// TestBFS_SameVisitedSetAsDFS checks the traversal-equivalence
// property: BFS and DFS from the same seed cover the same vertex set.
func TestBFS_SameVisitedSetAsDFS(t *testing.T) {
	g := mustGraph(t, 7)
	addEdges(t, g, [][2]int{{1, 2}, {2, 3}, {3, 1}, {5, 6}})

	bres, err := bfs.BFS(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Unvisit()
	dres, err := dfs.DFS(g, 2)
	if err != nil {
		t.Fatal(err)
	}

	toSet := func(order []int) map[int]bool {
		m := make(map[int]bool, len(order))
		for _, v := range order {
			m[v] = true
		}
		return m
	}
	if !reflect.DeepEqual(toSet(bres.Order), toSet(dres.Order)) {
		t.Errorf("visited sets differ: bfs %v, dfs %v", bres.Order, dres.Order)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS.
func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, 100)
	for i := 1; i < 100; i++ {
		if err := g.AddEdge(i, i+1, 0); err != nil {
			t.Fatal(err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

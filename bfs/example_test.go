package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/vgraph/bfs"
	"github.com/katalvlaran/vgraph/core"
)

// ExampleBFS demonstrates a seeded traversal over a directed diamond:
// vertex 4 has two inbound paths but is emitted once.
func ExampleBFS() {
	g, _ := core.NewGraph(4, core.WithDirected())
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(1, 3, 0)
	_ = g.AddEdge(2, 4, 0)
	_ = g.AddEdge(3, 4, 0)

	res, _ := bfs.BFS(g, 1)
	fmt.Println(res.Order)
	// Output: [1 2 3 4]
}

// ExampleBFS_sweep shows the sweep covering a disconnected region
// after the seeded tree drains.
func ExampleBFS_sweep() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(4, 5, 0)

	res, _ := bfs.BFS(g, 1)
	fmt.Println(res.Order)
	// Output: [1 2 3 4 5]
}

package components_test

import (
	"fmt"

	"github.com/katalvlaran/vgraph/components"
	"github.com/katalvlaran/vgraph/core"
)

// ExampleFind enumerates the components of a chain plus an isolated vertex.
func ExampleFind() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)

	res, _ := components.Find(g)
	for _, c := range res.Components {
		fmt.Println(c)
	}
	// Output:
	// component 1: 1 2 3
	// component 2: 4
}

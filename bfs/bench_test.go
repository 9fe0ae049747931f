package bfs_test

import (
	"testing"

	"github.com/katalvlaran/vgraph/bfs"
	"github.com/katalvlaran/vgraph/core"
)

// buildPath constructs a directed path graph 1→2→...→n.
func buildPath(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n, core.WithDirected())
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i, i+1, 0); err != nil {
			b.Fatal(err)
		}
	}
	return g
}

// BenchmarkBFS_Path10k measures a full traversal of a 10k-vertex path.
func BenchmarkBFS_Path10k(b *testing.B) {
	g := buildPath(b, core.MaxVertices)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Unvisit()
		if _, err := bfs.BFS(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

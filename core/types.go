// Package core defines the central Graph and Edge types for dense
// integer-id graphs, and the primitives for building and querying them.
//
// Vertex ids are integers in [1, VertexCount]; id 0 is reserved and
// never used. The vertex set is fixed at construction time; edges are
// appended incrementally and never removed.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrVertexCount - vertex count is non-positive or above MaxVertices.
//	ErrVertexRange - edge endpoint outside [1, VertexCount].
//	ErrBadWeight   - non-zero weight provided to an unweighted graph.
package core

import (
	"errors"
	"fmt"
)

// MaxVertices is the largest vertex count a Graph may be constructed with.
const MaxVertices = 10000

// Sentinel errors for core graph operations.
var (
	// ErrVertexCount indicates a non-positive or over-maximum vertex count.
	ErrVertexCount = errors.New("core: vertex count out of range")

	// ErrVertexRange indicates an edge endpoint outside [1, VertexCount].
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge is a directed arc stored in its source vertex's out-edge list.
//
// ID is a per-graph insertion sequence number. In an undirected graph
// the stored mirror arc shares the ID of its originating AddEdge call,
// so the two halves of one undirected edge are identifiable as the
// same logical edge.
type Edge struct {
	// ID identifies the logical edge this arc belongs to.
	ID int

	// To is the destination vertex id.
	To int

	// Weight is the cost of the edge. Unused by the traversal and
	// cycle algorithms; kept for extensibility.
	Weight int64
}

// vertex bundles per-vertex degree counters and the ordered out-edge list.
// Insertion order of out is the traversal order of every algorithm.
type vertex struct {
	indegree  int
	outdegree int
	out       []Edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes the graph directed: edges are one-way and
// indegree/outdegree counters are maintained.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory dense-id graph engine.
//
// It owns the adjacency structure for a fixed vertex count plus the
// per-instance discovered/processed visitation state shared by the
// traversal packages. A Graph is not safe for concurrent use; callers
// must serialize access externally if shared.
type Graph struct {
	directed bool // edges one-way, degree counters maintained
	weighted bool // allow non-zero weights

	n        int // vertex count; ids are 1..n
	nextEdge int // logical edge ID generator

	vertices []vertex // index 0 unused

	// Visitation state. discovered marks a vertex the first time it is
	// encountered; processed marks it once all its neighbors have been
	// explored. processed[v] implies discovered[v].
	discovered []bool
	processed  []bool
}

// NewGraph creates a Graph with vertices 1..vertexCount and the given
// options. By default the Graph is undirected and unweighted.
// Returns ErrVertexCount if vertexCount is non-positive or exceeds
// MaxVertices.
//
// Complexity: O(V)
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount <= 0 || vertexCount > MaxVertices {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrVertexCount, vertexCount, MaxVertices)
	}
	g := &Graph{
		n:          vertexCount,
		vertices:   make([]vertex, vertexCount+1),
		discovered: make([]bool, vertexCount+1),
		processed:  make([]bool, vertexCount+1),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

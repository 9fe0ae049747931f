// Package graphio implements the text collaborators around the graph
// engine: an edge-list reader and the space-separated order writer.
//
// The edge-list format is whitespace-separated integers, consumed in
// pairs (x, y) until the stream is exhausted. Each pair becomes one
// AddEdge(x, y, 0) call; undirected graphs mirror internally, so the
// reader never double-inserts. ReadGraph additionally consumes a
// leading vertex count, matching the reference stdin harness.
//
// Malformed tokens and dangling endpoints are rejected with
// ErrMalformedInput; out-of-range endpoints propagate
// core.ErrVertexRange from AddEdge.
//
// Errors:
//
//	ErrGraphNil       - nil graph passed to ReadEdges.
//	ErrMalformedInput - token not an integer, or odd token count.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vgraph/core"
)

// Sentinel errors for edge-list reading.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrMalformedInput indicates a token that cannot be parsed as an
	// integer, or an edge list with a dangling endpoint.
	ErrMalformedInput = errors.New("graphio: malformed edge list")
)

// ReadEdges reads integer pairs (x, y) from r until exhausted and
// inserts each as an unweighted edge of g.
func ReadEdges(r io.Reader, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return readEdges(sc, g)
}

// ReadGraph reads a vertex count followed by an edge list from r and
// returns the populated graph. Options are passed through to
// core.NewGraph, so directedness is chosen by the caller.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, ok, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedInput)
	}

	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = readEdges(sc, g); err != nil {
		return nil, err
	}

	return g, nil
}

// readEdges drains sc in integer pairs, inserting each into g.
func readEdges(sc *bufio.Scanner, g *core.Graph) error {
	for {
		x, ok, err := nextInt(sc)
		if err != nil {
			return err
		}
		if !ok {
			return nil // clean end of stream
		}
		y, ok, err := nextInt(sc)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: dangling endpoint %d", ErrMalformedInput, x)
		}
		if err = g.AddEdge(x, y, 0); err != nil {
			return err
		}
	}
}

// nextInt scans one whitespace-separated token and parses it as an
// integer. ok is false at a clean end of stream.
func nextInt(sc *bufio.Scanner) (v int, ok bool, err error) {
	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return 0, false, fmt.Errorf("graphio: read: %w", err)
		}

		return 0, false, nil
	}
	v, err = strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, sc.Text())
	}

	return v, true, nil
}

// WriteOrder writes a visit order as space-separated vertex ids
// followed by a newline, the reference sink format.
func WriteOrder(w io.Writer, order []int) error {
	var b strings.Builder
	for i, v := range order {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

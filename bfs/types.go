// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is emitted (after it is marked
	// processed). If it returns an error, BFS aborts and propagates it.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each emission; returning
// an error from this callback stops the traversal.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
// Order lists vertex ids in emission sequence, covering every vertex
// of the graph that was undiscovered when BFS began.
type Result struct {
	Order []int
}

// Package dfs defines options and error definitions for depth-first
// traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called in pre-order, when a vertex is first discovered
	// and emitted. If it returns an error, DFS aborts and propagates it.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with a Background context and a no-op
// OnVisit hook.
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

// WithOnVisit registers a pre-order callback; returning an error from
// this callback stops the traversal.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a DFS traversal:
// Order lists vertex ids in pre-order emission sequence, covering
// every vertex of the graph that was undiscovered when DFS began.
type Result struct {
	Order []int
}

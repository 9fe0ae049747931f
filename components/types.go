// Package components defines options, errors, and result types for
// component enumeration.
package components

import (
	"errors"
	"fmt"
)

// Sentinel errors for component enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")
)

// Traversal selects the primitive used to collect each component.
// BFS and DFS are interchangeable here: they reach the same vertex set
// from a seed and differ only in member ordering.
type Traversal int

const (
	// UseDFS collects components depth-first (the default).
	UseDFS Traversal = iota

	// UseBFS collects components breadth-first.
	UseBFS
)

// Option configures component enumeration via functional arguments.
type Option func(*Options)

// Options holds parameters for Find.
type Options struct {
	// Traversal selects the collection primitive.
	Traversal Traversal

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options collecting with DFS.
func DefaultOptions() Options {
	return Options{Traversal: UseDFS}
}

// WithTraversal selects the traversal primitive. Values other than
// UseDFS and UseBFS surface as ErrOptionViolation.
func WithTraversal(t Traversal) Option {
	return func(o *Options) {
		switch t {
		case UseDFS, UseBFS:
			o.Traversal = t
		default:
			o.err = fmt.Errorf("%w: unknown traversal %d", ErrOptionViolation, t)
		}
	}
}

// Component is one enumerated component: a 1-based index and the
// member vertex ids in traversal visit order.
type Component struct {
	Index    int
	Vertices []int
}

// Result holds the outcome of Find: components indexed from 1, in
// ascending order of their seed vertex. Together they partition the
// vertex set.
type Result struct {
	Components []Component
}

package solve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/path"
)

// Log receives debug traces of each solve and observer failures.
var Log = logrus.New()

// Sentinel errors for solve execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// AlgBFS explores with a FIFO queue.
	AlgBFS Algorithm = iota
	// AlgDFS explores with a LIFO stack.
	AlgDFS
)

func (a Algorithm) String() string {
	switch a {
	case AlgBFS:
		return "bfs"
	case AlgDFS:
		return "dfs"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bfs" or "dfs" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return AlgBFS, nil
	case "dfs":
		return AlgDFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Observer is notified of every partial path taken off the frontier.
type Observer func(p path.Path)

// Option configures a solve via functional arguments.
type Option func(*Options)

// Options holds parameters for a solve.
type Options struct {
	// Observer, if non-nil, sees each dequeued or popped path.
	Observer Observer

	// ParentLinks stores cells and a predecessor map on the frontier
	// instead of whole paths.
	ParentLinks bool
}

// DefaultOptions returns Options with no observer and whole-path frontier.
func DefaultOptions() Options {
	return Options{
		Observer:    nil,
		ParentLinks: false,
	}
}

// WithObserver installs fn as the observation hook. A nil fn is ignored.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithParentLinks selects the cell + predecessor frontier.
func WithParentLinks() Option {
	return func(o *Options) {
		o.ParentLinks = true
	}
}

// Result is the outcome of a solve.
//   - Path: the route found, or empty if none exists.
//   - Expanded: number of frontier elements taken off the frontier.
type Result struct {
	Algorithm Algorithm
	Path      path.Path
	Expanded  int
}

// Found reports whether a route was found.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

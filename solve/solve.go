package solve

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/grid"
)

// BFS searches g breadth-first. A non-empty result path is a shortest route
// from g.Start() to g.End(); an empty one means no route exists.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Solve(g, AlgBFS, opts...)
}

// DFS searches g depth-first and returns the first route discovered, which
// need not be shortest. An empty result path means no route exists.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Solve(g, AlgDFS, opts...)
}

// Solve runs alg on g. A start cell that is itself a wall yields an empty
// path. Returns ErrGridNil or ErrUnknownAlgorithm for invalid input.
func Solve(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if alg != AlgBFS && alg != AlgDFS {
		return nil, ErrUnknownAlgorithm
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(g, alg, o)
	if o.ParentLinks {
		w.walkLinks()
	} else {
		w.walkPaths()
	}

	Log.WithFields(logrus.Fields{
		"algorithm":    alg,
		"rows":         g.Rows(),
		"cols":         g.Cols(),
		"parent_links": o.ParentLinks,
		"expanded":     w.res.Expanded,
		"length":       len(w.res.Path),
	}).Debug("solve finished")

	return w.res, nil
}

package solve

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// walker holds the mutable state of one solve.
type walker struct {
	grid   *grid.Grid
	opts   Options
	claims *grid.Claims
	end    grid.Cell
	res    *Result
}

func newWalker(g *grid.Grid, alg Algorithm, opts Options) *walker {
	return &walker{
		grid:   g,
		opts:   opts,
		claims: grid.NewClaims(g),
		end:    g.End(),
		res:    &Result{Algorithm: alg},
	}
}

// expand returns the passable neighbors of c in (row, col) order and claims
// the ones still open. Only the newly claimed cells are returned.
func (w *walker) expand(c grid.Cell) []grid.Cell {
	nbs := grid.Neighbors(w.grid, c)
	slices.SortFunc(nbs, grid.Compare)
	claimed := nbs[:0]
	for _, nb := range nbs {
		if w.claims.Claim(nb) {
			claimed = append(claimed, nb)
		}
	}
	return claimed
}

// observe hands a copy of p to the observer, swallowing any panic.
func (w *walker) observe(p path.Path) {
	if w.opts.Observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Log.WithFields(logrus.Fields{
				"algorithm": w.res.Algorithm,
				"length":    len(p),
				"panic":     r,
			}).Warn("observer panicked; search continues")
		}
	}()
	w.opts.Observer(slices.Clone(p))
}

// walkPaths runs the search with whole paths as frontier elements.
func (w *walker) walkPaths() {
	f := newFrontier[path.Path](w.res.Algorithm)
	start := w.grid.Start()
	if !w.claims.Claim(start) {
		return
	}
	f.push(path.Path{start})

	for f.len() > 0 {
		cur := f.pop()
		w.res.Expanded++
		w.observe(cur)

		last := cur.Last()
		if last == w.end {
			w.res.Path = cur
			return
		}
		for _, nb := range w.expand(last) {
			f.push(cur.Extend(nb))
		}
	}
}

// walkLinks runs the search with cells as frontier elements and rebuilds
// paths from parent links only when needed.
func (w *walker) walkLinks() {
	f := newFrontier[grid.Cell](w.res.Algorithm)
	parent := make(map[grid.Cell]grid.Cell)
	start := w.grid.Start()
	if !w.claims.Claim(start) {
		return
	}
	f.push(start)

	for f.len() > 0 {
		cur := f.pop()
		w.res.Expanded++
		if w.opts.Observer != nil {
			w.observe(pathTo(parent, start, cur))
		}

		if cur == w.end {
			w.res.Path = pathTo(parent, start, cur)
			return
		}
		for _, nb := range w.expand(cur) {
			parent[nb] = cur
			f.push(nb)
		}
	}
}

// pathTo follows parent links from dest back to start and returns the
// route in start → dest order.
func pathTo(parent map[grid.Cell]grid.Cell, start, dest grid.Cell) path.Path {
	var p path.Path
	for cur := dest; ; {
		p = append(p, cur)
		if cur == start {
			break
		}
		cur = parent[cur]
	}
	slices.Reverse(p)
	return p
}

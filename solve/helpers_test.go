package solve_test

import (
	"math/rand"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// maze builds a grid from rows of '-' (open) and '@' (wall).
func maze(rows ...string) *grid.Grid {
	m := make([][]bool, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, len(line))
		for c, ch := range line {
			m[r][c] = ch == '-'
		}
	}
	return grid.MustNew(m)
}

func cells(rc ...int) path.Path {
	p := make(path.Path, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		p = append(p, grid.Cell{Row: rc[i], Col: rc[i+1]})
	}
	return p
}

// randomMaze returns an r×c grid with roughly density open cells and the
// corners forced open.
func randomMaze(rng *rand.Rand, r, c int, density float64) *grid.Grid {
	m := make([][]bool, r)
	for i := range m {
		m[i] = make([]bool, c)
		for j := range m[i] {
			m[i][j] = rng.Float64() < density
		}
	}
	m[0][0], m[r-1][c-1] = true, true
	return grid.MustNew(m)
}

// shortestCells computes the minimum cell count of any start→end route with
// a plain cell BFS, or 0 when the end is unreachable.
func shortestCells(g *grid.Grid) int {
	if !g.Passable(g.Start()) {
		return 0
	}
	dist := map[grid.Cell]int{g.Start(): 1}
	q := []grid.Cell{g.Start()}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur == g.End() {
			return dist[cur]
		}
		for _, nb := range grid.Neighbors(g, cur) {
			if _, ok := dist[nb]; !ok {
				dist[nb] = dist[cur] + 1
				q = append(q, nb)
			}
		}
	}
	return 0
}

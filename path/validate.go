package path

import "github.com/katalvlaran/mazesolve/grid"

// Validate returns nil if p is a legal solution of g, otherwise a
// *ValidationError describing the first problem found.
func Validate(g *grid.Grid, p Path) error {
	if g == nil {
		return ErrGridNil
	}
	if len(p) == 0 {
		return &ValidationError{Kind: EmptyPath, Index: -1}
	}
	if p[0] != g.Start() {
		return &ValidationError{Kind: BadEndpoints, Index: 0, Cell: p[0]}
	}
	if last := len(p) - 1; p[last] != g.End() {
		return &ValidationError{Kind: BadEndpoints, Index: last, Cell: p[last]}
	}

	visited := map[grid.Cell]struct{}{p[0]: {}}
	moves := grid.NeighborSet(g, p[0])
	for i := 1; i < len(p); i++ {
		cur := p[i]
		if _, seen := visited[cur]; seen {
			return &ValidationError{Kind: LoopDetected, Index: i, Cell: cur}
		}
		if _, ok := moves[cur]; !ok {
			return &ValidationError{Kind: IllegalMove, Index: i, Cell: cur}
		}
		visited[cur] = struct{}{}
		moves = grid.NeighborSet(g, cur)
	}

	return nil
}

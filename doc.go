// Package mazesolve finds routes through rectangular mazes of open and
// blocked cells, from the top-left cell to the bottom-right cell.
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/            Cell, immutable Grid, the neighbor generator and solver claims
//	path/            Path and the solution validator
//	solve/           breadth-first (shortest) and depth-first searches with observer hooks
//	loader/          maze ('@' wall, '-' corridor) and solution text formats
//	render/          text drawing and a frame-by-frame search animator
//	cmd/mazesolve/   command-line entry point
//
// Quick example:
//
//	g, _ := loader.LoadFile("res/25x33.maze")
//	res, _ := solve.BFS(g)
//	if err := path.Validate(g, res.Path); err != nil {
//		// not a legal route
//	}
//
// An empty res.Path means the maze has no solution.
package mazesolve

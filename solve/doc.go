// Package solve finds a route through a grid.Grid from the top-left cell to
// the bottom-right cell using breadth-first (BFS) or depth-first (DFS)
// exploration.
//
// What
//
//   - BFS returns a shortest path (fewest cells).
//   - DFS returns the first path found in depth-first order.
//   - Both return an empty path when the maze has no solution; that is not
//     an error.
//   - Frontier elements are whole paths by default. WithParentLinks switches
//     to cells plus a predecessor map, which is far lighter on large mazes
//     and yields the same result.
//
// Claiming
//
//	Each run copies the grid's passability into a grid.Claims. A cell is
//	claimed the moment a path reaching it is pushed onto the frontier, so no
//	sibling branch extends through it again. The grid itself is never
//	written, so BFS and DFS may run on the same grid at the same time.
//
// Determinism
//
//	Neighbors of a cell are expanded in (row, col) order, so repeated runs
//	on the same grid yield the same path.
//
// Goal check
//
//	The end cell is recognized when its path is taken off the frontier, not
//	when it is generated, so the observer always sees the final path.
//
// Observation
//
//	WithObserver installs a callback invoked once per path taken off the
//	frontier, before the goal check. It receives a copy of the path and
//	cannot influence the search; a panicking observer is recovered and
//	logged through Log.
//
// Complexity (R×C grid)
//
//   - Time:   O(R×C) frontier steps; whole-path mode adds O(length) copying per push.
//   - Memory: O(R×C) with WithParentLinks, O((R×C)·length) otherwise.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrUnknownAlgorithm   from Solve/ParseAlgorithm for an unrecognized name.
package solve

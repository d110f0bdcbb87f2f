// Package grid models a rectangular maze of open and blocked cells.
//
// What:
//
//   - Grid wraps a rectangular [][]bool where true means passable.
//   - Cell addresses a location by (Row, Col) and is usable as a map key.
//   - Neighbors enumerates passable orthogonal neighbors in a fixed order
//     (up, down, left, right).
//   - Claims is a solver-local copy of passability that a search marks as it
//     claims cells, leaving the Grid itself untouched.
//
// Why:
//
//   - A Grid is built once and is read-only afterwards, so several solvers may
//     share it without locking.
//   - Deterministic neighbor order makes every search reproducible.
//
// Complexity:
//
//   - New, Clone, NewClaims: O(R×C) time and memory.
//   - Neighbors, Passable, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid

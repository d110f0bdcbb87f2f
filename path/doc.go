// Package path defines Path, an ordered sequence of grid cells, and
// Validate, which certifies that a path is a legal maze solution.
//
// A legal solution:
//
//   - is non-empty,
//   - starts at (0,0) and ends at (Rows-1, Cols-1),
//   - never revisits a cell,
//   - moves only between passable orthogonal neighbors.
//
// Validate checks these in that order and stops at the first failure.
// Every failure is a *ValidationError whose Unwrap yields one of
// ErrEmptyPath, ErrBadEndpoints, ErrLoopDetected or ErrIllegalMove,
// so callers can discriminate with errors.Is.
//
// Validate never mutates the grid or the path.
package path

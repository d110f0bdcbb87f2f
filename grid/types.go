// Package grid defines the Cell and Grid types and sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Cell is a (Row, Col) location in a Grid.
type Cell struct {
	Row, Col int
}

// Less orders cells lexicographically by (Row, Col).
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Compare returns -1, 0 or +1 ordering a and b by (Row, Col).
// It has the shape expected by slices.SortFunc.
func Compare(a, b Cell) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// String renders the cell as "r<row>c<col>".
func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// offsets lists the orthogonal moves in check order: up, down, left, right.
var offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular matrix of passable (true) and
// blocked (false) cells. Dimensions never change after New.
type Grid struct {
	rows, cols int
	open       [][]bool
}

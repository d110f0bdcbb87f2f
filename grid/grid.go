package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of rows has no effect.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func New(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return &Grid{rows: h, cols: w, open: copyRows(rows)}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(rows [][]bool) *Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the top-left cell (0,0).
func (g *Grid) Start() Cell { return Cell{0, 0} }

// End returns the bottom-right cell (Rows-1, Cols-1).
func (g *Grid) End() Cell { return Cell{g.rows - 1, g.cols - 1} }

// InBounds reports whether c lies within [0,Rows) × [0,Cols).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and open.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.open[c.Row][c.Col]
}

// OpenCells counts passable cells.
func (g *Grid) OpenCells() int {
	n := 0
	for _, row := range g.open {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// Passability returns a copy of the underlying matrix.
func (g *Grid) Passability() [][]bool {
	return copyRows(g.open)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, open: copyRows(g.open)}
}

func copyRows(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for r := range src {
		dst[r] = make([]bool, len(src[r]))
		copy(dst[r], src[r])
	}
	return dst
}

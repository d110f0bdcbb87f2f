package grid

// Neighbors returns the passable orthogonal neighbors of c, checked in the
// order up, down, left, right. Candidates outside the grid are discarded.
// A cell walled in on all sides yields an empty (nil) slice.
func Neighbors(g *Grid, c Cell) []Cell {
	var out []Cell
	for _, d := range offsets {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborSet is the membership view of Neighbors.
func NeighborSet(g *Grid, c Cell) map[Cell]struct{} {
	nbs := Neighbors(g, c)
	set := make(map[Cell]struct{}, len(nbs))
	for _, n := range nbs {
		set[n] = struct{}{}
	}
	return set
}

// Claims is a per-search working copy of a Grid's passability. A cell that
// has been claimed reads as closed for the rest of the search.
type Claims struct {
	open [][]bool
}

// NewClaims copies g's passability into a fresh Claims.
func NewClaims(g *Grid) *Claims {
	return &Claims{open: copyRows(g.open)}
}

// Open reports whether c is still unclaimed and passable.
func (cl *Claims) Open(c Cell) bool {
	if c.Row < 0 || c.Row >= len(cl.open) || c.Col < 0 || c.Col >= len(cl.open[c.Row]) {
		return false
	}
	return cl.open[c.Row][c.Col]
}

// Claim marks c closed. It returns false if c was already closed.
func (cl *Claims) Claim(c Cell) bool {
	if !cl.Open(c) {
		return false
	}
	cl.open[c.Row][c.Col] = false
	return true
}

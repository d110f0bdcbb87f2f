package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// Draw writes g to w with every cell of p highlighted.
func Draw(w io.Writer, g *grid.Grid, p path.Path, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return draw(w, g, p, o)
}

func draw(w io.Writer, g *grid.Grid, p path.Path, o Options) error {
	marked := make(map[grid.Cell]struct{}, len(p))
	for _, c := range p {
		marked[c] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			if _, ok := marked[cell]; ok {
				if o.Color {
					bw.WriteString(ansiColors[o.Highlight])
					bw.WriteString("█")
					bw.WriteString(ansiReset)
				} else {
					bw.WriteByte(o.Mark)
				}
				continue
			}
			if g.Passable(cell) {
				bw.WriteByte(o.Open)
			} else {
				bw.WriteByte(o.Wall)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

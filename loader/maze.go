package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/grid"
)

// Parse reads a maze from r.
func Parse(r io.Reader) (*grid.Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	cols := len(lines[0])
	rows := make([][]bool, len(lines))
	for i, line := range lines {
		if len(line) != cols {
			return nil, &ParseError{Line: i + 1, Err: ErrInconsistentRow}
		}
		rows[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			switch ch := line[j]; ch {
			case Wall:
				rows[i][j] = false
			case Corridor:
				rows[i][j] = true
			default:
				return nil, &ParseError{
					Line: i + 1,
					Col:  j + 1,
					Err:  fmt.Errorf("%w: %q", ErrInvalidChar, ch),
				}
			}
		}
	}

	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return g, nil
}

// LoadFile opens name and parses it as a maze.
func LoadFile(name string) (*grid.Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("loader: cannot open maze file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	Log.WithFields(logrus.Fields{
		"file": name,
		"rows": g.Rows(),
		"cols": g.Cols(),
	}).Debug("maze loaded")
	return g, nil
}

// Format writes g in the maze format, one row per line.
func Format(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			ch := byte(Wall)
			if g.Passable(grid.Cell{Row: r, Col: c}) {
				ch = Corridor
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readLines splits r into lines without terminators and drops trailing
// blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read maze: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

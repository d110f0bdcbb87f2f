package loader

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// ParseSolution reads a path written as "{r0c0, r0c1, ...}". Whitespace
// around cells and braces is ignored; "{}" is an empty path.
func ParseSolution(r io.Reader) (path.Path, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read solution: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return nil, fmt.Errorf("%w: missing braces", ErrSolutionFormat)
	}
	body := strings.TrimSpace(text[1 : len(text)-1])
	if body == "" {
		return path.Path{}, nil
	}

	fields := strings.Split(body, ",")
	p := make(path.Path, 0, len(fields))
	for i, field := range fields {
		c, err := parseCell(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrSolutionFormat, i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// LoadSolutionFile opens name and parses it as a solution.
func LoadSolutionFile(name string) (path.Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("loader: cannot open solution file: %w", err)
	}
	defer f.Close()

	p, err := ParseSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// parseCell parses "r<row>c<col>".
func parseCell(s string) (grid.Cell, error) {
	rest, ok := strings.CutPrefix(s, "r")
	if !ok {
		return grid.Cell{}, fmt.Errorf("%q: expected r<row>c<col>", s)
	}
	rowText, colText, ok := strings.Cut(rest, "c")
	if !ok {
		return grid.Cell{}, fmt.Errorf("%q: expected r<row>c<col>", s)
	}
	row, err := strconv.Atoi(rowText)
	if err != nil || row < 0 {
		return grid.Cell{}, fmt.Errorf("%q: bad row", s)
	}
	col, err := strconv.Atoi(colText)
	if err != nil || col < 0 {
		return grid.Cell{}, fmt.Errorf("%q: bad column", s)
	}
	return grid.Cell{Row: row, Col: col}, nil
}

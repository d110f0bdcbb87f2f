// Package loader reads and writes the textual maze format and the textual
// solution format.
//
// Maze format: one line per grid row, every line the same length, '@' for
// a wall and '-' for a corridor. Trailing blank lines and carriage returns
// are ignored.
//
//	-@---
//	-@-@-
//	---@-
//
// Solution format: the rendering of path.Path.String, a brace-enclosed,
// comma-separated list of r<row>c<col> cells:
//
//	{r0c0, r1c0, r2c0, r2c1, r2c2}
package loader

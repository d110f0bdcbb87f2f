package loader

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Log receives debug traces of loaded files.
var Log = logrus.New()

// Maze glyphs.
const (
	Wall     = '@'
	Corridor = '-'
)

// Sentinel errors for parsing.
var (
	// ErrEmptyInput indicates the maze text has no rows.
	ErrEmptyInput = errors.New("loader: maze input is empty")

	// ErrInconsistentRow indicates a row whose length differs from the first.
	ErrInconsistentRow = errors.New("loader: maze row has inconsistent number of columns")

	// ErrInvalidChar indicates a glyph other than Wall or Corridor.
	ErrInvalidChar = errors.New("loader: maze location has invalid character")

	// ErrSolutionFormat indicates malformed solution text.
	ErrSolutionFormat = errors.New("loader: maze solution did not have the correct format")
)

// ParseError locates a parse failure. Line and Col are 1-based; Col is 0
// when the failure concerns a whole line.
type ParseError struct {
	Line, Col int
	Err       error
}

func (e *ParseError) Error() string {
	if e.Col == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

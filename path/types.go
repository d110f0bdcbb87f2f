package path

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesolve/grid"
)

// Sentinel errors reported by Validate.
var (
	// ErrGridNil is returned when Validate receives a nil grid.
	ErrGridNil = errors.New("path: grid is nil")

	// ErrEmptyPath indicates the path has no cells.
	ErrEmptyPath = errors.New("path: path is empty")

	// ErrBadEndpoints indicates the path does not start at the top-left
	// corner or does not end at the bottom-right corner.
	ErrBadEndpoints = errors.New("path: start or end location is not correct")

	// ErrLoopDetected indicates the path revisits a cell.
	ErrLoopDetected = errors.New("path: loop in path")

	// ErrIllegalMove indicates a step to a cell that is not a passable
	// orthogonal neighbor of the previous one.
	ErrIllegalMove = errors.New("path: illegal move")
)

// Kind classifies a validation failure.
type Kind int

const (
	EmptyPath Kind = iota
	BadEndpoints
	LoopDetected
	IllegalMove
)

func (k Kind) String() string {
	switch k {
	case EmptyPath:
		return "EmptyPath"
	case BadEndpoints:
		return "BadEndpoints"
	case LoopDetected:
		return "LoopDetected"
	case IllegalMove:
		return "IllegalMove"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case EmptyPath:
		return ErrEmptyPath
	case BadEndpoints:
		return ErrBadEndpoints
	case LoopDetected:
		return ErrLoopDetected
	default:
		return ErrIllegalMove
	}
}

// ValidationError reports where a path failed validation.
// Index is the offending position in the path (-1 for EmptyPath).
type ValidationError struct {
	Kind  Kind
	Index int
	Cell  grid.Cell
}

func (e *ValidationError) Error() string {
	if e.Kind == EmptyPath {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%v at index %d (%v)", e.Kind.sentinel(), e.Index, e.Cell)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// Path is an ordered sequence of cells from a start towards an end.
// Paths handed out by solvers are snapshots and are never mutated.
type Path []grid.Cell

// Len returns the number of cells.
func (p Path) Len() int { return len(p) }

// Empty reports whether p has no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Last returns the final cell. It panics on an empty path.
func (p Path) Last() grid.Cell { return p[len(p)-1] }

// Extend returns a new path of p followed by c. The receiver's backing
// array is never shared with the result.
func (p Path) Extend(c grid.Cell) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, c)
}

// Contains reports whether c appears in p.
func (p Path) Contains(c grid.Cell) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// String renders p as "{r0c0, r1c0, r1c1}".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

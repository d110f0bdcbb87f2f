package path_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

func c(r, col int) grid.Cell { return grid.Cell{Row: r, Col: col} }

// ValidateSuite exercises Validate over a fixed 3×3 maze:
//
//	- - -
//	@ @ -
//	- - -
type ValidateSuite struct {
	suite.Suite
	g *grid.Grid
}

func (s *ValidateSuite) SetupTest() {
	s.g = grid.MustNew([][]bool{
		{true, true, true},
		{false, false, true},
		{true, true, true},
	})
}

func (s *ValidateSuite) requireKind(err error, kind path.Kind, sentinel error) *path.ValidationError {
	var ve *path.ValidationError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ve), "error must be *ValidationError, got %T", err)
	require.Equal(s.T(), kind, ve.Kind)
	require.ErrorIs(s.T(), err, sentinel)
	return ve
}

// TestValid accepts the only solution.
func (s *ValidateSuite) TestValid() {
	p := path.Path{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)}
	require.NoError(s.T(), path.Validate(s.g, p))
}

// TestEmpty rejects an empty path with EmptyPath.
func (s *ValidateSuite) TestEmpty() {
	ve := s.requireKind(path.Validate(s.g, nil), path.EmptyPath, path.ErrEmptyPath)
	require.Equal(s.T(), -1, ve.Index)
}

// TestBadStart rejects a path not beginning at (0,0).
func (s *ValidateSuite) TestBadStart() {
	p := path.Path{c(0, 1), c(0, 2), c(1, 2), c(2, 2)}
	ve := s.requireKind(path.Validate(s.g, p), path.BadEndpoints, path.ErrBadEndpoints)
	require.Equal(s.T(), 0, ve.Index)
}

// TestBadEnd rejects a path stopping short of the exit.
func (s *ValidateSuite) TestBadEnd() {
	p := path.Path{c(0, 0), c(0, 1), c(0, 2), c(1, 2)}
	ve := s.requireKind(path.Validate(s.g, p), path.BadEndpoints, path.ErrBadEndpoints)
	require.Equal(s.T(), 3, ve.Index)
}

// TestEndpointsCheckedBeforeMoves reports BadEndpoints even when moves are illegal too.
func (s *ValidateSuite) TestEndpointsCheckedBeforeMoves() {
	p := path.Path{c(0, 0), c(2, 0)}
	s.requireKind(path.Validate(s.g, p), path.BadEndpoints, path.ErrBadEndpoints)
}

// TestLoop rejects a path that returns to a visited cell.
func (s *ValidateSuite) TestLoop() {
	p := path.Path{c(0, 0), c(0, 1), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)}
	ve := s.requireKind(path.Validate(s.g, p), path.LoopDetected, path.ErrLoopDetected)
	require.Equal(s.T(), 2, ve.Index)
	require.Equal(s.T(), c(0, 0), ve.Cell)
}

// TestJump rejects a non-adjacent step.
func (s *ValidateSuite) TestJump() {
	p := path.Path{c(0, 0), c(0, 2), c(1, 2), c(2, 2)}
	ve := s.requireKind(path.Validate(s.g, p), path.IllegalMove, path.ErrIllegalMove)
	require.Equal(s.T(), 1, ve.Index)
}

// TestThroughWall rejects a step into a blocked cell.
func (s *ValidateSuite) TestThroughWall() {
	p := path.Path{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)}
	s.requireKind(path.Validate(s.g, p), path.IllegalMove, path.ErrIllegalMove)
}

// TestDiagonal rejects a diagonal step.
func (s *ValidateSuite) TestDiagonal() {
	p := path.Path{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 1), c(2, 2)}
	s.requireKind(path.Validate(s.g, p), path.IllegalMove, path.ErrIllegalMove)
}

// TestDoesNotMutate verifies inputs are left unchanged.
func (s *ValidateSuite) TestDoesNotMutate() {
	before := s.g.Passability()
	p := path.Path{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)}
	snapshot := append(path.Path(nil), p...)
	_ = path.Validate(s.g, p)
	require.Equal(s.T(), before, s.g.Passability())
	require.Equal(s.T(), snapshot, p)
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

// TestValidate_NilGrid reports ErrGridNil.
func TestValidate_NilGrid(t *testing.T) {
	require.ErrorIs(t, path.Validate(nil, path.Path{c(0, 0)}), path.ErrGridNil)
}

// TestValidate_SingleCell accepts [(0,0)] on a 1×1 grid.
func TestValidate_SingleCell(t *testing.T) {
	g := grid.MustNew([][]bool{{true}})
	require.NoError(t, path.Validate(g, path.Path{c(0, 0)}))
}

// TestValidate_WalledStart covers a maze whose start is a wall: the only
// thing a solver can hand over is an empty path, which must fail cleanly.
func TestValidate_WalledStart(t *testing.T) {
	g := grid.MustNew([][]bool{{false, true}, {true, true}})
	require.ErrorIs(t, path.Validate(g, path.Path{}), path.ErrEmptyPath)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/internal/config"
	"github.com/katalvlaran/mazesolve/loader"
	"github.com/katalvlaran/mazesolve/path"
	"github.com/katalvlaran/mazesolve/render"
	"github.com/katalvlaran/mazesolve/solve"
)

// ErrInvalidSolution is returned when a checked solution fails validation.
var ErrInvalidSolution = errors.New("mazesolve: invalid solution")

// report is the JSON form of one solve or validation.
type report struct {
	label     string
	RunID     string   `json:"run_id"`
	Maze      string   `json:"maze"`
	Algorithm string   `json:"algorithm,omitempty"`
	Found     bool     `json:"found"`
	Length    int      `json:"length"`
	Expanded  int      `json:"expanded,omitempty"`
	Valid     bool     `json:"valid"`
	Error     string   `json:"error,omitempty"`
	Path      []string `json:"path"`
}

type app struct {
	cfg   config.Config
	out   io.Writer
	runID string
}

func newApp(cfg config.Config, out io.Writer) *app {
	return &app{cfg: cfg, out: out, runID: uuid.NewString()}
}

func (a *app) algorithms() ([]solve.Algorithm, error) {
	if a.cfg.Algorithm == "both" {
		return []solve.Algorithm{solve.AlgBFS, solve.AlgDFS}, nil
	}
	alg, err := solve.ParseAlgorithm(a.cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return []solve.Algorithm{alg}, nil
}

func (a *app) run(ctx context.Context) error {
	g, err := loader.LoadFile(a.cfg.MazeFile)
	if err != nil {
		return err
	}
	if a.cfg.SolutionFile != "" {
		return a.check(g)
	}

	algs, err := a.algorithms()
	if err != nil {
		return err
	}

	// Animation shares the terminal, so searches then run one at a time.
	if a.cfg.Animate {
		for _, alg := range algs {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := a.solveOne(g, alg)
			if err != nil {
				return err
			}
			if err := a.emit(r); err != nil {
				return err
			}
		}
		return nil
	}

	// Solves run concurrently; results print in algs order.
	reports := make([]report, len(algs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r, err := a.solveOne(g, alg)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, r := range reports {
		if err := a.emit(r); err != nil {
			return err
		}
	}
	return nil
}

// solveOne runs alg on g and builds its report without printing it.
func (a *app) solveOne(g *grid.Grid, alg solve.Algorithm) (report, error) {
	var opts []solve.Option
	if a.cfg.Animate {
		anim := render.NewAnimator(a.out, g, a.cfg.Delay,
			render.WithColor(render.ColorSupported(a.out)))
		opts = append(opts, solve.WithObserver(anim.Observe))
	}
	if g.Rows()*g.Cols() > largeMaze {
		opts = append(opts, solve.WithParentLinks())
	}

	res, err := solve.Solve(g, alg, opts...)
	if err != nil {
		return report{}, err
	}

	r := a.newReport(strings.ToUpper(alg.String()), res.Path)
	r.Algorithm = alg.String()
	r.Found = res.Found()
	r.Expanded = res.Expanded
	if r.Found {
		if verr := path.Validate(g, res.Path); verr != nil {
			r.Error = verr.Error()
		} else {
			r.Valid = true
		}
	}

	log.WithFields(logrus.Fields{
		"run":       a.runID,
		"algorithm": alg,
		"found":     r.Found,
		"length":    r.Length,
		"expanded":  r.Expanded,
	}).Info("solved")

	return r, nil
}

// check validates the configured solution file against g.
func (a *app) check(g *grid.Grid) error {
	p, err := loader.LoadSolutionFile(a.cfg.SolutionFile)
	if err != nil {
		return err
	}
	r := a.newReport("SOLUTION", p)
	verr := path.Validate(g, p)
	r.Found = verr == nil
	r.Valid = verr == nil
	if verr != nil {
		r.Error = verr.Error()
	}
	if err := a.emit(r); err != nil {
		return err
	}
	if verr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSolution, verr)
	}
	return nil
}

func (a *app) newReport(label string, p path.Path) report {
	cells := make([]string, len(p))
	for i, c := range p {
		cells[i] = c.String()
	}
	return report{
		label:  label,
		RunID:  a.runID,
		Maze:   a.cfg.MazeFile,
		Length: len(p),
		Path:   cells,
	}
}

// emit prints r as JSON or as the plain cell listing.
func (a *app) emit(r report) error {
	if a.cfg.JSON {
		return json.NewEncoder(a.out).Encode(r)
	}
	status := "no solution"
	switch {
	case r.Valid:
		status = "valid"
	case r.Error != "":
		status = "invalid: " + r.Error
	}
	_, err := fmt.Fprintf(a.out, "%s (%s): %s\n", r.label, status, strings.Join(r.Path, " "))
	return err
}

// largeMaze is the cell count above which the parent-link frontier is used.
const largeMaze = 64 * 64

package render

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// Log receives animation write failures.
var Log = logrus.New()

// DefaultDelay is the pause after each frame.
const DefaultDelay = 10 * time.Millisecond

// Animator redraws a maze for each partial path it observes.
// It is not safe for concurrent use.
type Animator struct {
	out    io.Writer
	grid   *grid.Grid
	delay  time.Duration
	opts   Options
	frames int
	sleep  func(time.Duration)
}

// NewAnimator returns an Animator drawing g to w and pausing delay after
// each frame. A negative delay is treated as zero.
func NewAnimator(w io.Writer, g *grid.Grid, delay time.Duration, opts ...Option) *Animator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if delay < 0 {
		delay = 0
	}
	return &Animator{out: w, grid: g, delay: delay, opts: o, sleep: time.Sleep}
}

// Observe draws one frame highlighting p. Its signature matches
// solve.Observer. Write errors are logged, never returned.
func (a *Animator) Observe(p path.Path) {
	a.frames++
	if err := a.frame(p); err != nil {
		Log.WithError(err).WithField("frame", a.frames).Warn("animation frame dropped")
		return
	}
	if a.delay > 0 {
		a.sleep(a.delay)
	}
}

// frame writes the header, the maze and the separator for one frame.
func (a *Animator) frame(p path.Path) error {
	if a.opts.Color {
		if _, err := io.WriteString(a.out, ansiClear); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(a.out, "frame %d, length %d\n", a.frames, len(p)); err != nil {
		return err
	}
	if err := draw(a.out, a.grid, p, a.opts); err != nil {
		return err
	}
	if !a.opts.Color {
		if _, err := io.WriteString(a.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns the number of frames drawn so far.
func (a *Animator) Frames() int { return a.frames }

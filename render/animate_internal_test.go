package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolve/grid"
	"github.com/katalvlaran/mazesolve/path"
)

// TestAnimator_Delay pauses once per frame and clears the screen in color mode.
func TestAnimator_Delay(t *testing.T) {
	var buf bytes.Buffer
	g := grid.MustNew([][]bool{{true, true}})
	a := NewAnimator(&buf, g, DefaultDelay, WithColor(true))

	var slept []time.Duration
	a.sleep = func(d time.Duration) { slept = append(slept, d) }

	a.Observe(path.Path{{Row: 0, Col: 0}})
	a.Observe(path.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}})

	assert.Equal(t, []time.Duration{DefaultDelay, DefaultDelay}, slept)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(ansiClear)))
}

// limitWriter accepts up to n bytes, then fails every write.
type limitWriter struct {
	n   int
	buf bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.n {
		return 0, errors.New("output closed")
	}
	return w.buf.Write(p)
}

// TestAnimator_HeaderWriteFailure logs a failed clear or header write and
// skips the rest of the frame, including the pause.
func TestAnimator_HeaderWriteFailure(t *testing.T) {
	hook := logtest.NewLocal(Log)
	defer hook.Reset()

	g := grid.MustNew([][]bool{{true, true}})
	for _, color := range []bool{true, false} {
		hook.Reset()
		w := &limitWriter{n: 0}
		a := NewAnimator(w, g, DefaultDelay, WithColor(color))
		slept := 0
		a.sleep = func(time.Duration) { slept++ }

		a.Observe(path.Path{{Row: 0, Col: 0}})

		require.Len(t, hook.AllEntries(), 1, "color=%t", color)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, 1, entry.Data["frame"])
		assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "output closed")
		assert.Zero(t, slept)
		assert.Equal(t, 1, a.Frames())
	}
}

// TestAnimator_TrailerWriteFailure logs a failed frame separator.
func TestAnimator_TrailerWriteFailure(t *testing.T) {
	hook := logtest.NewLocal(Log)
	defer hook.Reset()

	g := grid.MustNew([][]bool{{true, true}})
	header := "frame 1, length 1\n"
	maze := "*-\n"
	w := &limitWriter{n: len(header) + len(maze)}
	a := NewAnimator(w, g, 0)

	a.Observe(path.Path{{Row: 0, Col: 0}})

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, header+maze, w.buf.String())
}

package render

import (
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// ANSI escape sequences.
const (
	ansiReset = "\033[0m"
	ansiClear = "\033[H\033[2J"
)

var ansiColors = map[string]string{
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
}

// Option configures drawing.
type Option func(*Options)

// Options holds glyphs and color settings.
type Options struct {
	Wall, Open, Mark byte

	// Color enables ANSI highlighting of marked cells.
	Color bool

	// Highlight names the ANSI color used for marked cells.
	Highlight string
}

// DefaultOptions returns '@', '-', '*' glyphs, color off, red highlight.
func DefaultOptions() Options {
	return Options{
		Wall:      '@',
		Open:      '-',
		Mark:      '*',
		Color:     false,
		Highlight: "red",
	}
}

// WithColor toggles ANSI highlighting.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithHighlight selects the highlight color by name. Unknown names are ignored.
func WithHighlight(name string) Option {
	return func(o *Options) {
		if _, ok := ansiColors[name]; ok {
			o.Highlight = name
		}
	}
}

// WithMark sets the glyph used for highlighted cells when color is off.
func WithMark(ch byte) Option {
	return func(o *Options) {
		if ch != 0 {
			o.Mark = ch
		}
	}
}

// ColorSupported reports whether w is a terminal.
func ColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}

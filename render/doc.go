// Package render draws mazes and highlighted paths as text, and provides
// an Animator whose Observe method plugs into solve.WithObserver to replay
// a search frame by frame.
//
// Walls print as '@', corridors as '-', and highlighted cells as '*'.
// With color enabled, highlighted cells are instead printed as a colored
// block; ColorSupported reports whether an output is a terminal.
package render

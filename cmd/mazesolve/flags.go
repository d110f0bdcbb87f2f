package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazesolve/internal/config"
)

// parseFlags overlays command-line flags on cfg.
func parseFlags(args []string, cfg config.Config) (config.Config, error) {
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	const mazeUsage = "maze file path"
	fs.StringVar(&cfg.MazeFile, "maze", cfg.MazeFile, mazeUsage)
	fs.StringVar(&cfg.MazeFile, "m", cfg.MazeFile, mazeUsage+" (shorthand)")
	fs.StringVar(&cfg.Algorithm, "algo", cfg.Algorithm, "search algorithm: bfs, dfs or both")
	fs.StringVar(&cfg.SolutionFile, "solution", cfg.SolutionFile, "validate this solution file instead of solving")
	fs.BoolVar(&cfg.Animate, "animate", cfg.Animate, "draw every step of the search")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause between animation frames")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print JSON reports")
	fs.BoolVar(&cfg.Development, "verbose", cfg.Development, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("mazesolve: %w", err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("mazesolve: unexpected arguments %v", fs.Args())
	}
	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))
	return cfg, nil
}

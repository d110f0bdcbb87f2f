// Package config resolves CLI defaults from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMazeFile    = "MAZE_FILE"
	EnvAlgorithm   = "MAZE_ALGO"
	EnvDelay       = "MAZE_DELAY"
	EnvAnimate     = "MAZE_ANIMATE"
	EnvDevelopment = "MAZE_DEVELOPMENT"
)

// Config holds the resolved settings.
type Config struct {
	MazeFile     string        // maze to solve
	SolutionFile string        // optional solution to validate instead of solving
	Algorithm    string        // bfs, dfs or both
	Animate      bool          // draw every search step
	Delay        time.Duration // pause between animation frames
	JSON         bool          // emit JSON reports
	Development  bool          // debug logging
}

// Defaults used when neither environment nor flags provide a value.
func Defaults() Config {
	return Config{
		MazeFile:  "res/5x7.maze",
		Algorithm: "both",
		Delay:     10 * time.Millisecond,
	}
}

// Load reads files (default ".env") into the process environment without
// overriding variables already set, then resolves Config from it.
// A missing .env file is not an error; the returned bool reports whether
// any file was loaded.
func Load(files ...string) (Config, bool) {
	loaded := godotenv.Load(files...) == nil
	return FromEnv(), loaded
}

// FromEnv resolves Config from the current environment over Defaults.
func FromEnv() Config {
	cfg := Defaults()
	cfg.MazeFile = getEnvWithDefault(EnvMazeFile, cfg.MazeFile)
	cfg.Algorithm = getEnvWithDefault(EnvAlgorithm, cfg.Algorithm)
	cfg.Delay = getEnvAsDuration(EnvDelay, cfg.Delay)
	cfg.Animate = getEnvAsBool(EnvAnimate, cfg.Animate)
	cfg.Development = getEnvAsBool(EnvDevelopment, cfg.Development)
	return cfg
}

func getEnvWithDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return v != "0"
	}
	return b
}

// getEnvAsDuration accepts Go durations ("25ms") or bare milliseconds ("25").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

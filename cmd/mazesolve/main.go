// Command mazesolve reads a maze file, solves it with BFS and/or DFS, and
// prints each route after checking it with the path validator.
//
//	mazesolve -maze res/25x33.maze -algo both
//	mazesolve -maze res/5x7.maze -algo dfs -animate -delay 50ms
//	mazesolve -maze res/5x7.maze -solution res/5x7.soln
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolve/internal/config"
	"github.com/katalvlaran/mazesolve/loader"
	"github.com/katalvlaran/mazesolve/render"
	"github.com/katalvlaran/mazesolve/solve"
)

var log = logrus.New()

func setupLogging(cfg config.Config) {
	logLevel := logrus.InfoLevel
	if cfg.Development {
		logLevel = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, solve.Log, loader.Log, render.Log} {
		l.SetLevel(logLevel)
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	env, dotenv := config.Load()
	cfg, err := parseFlags(os.Args[1:], env)
	if err != nil {
		log.Fatal(err)
	}

	setupLogging(cfg)
	log.WithFields(logrus.Fields{
		"maze":      cfg.MazeFile,
		"algorithm": cfg.Algorithm,
		"animate":   cfg.Animate,
		"dotenv":    dotenv,
	}).Debug("config")

	if err := newApp(cfg, os.Stdout).run(ctx); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilejump/assets"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/logger"
	"github.com/automoto/tilejump/loop"
	"github.com/automoto/tilejump/sim"
	"github.com/automoto/tilejump/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type options struct {
	level      string
	tickRate   int
	broadphase bool
	hold       uint64
	logFile    string
	status     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "", "Embedded level name or .tmx path (empty = built-in map)")
	flag.IntVar(&opts.tickRate, "tickrate", cfg.C.TickRate, "Simulation steps per second")
	flag.BoolVar(&opts.broadphase, "broadphase", cfg.Debug.Broadphase, "Resolve only against tiles near the actor")
	flag.Uint64Var(&opts.hold, "hold", terminal.DefaultHoldFrames, "Frames a key stays held without a repeat event")
	flag.StringVar(&opts.logFile, "logfile", "", "Write logs to this file (the terminal is busy drawing)")
	flag.BoolVar(&opts.status, "status", cfg.Debug.ShowHUD, "Show actor state on the top row")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "termjump: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	log := logger.New()
	log.SetOutput(io.Discard)
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	m, tileSize, err := assets.LoadMap(opts.level, cfg.C.TileSize)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Two columns per tile keeps tiles roughly square on screen.
	renderer := terminal.NewRenderer(screen, float64(tileSize)/2, float64(tileSize))

	settings := sim.DefaultSettings()
	settings.TileSize = tileSize
	settings.Broadphase = opts.broadphase
	settings.ViewportWidth, settings.ViewportHeight = renderer.ViewportFor(screen.Size())

	s, err := sim.New(settings, m, log)
	if err != nil {
		return err
	}

	host := terminal.NewHost(s, screen, renderer, terminal.NewKeys(opts.hold), log)
	host.ShowStatus = opts.status

	gameLoop, err := loop.NewGameLoop(host, opts.tickRate, log)
	if err != nil {
		return err
	}
	gameLoop.AfterStep = host.Draw
	host.OnQuit = gameLoop.Stop

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go host.Poll()
	defer host.Close()

	log.WithFields(logrus.Fields{
		"level":    opts.level,
		"tickRate": opts.tickRate,
		"viewport": fmt.Sprintf("%dx%d", settings.ViewportWidth, settings.ViewportHeight),
	}).Info("Starting terminal host")

	err = gameLoop.Run(ctx)
	a := s.Actor()
	log.WithFields(logrus.Fields{"steps": s.Steps(), "x": a.X, "y": a.Y}).Info("Terminal host stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

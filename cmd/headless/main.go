package main

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/automoto/tilejump/assets"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/logger"
	"github.com/automoto/tilejump/loop"
	"github.com/automoto/tilejump/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	steps := flag.Int("steps", 600, "Number of simulation steps to run")
	tickRate := flag.Int("tickrate", 0, "Steps per second (0 = run as fast as possible)")
	broadphase := flag.Bool("broadphase", cfg.Debug.Broadphase, "Resolve only against tiles near the actor")
	level := flag.String("level", "", "Embedded level name or .tmx path (empty = built-in map)")
	jumpAt := flag.Int("jump-at", -1, "Press jump before this step (-1 = never)")
	move := flag.String("move", "", "Hold a direction for the whole run: left or right")
	flag.Parse()

	log := logger.New()

	m, tileSize, err := assets.LoadMap(*level, cfg.C.TileSize)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	settings := sim.DefaultSettings()
	settings.TileSize = tileSize
	settings.Broadphase = *broadphase

	s, err := sim.New(settings, m, log)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	sc := &script{sim: s, log: log, steps: *steps, jumpAt: *jumpAt}
	switch *move {
	case "":
	case "left":
		sc.hold = cfg.ActionMoveLeft
	case "right":
		sc.hold = cfg.ActionMoveRight
	default:
		log.Fatalf("Unknown -move %q (want left or right)", *move)
	}

	log.WithFields(logrus.Fields{
		"steps":      *steps,
		"tickRate":   *tickRate,
		"broadphase": *broadphase,
		"tiles":      m.Len(),
	}).Info("Starting headless run")

	if *tickRate <= 0 {
		loop.RunN(sc, *steps)
	} else if err := runPaced(sc, *tickRate, log); err != nil {
		log.Fatalf("Game loop error: %v", err)
	}

	a := s.Actor()
	camX, camY := s.Camera()
	log.WithFields(logrus.Fields{
		"steps":    s.Steps(),
		"x":        a.X,
		"y":        a.Y,
		"vx":       a.SpeedX,
		"vy":       a.SpeedY,
		"grounded": a.Grounded,
		"cameraX":  camX,
		"cameraY":  camY,
	}).Info("Final actor state")
}

// runPaced drives the script from a ticker until it finishes or the
// process is interrupted.
func runPaced(sc *script, tickRate int, log logrus.FieldLogger) error {
	gameLoop, err := loop.NewGameLoop(sc, tickRate, log)
	if err != nil {
		return err
	}
	sc.onDone = gameLoop.Stop

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = gameLoop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Interrupted")
		return nil
	}
	return err
}

// script feeds scripted input to a simulation and steps it.
type script struct {
	sim    *sim.Simulation
	log    logrus.FieldLogger
	steps  int
	jumpAt int
	hold   cfg.ActionID
	onDone func()

	done int
}

func (sc *script) RunOnce() {
	if sc.done >= sc.steps {
		return
	}
	if sc.done == 0 && sc.hold != cfg.ActionNone {
		sc.sim.Press(sc.hold)
	}
	switch sc.done {
	case sc.jumpAt:
		sc.sim.Press(cfg.ActionJump)
	case sc.jumpAt + 1:
		sc.sim.Release(cfg.ActionJump)
	}

	sc.sim.RunOnce()
	sc.done++

	a := sc.sim.Actor()
	sc.log.WithFields(logrus.Fields{
		"step":     sc.done,
		"x":        a.X,
		"y":        a.Y,
		"vy":       a.SpeedY,
		"grounded": a.Grounded,
	}).Debug("step")

	if sc.done == sc.steps && sc.onDone != nil {
		sc.onDone()
	}
}

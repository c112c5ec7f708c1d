// Package loop drives a Runner at a cadence chosen by the host.
package loop

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// Runner advances a simulation by exactly one step.
type Runner interface {
	RunOnce()
}

// RunN calls RunOnce n times back to back. Test harnesses and the headless
// host use it when wall-clock pacing does not matter.
func RunN(r Runner, n int) {
	for i := 0; i < n; i++ {
		r.RunOnce()
	}
}

// GameLoop calls RunOnce on a fixed ticker until stopped.
type GameLoop struct {
	runner   Runner
	tickRate int
	log      logrus.FieldLogger
	stopChan chan struct{}

	// AfterStep, if set, runs on the loop goroutine after every step.
	AfterStep func()
}

func NewGameLoop(runner Runner, tickRate int, log logrus.FieldLogger) (*GameLoop, error) {
	if tickRate <= 0 {
		return nil, ErrInvalidTickRate
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &GameLoop{
		runner:   runner,
		tickRate: tickRate,
		log:      log,
		stopChan: make(chan struct{}),
	}, nil
}

// Run blocks, stepping once per tick, until ctx is done or Stop is called.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Debugf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			g.log.Debug("Game loop stopped")
			return ctx.Err()
		case <-g.stopChan:
			g.log.Debug("Game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It must be called at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.runner.RunOnce()
	if g.AfterStep != nil {
		g.AfterStep()
	}
}

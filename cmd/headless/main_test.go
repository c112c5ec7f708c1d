package main

import (
	"io"
	"testing"

	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/logger"
	"github.com/automoto/tilejump/loop"
	"github.com/automoto/tilejump/shared/leveldata"
	"github.com/automoto/tilejump/sim"
)

func newScript(t *testing.T, steps, jumpAt int) *script {
	t.Helper()
	log := logger.NewWithOutput(io.Discard, "warn", "")
	s, err := sim.New(sim.DefaultSettings(), leveldata.DefaultMap(), log)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return &script{sim: s, log: log, steps: steps, jumpAt: jumpAt}
}

func TestScriptStopsAtStepCount(t *testing.T) {
	sc := newScript(t, 10, -1)
	finished := 0
	sc.onDone = func() { finished++ }

	loop.RunN(sc, 25)

	if got := sc.sim.Steps(); got != 10 {
		t.Errorf("Steps() = %d, want 10", got)
	}
	if finished != 1 {
		t.Errorf("onDone called %d times, want 1", finished)
	}
}

func TestScriptJumpFromRest(t *testing.T) {
	// 40 steps is enough to land on the floor at y=260.
	sc := newScript(t, 41, 40)
	loop.RunN(sc, 41)

	a := sc.sim.Actor()
	if a.SpeedY >= 0 {
		t.Errorf("vy = %v after jump step, want rising", a.SpeedY)
	}
	if !a.Grounded {
		t.Error("jump did not set the jump lock")
	}
}

func TestScriptHoldsDirection(t *testing.T) {
	sc := newScript(t, 5, -1)
	sc.hold = cfg.ActionMoveRight
	loop.RunN(sc, 5)

	if a := sc.sim.Actor(); a.X != 15 {
		t.Errorf("x = %v after 5 steps right, want 15", a.X)
	}
}

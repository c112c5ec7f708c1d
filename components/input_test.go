package components

import (
	"testing"

	cfg "github.com/automoto/tilejump/config"
)

func TestInputLatches(t *testing.T) {
	var in InputData

	in.Press(cfg.ActionJump)
	in.Press(cfg.ActionJump) // key repeat while held is not a new press
	if !in.Held(cfg.ActionJump) {
		t.Fatal("jump should be held after Press")
	}
	pressed, released := in.Consume(cfg.ActionJump)
	if !pressed || released {
		t.Errorf("first consume = (%v,%v), want (true,false)", pressed, released)
	}
	pressed, released = in.Consume(cfg.ActionJump)
	if pressed || released {
		t.Errorf("second consume = (%v,%v), want nothing latched", pressed, released)
	}

	in.Release(cfg.ActionJump)
	in.Release(cfg.ActionJump)
	if in.Held(cfg.ActionJump) {
		t.Error("jump should not be held after Release")
	}
	if pressed, released = in.Consume(cfg.ActionJump); pressed || !released {
		t.Errorf("after release consume = (%v,%v), want (false,true)", pressed, released)
	}

	// Releasing a key that was never down latches nothing.
	in.Release(cfg.ActionMoveLeft)
	if pressed, released = in.Consume(cfg.ActionMoveLeft); pressed || released {
		t.Errorf("stray release latched (%v,%v)", pressed, released)
	}
}

func TestNewActor(t *testing.T) {
	a := NewActor(4, 8, 20, 40)
	want := ActorData{X: 4, Y: 8, Width: 20, Height: 40}
	if a != want {
		t.Errorf("NewActor = %+v, want %+v", a, want)
	}
	if a.Right() != 24 || a.Bottom() != 48 {
		t.Errorf("edges = (%v,%v), want (24,48)", a.Right(), a.Bottom())
	}
}

func TestActionString(t *testing.T) {
	if cfg.ActionJump.String() != "jump" || cfg.ActionID(99).String() != "unknown" {
		t.Errorf("unexpected action names %q %q", cfg.ActionJump, cfg.ActionID(99))
	}
}

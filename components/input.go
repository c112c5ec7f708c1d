package components

import (
	cfg "github.com/automoto/tilejump/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed since the last step
	JustReleased bool // Released since the last step
}

// InputData is written by host event callbacks and consumed at the start of
// each step. Press and release are latched so a tap shorter than a frame is
// still seen by the simulation.
type InputData struct {
	Actions [cfg.ActionCount]ActionState
}

// Press records a key-down for action.
func (in *InputData) Press(action cfg.ActionID) {
	s := &in.Actions[action]
	if !s.Pressed {
		s.JustPressed = true
	}
	s.Pressed = true
}

// Release records a key-up for action.
func (in *InputData) Release(action cfg.ActionID) {
	s := &in.Actions[action]
	if s.Pressed {
		s.JustReleased = true
	}
	s.Pressed = false
}

// Held reports whether action is currently down.
func (in *InputData) Held(action cfg.ActionID) bool {
	return in.Actions[action].Pressed
}

// Consume returns the latched edges for action and clears them.
func (in *InputData) Consume(action cfg.ActionID) (pressed, released bool) {
	s := &in.Actions[action]
	pressed, released = s.JustPressed, s.JustReleased
	s.JustPressed, s.JustReleased = false, false
	return pressed, released
}

var Input = donburi.NewComponentType[InputData]()

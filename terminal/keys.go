package terminal

import (
	cfg "github.com/automoto/tilejump/config"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldFrames covers the usual delay before a terminal starts
// auto-repeating a held key, at 60 steps per second.
const DefaultHoldFrames = 30

// Sink receives action edges.
type Sink interface {
	Press(action cfg.ActionID)
	Release(action cfg.ActionID)
}

// ActionFor maps a key event to an action. Arrow keys move and jump; space
// jumps too.
func ActionFor(ev *tcell.EventKey) cfg.ActionID {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft
	case tcell.KeyRight:
		return cfg.ActionMoveRight
	case tcell.KeyUp:
		return cfg.ActionJump
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return cfg.ActionJump
		}
	}
	return cfg.ActionNone
}

// Keys turns key-down events into press and release edges. Terminals never
// report key-up, so an action is released once no event for it has arrived
// within HoldFrames frames. Auto-repeat keeps a held key alive.
type Keys struct {
	HoldFrames uint64

	frame    uint64
	held     [cfg.ActionCount]bool
	lastSeen [cfg.ActionCount]uint64
}

func NewKeys(holdFrames uint64) *Keys {
	return &Keys{HoldFrames: holdFrames}
}

// Handle records a key event. It reports false for keys that map to no
// action.
func (k *Keys) Handle(ev *tcell.EventKey, sink Sink) bool {
	action := ActionFor(ev)
	if action == cfg.ActionNone {
		return false
	}
	if !k.held[action] {
		k.held[action] = true
		sink.Press(action)
	}
	k.lastSeen[action] = k.frame
	return true
}

// Tick advances one frame and releases actions that went quiet.
func (k *Keys) Tick(sink Sink) {
	k.frame++
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if k.held[a] && k.frame-k.lastSeen[a] > k.HoldFrames {
			k.held[a] = false
			sink.Release(a)
		}
	}
}

func (k *Keys) Held(action cfg.ActionID) bool {
	return k.held[action]
}

package scenes

import (
	cfg "github.com/automoto/tilejump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps logical actions to keyboard keys
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight},
	cfg.ActionJump:      {ebiten.KeyArrowUp, ebiten.KeySpace},
}

// InputSink receives key edges for logical actions
type InputSink interface {
	Press(action cfg.ActionID)
	Release(action cfg.ActionID)
}

// pollKeys forwards this tick's key edges to sink. An action with several
// keys is released only once none of them is held.
func pollKeys(sink InputSink) {
	for action, keys := range KeyBindings {
		var pressed, released, held bool
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				pressed = true
			}
			if inpututil.IsKeyJustReleased(key) {
				released = true
			}
			if ebiten.IsKeyPressed(key) {
				held = true
			}
		}

		if pressed {
			sink.Press(action)
		}
		if released && !held {
			sink.Release(action)
		}
	}
}

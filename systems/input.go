package systems

import (
	"github.com/automoto/tilejump/components"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/tags"
	"github.com/yohamta/donburi"
)

// UpdateInput turns the key edges latched since the last step into velocity
// changes. Must run first in the step.
func UpdateInput(w donburi.World) {
	tags.Actor.Each(w, func(e *donburi.Entry) {
		applyInput(
			components.Actor.Get(e),
			components.Physics.Get(e),
			components.Input.Get(e),
		)
	})
}

type moveEdge struct {
	pressed, released, held bool
	speed                   float64
}

// applyInput replays latched edges as the key events they stand for:
// releases that came before a press first, then presses, then releases of
// keys tapped and let go within the same step. Releasing either move key
// stops horizontal motion even if the other key is still held.
func applyInput(actor *components.ActorData, physics *components.PhysicsData, input *components.InputData) {
	var moves [2]moveEdge
	for i, action := range [2]cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight} {
		pressed, released := input.Consume(action)
		moves[i] = moveEdge{pressed: pressed, released: released, held: input.Held(action)}
	}
	moves[0].speed = -physics.MoveSpeed
	moves[1].speed = physics.MoveSpeed

	for _, m := range moves {
		if m.released && (!m.pressed || m.held) {
			actor.SpeedX = 0
		}
	}
	for _, m := range moves {
		if m.pressed {
			actor.SpeedX = m.speed
		}
	}
	for _, m := range moves {
		if m.pressed && m.released && !m.held {
			actor.SpeedX = 0
		}
	}

	if jump, _ := input.Consume(cfg.ActionJump); jump && !actor.Grounded {
		actor.SpeedY = -physics.JumpSpeed
		actor.Grounded = true // jump lock, cleared by the collision system
	}
}

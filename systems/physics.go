package systems

import (
	"github.com/automoto/tilejump/components"
	"github.com/automoto/tilejump/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies gravity and integrates position. Gravity is added
// even when grounded; the previous step's landing zeroed the vertical speed,
// so a resting actor sinks by exactly one gravity step and is pushed back out.
func UpdatePhysics(w donburi.World) {
	tags.Actor.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		physics := components.Physics.Get(e)

		actor.SpeedY += physics.Gravity
		actor.X += actor.SpeedX
		actor.Y += actor.SpeedY
	})
}

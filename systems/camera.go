package systems

import (
	"math"

	"github.com/automoto/tilejump/components"
	"github.com/automoto/tilejump/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera centers the viewport on the actor without going past the map
// origin. It runs before physics, so it follows last step's position.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	actorEntry, ok := tags.Actor.First(w)
	if !ok {
		return // no actor, nothing to follow
	}
	actor := components.Actor.Get(actorEntry)

	camera.Position.X, camera.Position.Y = CameraPosition(actor, camera.Width, camera.Height)
}

// CameraPosition returns the top left of a viewport centered on the actor,
// clamped to be non-negative.
func CameraPosition(actor *components.ActorData, viewportW, viewportH float64) (x, y float64) {
	x = math.Max(0, actor.X-viewportW/2+actor.Width/2)
	y = math.Max(0, actor.Y-viewportH/2+actor.Height/2)
	return x, y
}

package factory

import (
	"github.com/automoto/tilejump/archetypes"
	"github.com/automoto/tilejump/components"
	"github.com/yohamta/donburi"
)

// CreateActor spawns the controllable actor with its input state.
func CreateActor(w donburi.World, x, y, width, height float64, physics components.PhysicsData) *donburi.Entry {
	actor := archetypes.Actor.Spawn(w)

	components.Actor.SetValue(actor, components.NewActor(x, y, width, height))
	components.Physics.SetValue(actor, physics)
	components.Input.SetValue(actor, components.InputData{})

	return actor
}

package components

import (
	"github.com/yohamta/donburi"
)

// ActorData is the single controllable kinematic body. Position is the top
// left corner in pixels.
type ActorData struct {
	X, Y          float64
	Width, Height float64
	SpeedX        float64
	SpeedY        float64

	// Grounded is set by landing on a tile and also by a jump, where it acts
	// as a lock against a second jump. Cleared by hitting a ceiling or by the
	// ledge check in the collision system.
	Grounded bool
}

// NewActor returns an actor at rest, not grounded.
func NewActor(x, y, width, height float64) ActorData {
	return ActorData{X: x, Y: y, Width: width, Height: height}
}

func (a *ActorData) Right() float64  { return a.X + a.Width }
func (a *ActorData) Bottom() float64 { return a.Y + a.Height }

var Actor = donburi.NewComponentType[ActorData]()

// PhysicsData holds the per-actor tuning applied by the input and physics
// systems.
type PhysicsData struct {
	Gravity   float64
	MoveSpeed float64
	JumpSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

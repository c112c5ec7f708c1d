package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top left of the viewport in world pixels. It is derived
// from the actor every step and never negative.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()

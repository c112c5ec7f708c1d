package factory

import (
	"github.com/automoto/tilejump/archetypes"
	"github.com/automoto/tilejump/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, viewportW, viewportH int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Width:  float64(viewportW),
		Height: float64(viewportH),
	})
	return camera
}

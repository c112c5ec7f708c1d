package systems

import (
	"github.com/automoto/tilejump/components"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/render"
	"github.com/automoto/tilejump/tags"
	"github.com/yohamta/donburi"
)

// BuildFrame collects screen-space rectangles for every tile and the actor.
// Tiles keep map order so later tiles draw over earlier ones.
func BuildFrame(w donburi.World, colors cfg.ColorConfig, f *render.Frame) {
	f.Tiles = f.Tiles[:0]

	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	f.CameraX, f.CameraY = camera.Position.X, camera.Position.Y
	f.Width, f.Height = int(camera.Width), int(camera.Height)

	if levelEntry, ok := components.Level.First(w); ok {
		level := components.Level.Get(levelEntry)
		ts := float64(level.TileSize)
		for tile := range level.Map.Tiles() {
			c, ok := colors.Variants[tile.Variant]
			if !ok {
				c = colors.Unknown
			}
			f.Tiles = append(f.Tiles, render.Rect{
				X:     float64(tile.X)*ts - f.CameraX,
				Y:     float64(tile.Y)*ts - f.CameraY,
				W:     ts,
				H:     ts,
				Color: c,
			})
		}
	}

	if actorEntry, ok := tags.Actor.First(w); ok {
		actor := components.Actor.Get(actorEntry)
		f.Actor = render.Rect{
			X:     actor.X - f.CameraX,
			Y:     actor.Y - f.CameraY,
			W:     actor.Width,
			H:     actor.Height,
			Color: colors.Actor,
		}
	}
}

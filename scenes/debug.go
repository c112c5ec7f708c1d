package scenes

import (
	"image/color"

	"github.com/automoto/tilejump/sim"
	"github.com/automoto/tilejump/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var contactColors = map[systems.Contact]color.RGBA{
	systems.ContactTop:    {0, 255, 255, 255},
	systems.ContactBottom: {255, 0, 0, 255},
	systems.ContactLeft:   {255, 165, 0, 255},
	systems.ContactRight:  {255, 255, 0, 255},
}

// DrawDebug outlines the actor and every tile that pushed it in the last
// step, colored by the side it was pushed from.
func DrawDebug(s *sim.Simulation, screen *ebiten.Image) {
	camX, camY := s.Camera()
	ts := float64(s.Settings().TileSize)

	for _, c := range s.Contacts() {
		x := float64(c.Tile.X)*ts - camX
		y := float64(c.Tile.Y)*ts - camY
		outline(screen, x, y, ts, ts, contactColors[c.Contact])
	}

	a := s.Actor()
	outline(screen, a.X-camX, a.Y-camY, a.Width, a.Height, color.RGBA{255, 255, 255, 255})
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

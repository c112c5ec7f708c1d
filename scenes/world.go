package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilejump/render"
	"github.com/automoto/tilejump/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// PlatformerScene drives a simulation from ebitengine's update loop, one
// step per tick, and draws its frame.
type PlatformerScene struct {
	sim     *sim.Simulation
	log     logrus.FieldLogger
	showHUD bool
	debug   bool
	paused  bool
	restart func() (*sim.Simulation, error)
}

// NewPlatformerScene wraps a simulation. restart, if not nil, builds a fresh
// simulation when R is pressed.
func NewPlatformerScene(s *sim.Simulation, restart func() (*sim.Simulation, error), showHUD bool, log logrus.FieldLogger) *PlatformerScene {
	return &PlatformerScene{sim: s, restart: restart, showHUD: showHUD, log: log}
}

func (ps *PlatformerScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && ps.restart != nil {
		s, err := ps.restart()
		if err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		ps.log.Info("Simulation restarted")
		ps.sim = s
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ps.showHUD = !ps.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		ps.debug = !ps.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ps.paused = !ps.paused
	}

	// Edges seen while paused are latched and applied on the next step.
	pollKeys(ps.sim)
	if ps.paused {
		return nil
	}
	ps.sim.RunOnce()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.White)

	if err := ps.sim.Emit(&screenRenderer{screen: screen}); err != nil {
		ps.log.WithError(err).Warn("Draw failed")
	}

	if ps.debug {
		DrawDebug(ps.sim, screen)
	}

	if ps.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", screen.Bounds().Dx()/2-18, screen.Bounds().Dy()/2)
	}

	if ps.showHUD {
		a := ps.sim.Actor()
		camX, camY := ps.sim.Camera()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"pos %.1f,%.1f  vel %.1f,%.1f  grounded %v\ncam %.1f,%.1f  step %d",
			a.X, a.Y, a.SpeedX, a.SpeedY, a.Grounded, camX, camY, ps.sim.Steps()), 4, 4)
	}
}

// screenRenderer fills each rectangle of a frame onto an ebiten image.
type screenRenderer struct {
	screen *ebiten.Image
}

func (r *screenRenderer) Render(f *render.Frame) error {
	w, h := float64(f.Width), float64(f.Height)
	for _, t := range f.Tiles {
		// Viewport culling
		if t.X+t.W < 0 || t.X > w || t.Y+t.H < 0 || t.Y > h {
			continue
		}
		fillRect(r.screen, t)
	}
	fillRect(r.screen, f.Actor)
	return nil
}

func fillRect(dst *ebiten.Image, r render.Rect) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
}

// Package sim owns one running simulation: the world holding the actor,
// camera and level, and the fixed order the systems run in each step.
package sim

import (
	"fmt"

	"github.com/automoto/tilejump/components"
	cfg "github.com/automoto/tilejump/config"
	"github.com/automoto/tilejump/render"
	"github.com/automoto/tilejump/systems"
	"github.com/automoto/tilejump/systems/factory"
	"github.com/automoto/tilejump/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Simulation is the context passed around instead of a global game object.
// It is not safe for concurrent use; hosts call every method from the
// goroutine that drives RunOnce.
type Simulation struct {
	world    donburi.World
	actor    *donburi.Entry
	camera   *donburi.Entry
	settings Settings
	log      logrus.FieldLogger
	frame    render.Frame
	steps    uint64
	contacts []systems.TileContact
}

// New validates s and builds a world with one level, camera and actor.
func New(s Settings, m *tilemap.TileMap, log logrus.FieldLogger) (*Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	if m == nil {
		m = tilemap.New()
	}

	w := donburi.NewWorld()
	factory.CreateLevel(w, m, s.TileSize, s.Broadphase)
	camera := factory.CreateCamera(w, s.ViewportWidth, s.ViewportHeight)
	actor := factory.CreateActor(w, s.SpawnX, s.SpawnY, s.ActorWidth, s.ActorHeight, components.PhysicsData{
		Gravity:   s.Gravity,
		MoveSpeed: s.MoveSpeed,
		JumpSpeed: s.JumpSpeed,
	})

	log.WithFields(logrus.Fields{
		"tiles":      m.Len(),
		"tileSize":   s.TileSize,
		"broadphase": s.Broadphase,
	}).Debug("simulation created")

	return &Simulation{
		world:    w,
		actor:    actor,
		camera:   camera,
		settings: s,
		log:      log,
	}, nil
}

// RunOnce advances one frame: input, camera, gravity and integration, then
// collision against the tile map.
func (s *Simulation) RunOnce() {
	systems.UpdateInput(s.world)
	systems.UpdateCamera(s.world)
	systems.UpdatePhysics(s.world)
	s.contacts = systems.UpdateCollisions(s.world)
	s.steps++

	for _, c := range s.contacts {
		s.log.WithFields(logrus.Fields{
			"step":    s.steps,
			"tile":    c.Index,
			"tileX":   c.Tile.X,
			"tileY":   c.Tile.Y,
			"contact": c.Contact.String(),
		}).Trace("resolved contact")
	}
}

// Press and Release are what host key callbacks call.
func (s *Simulation) Press(action cfg.ActionID) {
	components.Input.Get(s.actor).Press(action)
}

func (s *Simulation) Release(action cfg.ActionID) {
	components.Input.Get(s.actor).Release(action)
}

// Actor returns a copy of the actor's current state.
func (s *Simulation) Actor() components.ActorData {
	return *components.Actor.Get(s.actor)
}

// SetActor overwrites the actor state, for hosts that respawn or tests that
// start from a given pose.
func (s *Simulation) SetActor(a components.ActorData) {
	components.Actor.SetValue(s.actor, a)
}

// Camera returns the camera offset computed in the last step.
func (s *Simulation) Camera() (x, y float64) {
	c := components.Camera.Get(s.camera)
	return c.Position.X, c.Position.Y
}

// Contacts lists the tiles that pushed the actor in the last step, in the
// order they were resolved.
func (s *Simulation) Contacts() []systems.TileContact {
	return s.contacts
}

// SetViewport resizes the area the camera centres on, for hosts whose
// window or terminal changes size. It takes effect at the next step.
func (s *Simulation) SetViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %dx%d: %w", width, height, ErrInvalidViewport)
	}
	c := components.Camera.Get(s.camera)
	c.Width, c.Height = float64(width), float64(height)
	s.settings.ViewportWidth, s.settings.ViewportHeight = width, height
	return nil
}

// Steps returns how many times RunOnce has completed.
func (s *Simulation) Steps() uint64 {
	return s.steps
}

func (s *Simulation) Settings() Settings {
	return s.settings
}

// Frame returns the draw list for the current state. The returned frame is
// reused by the next call.
func (s *Simulation) Frame() *render.Frame {
	systems.BuildFrame(s.world, s.settings.Colors, &s.frame)
	return &s.frame
}

// Emit builds the frame and hands it to r.
func (s *Simulation) Emit(r render.Renderer) error {
	return r.Render(s.Frame())
}

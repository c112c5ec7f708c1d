package sim

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/tilejump/config"
)

var (
	ErrInvalidTileSize  = errors.New("tile size must be positive")
	ErrInvalidActorSize = errors.New("actor size must be positive")
	ErrInvalidViewport  = errors.New("viewport must be positive")
)

// Settings is the explicit configuration of one simulation. It is copied at
// construction; changing the config globals afterwards has no effect.
type Settings struct {
	TileSize int

	ViewportWidth  int
	ViewportHeight int

	SpawnX, SpawnY float64
	ActorWidth     float64
	ActorHeight    float64

	Gravity   float64
	MoveSpeed float64
	JumpSpeed float64

	Broadphase bool
	Colors     cfg.ColorConfig
}

// DefaultSettings builds Settings from the config package defaults.
func DefaultSettings() Settings {
	ts := cfg.C.TileSize
	return Settings{
		TileSize:       ts,
		ViewportWidth:  cfg.C.Width,
		ViewportHeight: cfg.C.Height,
		SpawnX:         cfg.Actor.SpawnX,
		SpawnY:         cfg.Actor.SpawnY,
		ActorWidth:     cfg.Actor.WidthTiles * float64(ts),
		ActorHeight:    cfg.Actor.HeightTiles * float64(ts),
		Gravity:        cfg.Physics.Gravity,
		MoveSpeed:      cfg.Physics.MoveSpeed,
		JumpSpeed:      cfg.Physics.JumpSpeed,
		Broadphase:     cfg.Debug.Broadphase,
		Colors:         cfg.Colors,
	}
}

func (s Settings) Validate() error {
	if s.TileSize <= 0 {
		return fmt.Errorf("tile size %d: %w", s.TileSize, ErrInvalidTileSize)
	}
	if s.ActorWidth <= 0 || s.ActorHeight <= 0 {
		return fmt.Errorf("actor %gx%g: %w", s.ActorWidth, s.ActorHeight, ErrInvalidActorSize)
	}
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return fmt.Errorf("viewport %dx%d: %w", s.ViewportWidth, s.ViewportHeight, ErrInvalidViewport)
	}
	return nil
}

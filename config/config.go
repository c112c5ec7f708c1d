package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity   float64 // Added to vertical speed every step, grounded or not
	MoveSpeed float64 // Horizontal speed while a move key is held
	JumpSpeed float64 // Upward speed applied by a jump
}

// ActorConfig contains the controllable actor's spawn and collision box
type ActorConfig struct {
	SpawnX float64
	SpawnY float64

	// Dimensions, in tiles so they follow TileSize
	WidthTiles  float64
	HeightTiles float64
}

// ColorConfig maps tile variants to fill colors
type ColorConfig struct {
	Variants map[string]color.RGBA
	Actor    color.RGBA
	Unknown  color.RGBA // Variants missing from the map
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Broadphase bool // Resolve only against tiles near the actor
	ShowHUD    bool // Draw actor state in the window host
}

// Config holds general runtime configuration
type Config struct {
	Width    int // Viewport width in pixels
	Height   int // Viewport height in pixels
	TileSize int
	TickRate int // Steps per second for ticker-driven hosts
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Actor ActorConfig
var Colors ColorConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    600,
		Height:   400,
		TileSize: 20,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity:   0.5,
		MoveSpeed: 3.0,
		JumpSpeed: 10.0,
	}

	Actor = ActorConfig{
		SpawnX:      0,
		SpawnY:      0,
		WidthTiles:  1,
		HeightTiles: 2,
	}

	Colors = ColorConfig{
		Variants: map[string]color.RGBA{
			"grass":    colornames.Lime, // #00FF00
			"platform": colornames.Gray, // #808080
		},
		Actor:   colornames.Blue,
		Unknown: colornames.Magenta,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Broadphase: false,
		ShowHUD:    true,
	}
}

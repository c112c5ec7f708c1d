// Package render describes what a host draws after each step. It carries no
// drawing code itself.
package render

import (
	"image/color"
)

// Rect is a filled rectangle in screen pixels (world minus camera).
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Frame is everything a host needs to draw one step.
type Frame struct {
	Tiles   []Rect // Insertion order of the tile map
	Actor   Rect
	CameraX float64
	CameraY float64
	Width   int // Viewport size
	Height  int
}

// Renderer consumes one frame per step.
type Renderer interface {
	Render(f *Frame) error
}

// Package tilemap holds the static tile grid the actor collides against.
package tilemap

import "image"

// Kind tells whether a tile takes part in collision.
type Kind string

const (
	KindNone      Kind = ""
	KindCollision Kind = "collision"
)

// Collidable reports whether tiles of this kind block the actor.
func (k Kind) Collidable() bool {
	return k == KindCollision
}

// Tile is one grid cell. Coordinates are in cells, not pixels.
type Tile struct {
	X, Y    int
	Variant string
	Kind    Kind
}

// Rect returns the tile's pixel box [X*ts, (X+1)*ts) x [Y*ts, (Y+1)*ts).
func (t Tile) Rect(tileSize int) image.Rectangle {
	return image.Rect(t.X*tileSize, t.Y*tileSize, (t.X+1)*tileSize, (t.Y+1)*tileSize)
}

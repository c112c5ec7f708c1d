// Package leveldata builds tile maps: the built-in default layout and Tiled
// TMX files. It has no dependencies on ebitengine or donburi.
package leveldata

import "github.com/automoto/tilejump/tilemap"

// Tile properties read from a TMX tileset
const (
	PropVariant = "variant"
	PropKind    = "kind"
)

// Level is a loaded tile map plus the grid it was authored on.
type Level struct {
	Name     string
	Map      *tilemap.TileMap
	TileSize int
	Width    int // in tiles
	Height   int // in tiles
}

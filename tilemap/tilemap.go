package tilemap

import (
	"image"
	"iter"
)

// TileMap is an append-only, ordered list of tiles. Order only matters for
// drawing and for the order collisions are resolved in.
type TileMap struct {
	tiles []Tile
}

func New() *TileMap {
	return &TileMap{}
}

// AddTile appends a tile. Duplicate positions are allowed.
func (m *TileMap) AddTile(x, y int, variant string, kind Kind) {
	m.tiles = append(m.tiles, Tile{X: x, Y: y, Variant: variant, Kind: kind})
}

// Tiles yields every tile in insertion order. Each call starts over.
func (m *TileMap) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range m.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// At returns the i-th tile in insertion order.
func (m *TileMap) At(i int) Tile {
	return m.tiles[i]
}

func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Bounds returns the pixel rectangle covering every tile, or an empty
// rectangle for an empty map.
func (m *TileMap) Bounds(tileSize int) image.Rectangle {
	var r image.Rectangle
	for i, t := range m.tiles {
		if i == 0 {
			r = t.Rect(tileSize)
			continue
		}
		r = r.Union(t.Rect(tileSize))
	}
	return r
}

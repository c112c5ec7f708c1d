package tilemap

import (
	"image"
	"slices"

	"github.com/solarlune/resolv"
)

// Resolv tags used by the index
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)

// Index is a broadphase over the collidable tiles of a TileMap. Each tile is
// a resolv object whose Data is its position in the map, so candidates can be
// handed back in insertion order.
type Index struct {
	space    *resolv.Space
	probe    *resolv.Object
	origin   image.Point
	tileSize int
	rows     map[int][]int // grid row -> collidable tile indices, ascending
}

// NewIndex builds a resolv space one cell larger than the map on every side
// and adds a rectangle per collidable tile.
func NewIndex(m *TileMap, tileSize int) *Index {
	bounds := m.Bounds(tileSize).Inset(-tileSize)

	space := resolv.NewSpace(bounds.Dx(), bounds.Dy(), tileSize, tileSize)
	rows := make(map[int][]int)
	ts := float64(tileSize)
	for i, t := range m.tiles {
		if !t.Kind.Collidable() {
			continue
		}
		rows[t.Y] = append(rows[t.Y], i)
		r := t.Rect(tileSize).Sub(bounds.Min)
		obj := resolv.NewObject(float64(r.Min.X), float64(r.Min.Y), ts, ts, ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, ts, ts))
		obj.Data = i // Link back to insertion order
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, ts, ts, ResolvProbe)
	space.Add(probe)

	return &Index{
		space:    space,
		probe:    probe,
		origin:   bounds.Min,
		tileSize: tileSize,
		rows:     rows,
	}
}

// Row returns the indices of the collidable tiles in grid row y, in
// insertion order. The slice is shared and must not be modified.
func (ix *Index) Row(y int) []int {
	return ix.rows[y]
}

// Candidates returns, in insertion order, the indices of collidable tiles
// sharing a grid cell with the box grown by margin on every side.
func (ix *Index) Candidates(x, y, w, h, margin float64) []int {
	ix.probe.X = x - margin - float64(ix.origin.X)
	ix.probe.Y = y - margin - float64(ix.origin.Y)
	ix.probe.W = w + 2*margin
	ix.probe.H = h + 2*margin
	ix.probe.Update()

	check := ix.probe.Check(0, 0, ResolvSolid)
	if check == nil {
		return nil
	}

	solids := check.ObjectsByTags(ResolvSolid)
	out := make([]int, 0, len(solids))
	for _, obj := range solids {
		if i, ok := obj.Data.(int); ok {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the number of indexed tiles.
func (ix *Index) Len() int {
	n := 0
	for _, obj := range ix.space.Objects() {
		if obj.HasTags(ResolvSolid) {
			n++
		}
	}
	return n
}

package leveldata

import "github.com/automoto/tilejump/tilemap"

// GenerateDefault adds the built-in layout to m: a grass floor along row 15
// (with one duplicate tile at x=10), a floating platform at (5,10) and two
// platform columns at x=10 and x=15 spanning rows 12 down to 1.
func GenerateDefault(m *tilemap.TileMap) {
	m.AddTile(10, 15, "grass", tilemap.KindCollision)
	m.AddTile(5, 10, "platform", tilemap.KindCollision)
	for i := 0; i < 50; i++ {
		m.AddTile(i, 15, "grass", tilemap.KindCollision)
	}
	for i := 12; i > 0; i-- {
		m.AddTile(10, i, "platform", tilemap.KindCollision)
	}
	for i := 12; i > 0; i-- {
		m.AddTile(15, i, "platform", tilemap.KindCollision)
	}
}

// DefaultMap returns a new map holding the built-in layout.
func DefaultMap() *tilemap.TileMap {
	m := tilemap.New()
	GenerateDefault(m)
	return m
}

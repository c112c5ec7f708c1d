package factory

import (
	"github.com/automoto/tilejump/archetypes"
	"github.com/automoto/tilejump/components"
	"github.com/automoto/tilejump/tilemap"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity. The broadphase index is only built
// when asked for since the default step scans every tile.
func CreateLevel(w donburi.World, m *tilemap.TileMap, tileSize int, broadphase bool) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	levelData := &components.LevelData{
		Map:      m,
		TileSize: tileSize,
	}
	if broadphase {
		levelData.Index = tilemap.NewIndex(m, tileSize)
	}

	components.Level.Set(level, levelData)

	return level
}

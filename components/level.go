package components

import (
	"github.com/automoto/tilejump/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map      *tilemap.TileMap
	TileSize int
	Index    *tilemap.Index // nil unless broadphase is enabled
}

var Level = donburi.NewComponentType[LevelData]()

package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tilejump/tilemap"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into a tile map. Every tile layer is read in
// layer order, row by row, so later layers draw on top. A tile's variant comes from its tileset tile's
// "variant" property (falling back to the tileset name) and its kind from
// "kind", which defaults to collision. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Map:      tilemap.New(),
		TileSize: levelMap.TileWidth,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
	}

	cells := levelMap.Width * levelMap.Height
	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < cells {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				variant := tile.Tileset.Name
				kind := tilemap.KindCollision
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if v := tilesetTile.Properties.GetString(PropVariant); v != "" {
						variant = v
					}
					if k := tilesetTile.Properties.GetString(PropKind); k != "" {
						kind = parseKind(k)
					}
				}

				level.Map.AddTile(x, y, variant, kind)
			}
		}
	}

	return level, nil
}

func parseKind(s string) tilemap.Kind {
	if tilemap.Kind(s) == tilemap.KindCollision {
		return tilemap.KindCollision
	}
	return tilemap.KindNone
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// each one, returning them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

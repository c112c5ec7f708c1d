package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/tilejump/shared/leveldata"
	"github.com/automoto/tilejump/tilemap"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory holding .tmx files, both embedded and on disk.
const LevelsDir = "levels"

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	return names, err
}

// LoadLevel resolves name as a path on disk if it ends in .tmx and exists,
// and otherwise as an embedded level stem like "default".
func LoadLevel(name string) (*leveldata.Level, error) {
	if filepath.Ext(name) == ".tmx" {
		if _, err := os.Stat(name); err == nil {
			return leveldata.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		}
	}

	path := LevelsDir + "/" + name + ".tmx"
	if _, err := fs.Stat(assetFS, path); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return leveldata.LoadLevel(assetFS, path)
}

// LoadMap is LoadLevel for hosts: an empty name yields the built-in layout
// at defaultTileSize.
func LoadMap(name string, defaultTileSize int) (*tilemap.TileMap, int, error) {
	if name == "" {
		return leveldata.DefaultMap(), defaultTileSize, nil
	}
	l, err := LoadLevel(name)
	if err != nil {
		return nil, 0, err
	}
	return l.Map, l.TileSize, nil
}

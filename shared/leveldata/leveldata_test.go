package leveldata

import (
	"os"
	"slices"
	"testing"

	"github.com/automoto/tilejump/tilemap"
)

func TestGenerateDefault(t *testing.T) {
	m := DefaultMap()

	// 2 singles + 50 floor + two columns of 12
	if m.Len() != 76 {
		t.Fatalf("default map has %d tiles, want 76", m.Len())
	}

	first := m.At(0)
	if first != (tilemap.Tile{X: 10, Y: 15, Variant: "grass", Kind: tilemap.KindCollision}) {
		t.Errorf("first tile = %+v", first)
	}
	if got := m.At(1); got.X != 5 || got.Y != 10 || got.Variant != "platform" {
		t.Errorf("second tile = %+v, want platform at (5,10)", got)
	}

	// Columns are added top-down from row 12.
	if got := m.At(52); got.X != 10 || got.Y != 12 {
		t.Errorf("first column tile = %+v, want (10,12)", got)
	}
	if got := m.At(75); got.X != 15 || got.Y != 1 {
		t.Errorf("last tile = %+v, want (15,1)", got)
	}

	for tile := range m.Tiles() {
		if !tile.Kind.Collidable() {
			t.Errorf("tile %+v is not collidable", tile)
		}
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "steps.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "steps" || level.TileSize != 20 || level.Width != 4 || level.Height != 3 {
		t.Errorf("level header = %q %d %dx%d", level.Name, level.TileSize, level.Width, level.Height)
	}

	want := []tilemap.Tile{
		{X: 1, Y: 0, Variant: "cloud", Kind: tilemap.KindNone},
		{X: 3, Y: 0, Variant: "blocks", Kind: tilemap.KindCollision},
		{X: 2, Y: 1, Variant: "platform", Kind: tilemap.KindCollision},
		{X: 0, Y: 2, Variant: "grass", Kind: tilemap.KindCollision},
		{X: 1, Y: 2, Variant: "grass", Kind: tilemap.KindCollision},
		{X: 2, Y: 2, Variant: "grass", Kind: tilemap.KindCollision},
		{X: 3, Y: 2, Variant: "grass", Kind: tilemap.KindCollision},
	}
	got := slices.Collect(level.Map.Tiles())
	if !slices.Equal(got, want) {
		t.Errorf("tiles:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(os.DirFS("testdata"), "nope.tmx"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if !slices.Equal(names, []string{"steps"}) {
		t.Errorf("names = %v", names)
	}
	if levels["steps"] == nil || levels["steps"].Map.Len() != 7 {
		t.Errorf("steps level not loaded: %+v", levels["steps"])
	}

	if _, _, err := LoadAllLevels(os.DirFS("."), "nowhere"); err == nil {
		t.Error("expected an error when no levels exist")
	}
}

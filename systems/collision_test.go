package systems

import (
	"testing"

	"github.com/automoto/tilejump/components"
	"github.com/automoto/tilejump/tilemap"
)

const testTileSize = 20

func solid(x, y int) tilemap.Tile {
	return tilemap.Tile{X: x, Y: y, Variant: "grass", Kind: tilemap.KindCollision}
}

func overlaps(a *components.ActorData, tile tilemap.Tile) bool {
	r := tile.Rect(testTileSize)
	return a.Right() > float64(r.Min.X) && a.X < float64(r.Max.X) &&
		a.Bottom() > float64(r.Min.Y) && a.Y < float64(r.Max.Y)
}

func TestResolveTileContacts(t *testing.T) {
	tests := []struct {
		name    string
		actor   components.ActorData
		tile    tilemap.Tile
		contact Contact
		want    components.ActorData
	}{
		{
			name:    "falling onto a tile lands on top",
			actor:   components.ActorData{X: 0, Y: 262, Width: 20, Height: 40, SpeedY: 5},
			tile:    solid(0, 15),
			contact: ContactTop,
			want:    components.ActorData{X: 0, Y: 260, Width: 20, Height: 40, SpeedY: 0, Grounded: true},
		},
		{
			name:    "rising into a tile hits its bottom",
			actor:   components.ActorData{X: 0, Y: 215, Width: 20, Height: 40, SpeedY: -5, Grounded: true},
			tile:    solid(0, 10),
			contact: ContactBottom,
			want:    components.ActorData{X: 0, Y: 220, Width: 20, Height: 40, SpeedY: 0, Grounded: false},
		},
		{
			name:    "moving right into a tile stops at its left edge",
			actor:   components.ActorData{X: 82, Y: 190, Width: 20, Height: 40, SpeedX: 3, SpeedY: 1.5},
			tile:    solid(5, 10),
			contact: ContactLeft,
			want:    components.ActorData{X: 80, Y: 190, Width: 20, Height: 40, SpeedX: 0, SpeedY: 1.5},
		},
		{
			name:    "moving left into a tile stops at its right edge",
			actor:   components.ActorData{X: 118, Y: 190, Width: 20, Height: 40, SpeedX: -3, SpeedY: 1.5},
			tile:    solid(5, 10),
			contact: ContactRight,
			want:    components.ActorData{X: 120, Y: 190, Width: 20, Height: 40, SpeedX: 0, SpeedY: 1.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actor := tc.actor
			if got := ResolveTile(&actor, tc.tile, testTileSize); got != tc.contact {
				t.Errorf("contact = %v, want %v", got, tc.contact)
			}
			if actor != tc.want {
				t.Errorf("actor = %+v, want %+v", actor, tc.want)
			}
			if overlaps(&actor, tc.tile) {
				t.Errorf("actor %+v still overlaps tile %+v", actor, tc.tile)
			}

			// A second pass finds no overlap and moves nothing.
			again := actor
			if got := ResolveTile(&again, tc.tile, testTileSize); got != ContactNone {
				t.Errorf("second pass contact = %v, want none", got)
			}
			if again.X != actor.X || again.Y != actor.Y || again.SpeedX != actor.SpeedX || again.SpeedY != actor.SpeedY {
				t.Errorf("second pass moved actor from %+v to %+v", actor, again)
			}
		})
	}
}

func TestResolveTileIgnoresNonCollidable(t *testing.T) {
	tile := tilemap.Tile{X: 0, Y: 15, Variant: "flower", Kind: tilemap.KindNone}
	for _, y := range []float64{250, 262, 280, 300} {
		actor := components.ActorData{X: 0, Y: y, Width: 20, Height: 40, SpeedY: 4, Grounded: true}
		before := actor
		if got := ResolveTile(&actor, tile, testTileSize); got != ContactNone {
			t.Errorf("y=%v: contact = %v, want none", y, got)
		}
		if actor != before {
			t.Errorf("y=%v: actor changed from %+v to %+v", y, before, actor)
		}
	}
}

func TestResolveTileDisjoint(t *testing.T) {
	tests := []components.ActorData{
		{X: 100, Y: 100, Width: 20, Height: 40, SpeedX: 3, SpeedY: 2, Grounded: true},
		{X: 20, Y: 262, Width: 20, Height: 40, SpeedY: 2, Grounded: true},  // touching right edge
		{X: -20, Y: 262, Width: 20, Height: 40, SpeedY: 2, Grounded: true}, // touching left edge
		{X: 0, Y: 320, Width: 20, Height: 40, SpeedY: -2, Grounded: true},  // touching bottom edge
	}
	for _, actor := range tests {
		before := actor
		if got := ResolveTile(&actor, solid(0, 15), testTileSize); got != ContactNone {
			t.Errorf("%+v: contact = %v, want none", before, got)
		}
		if actor != before {
			t.Errorf("actor changed from %+v to %+v", before, actor)
		}
	}
}

func TestResolveTileLedgeCheck(t *testing.T) {
	// Bottom edge exactly on the tile's top, not overlapping: the ground flag
	// is cleared when not moving up, whatever the horizontal position.
	actor := components.ActorData{X: 100, Y: 260, Width: 20, Height: 40, Grounded: true}
	if got := ResolveTile(&actor, solid(0, 15), testTileSize); got != ContactNone {
		t.Fatalf("contact = %v, want none", got)
	}
	if actor.Grounded {
		t.Error("expected grounded to be cleared by the ledge check")
	}

	rising := components.ActorData{X: 100, Y: 260, Width: 20, Height: 40, SpeedY: -1, Grounded: true}
	ResolveTile(&rising, solid(0, 15), testTileSize)
	if !rising.Grounded {
		t.Error("ledge check must not clear grounded while moving up")
	}

	// Slightly above the tile: exact equality fails and nothing changes.
	hovering := components.ActorData{X: 100, Y: 259.75, Width: 20, Height: 40, Grounded: true}
	ResolveTile(&hovering, solid(0, 15), testTileSize)
	if !hovering.Grounded {
		t.Error("ledge check should only fire on an exact touch")
	}
}

func TestResolveTileLandingKeepsGrounded(t *testing.T) {
	// The ledge check uses the bottom edge from before the push, so landing on
	// a lone tile leaves the actor grounded even though it now touches exactly.
	actor := components.ActorData{X: 0, Y: 260.5, Width: 20, Height: 40, SpeedY: 0.5}
	if got := ResolveTile(&actor, solid(0, 15), testTileSize); got != ContactTop {
		t.Fatalf("contact = %v, want top", got)
	}
	if !actor.Grounded || actor.Y != 260 || actor.SpeedY != 0 {
		t.Errorf("after landing: %+v", actor)
	}
}

func TestContactString(t *testing.T) {
	names := map[Contact]string{
		ContactNone:   "none",
		ContactTop:    "top",
		ContactBottom: "bottom",
		ContactLeft:   "left",
		ContactRight:  "right",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(c), c.String(), want)
		}
	}
}

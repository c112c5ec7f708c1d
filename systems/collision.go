package systems

import (
	"math"

	"github.com/automoto/tilejump/components"
	"github.com/automoto/tilejump/tags"
	"github.com/automoto/tilejump/tilemap"
	"github.com/yohamta/donburi"
)

// Contact names the tile edge the actor was pushed out of.
type Contact int

const (
	ContactNone   Contact = iota
	ContactTop            // landed on the tile
	ContactBottom         // hit the tile from below
	ContactLeft           // pushed out to the left of the tile
	ContactRight          // pushed out to the right of the tile
)

func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	case ContactLeft:
		return "left"
	case ContactRight:
		return "right"
	default:
		return "none"
	}
}

// TileContact is a resolved contact against the tile at Index in the map.
type TileContact struct {
	Index   int
	Tile    tilemap.Tile
	Contact Contact
}

// broadphaseMargin is how far around the actor, in tiles, the index looks.
const broadphaseMargin = 1

// UpdateCollisions resolves the actor against each collidable tile in map
// order. Tiles are resolved one at a time, so when several overlap at once the
// result depends on their order. Returns the contacts that moved the actor.
func UpdateCollisions(w donburi.World) []TileContact {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return nil
	}

	var contacts []TileContact
	tags.Actor.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)

		if level.Index != nil {
			margin := float64(broadphaseMargin * level.TileSize)
			prev := -1
			for _, i := range level.Index.Candidates(actor.X, actor.Y, actor.Width, actor.Height, margin) {
				checkLedges(actor, level, prev, i)
				tile := level.Map.At(i)
				if c := ResolveTile(actor, tile, level.TileSize); c != ContactNone {
					contacts = append(contacts, TileContact{Index: i, Tile: tile, Contact: c})
				}
				prev = i
			}
			checkLedges(actor, level, prev, level.Map.Len())
			return
		}

		i := 0
		for tile := range level.Map.Tiles() {
			if c := ResolveTile(actor, tile, level.TileSize); c != ContactNone {
				contacts = append(contacts, TileContact{Index: i, Tile: tile, Contact: c})
			}
			i++
		}
	})
	return contacts
}

// checkLedges runs the ledge check of ResolveTile over the collidable tiles
// with index in (lo, hi) that the broadphase skipped. Those tiles cannot
// overlap the actor, so only one whose top equals the actor's bottom exactly
// has any effect.
func checkLedges(actor *components.ActorData, level *components.LevelData, lo, hi int) {
	if !actor.Grounded || actor.SpeedY < 0 {
		return
	}
	ts := float64(level.TileSize)
	bottom := actor.Bottom()
	row := math.Floor(bottom / ts)
	if row*ts != bottom {
		return
	}
	for _, i := range level.Index.Row(int(row)) {
		if i > lo && i < hi {
			actor.Grounded = false
			return
		}
	}
}

// ResolveTile pushes the actor out of one tile along the axis of least
// penetration, comparing the center offset against the summed half extents
// (a Minkowski sum test), and zeroes the speed on that axis.
func ResolveTile(actor *components.ActorData, tile tilemap.Tile, tileSize int) Contact {
	if !tile.Kind.Collidable() {
		return ContactNone
	}

	ts := float64(tileSize)
	tileLeft := float64(tile.X) * ts
	tileRight := tileLeft + ts
	tileTop := float64(tile.Y) * ts
	tileBottom := tileTop + ts

	// The ledge check below compares the edge from before this tile moved us.
	actorBottom := actor.Bottom()

	contact := ContactNone
	if actor.Right() > tileLeft && actor.X < tileRight && actorBottom > tileTop && actor.Y < tileBottom {
		dx := (actor.X + actor.Width/2) - (tileLeft + ts/2)
		dy := (actor.Y + actor.Height/2) - (tileTop + ts/2)
		halfW := (actor.Width + ts) / 2
		halfH := (actor.Height + ts) / 2

		if math.Abs(dx) <= halfW && math.Abs(dy) <= halfH {
			contact = resolveAxis(actor, halfW*dy, halfH*dx, tileLeft, tileRight, tileTop, tileBottom)
		}
	}

	// Walking off a ledge: only an exact touch counts, which continuous
	// motion rarely produces.
	if actor.SpeedY >= 0 && actorBottom == tileTop {
		actor.Grounded = false
	}

	return contact
}

func resolveAxis(actor *components.ActorData, crossW, crossH, left, right, top, bottom float64) Contact {
	if crossW > crossH {
		if crossW > -crossH {
			actor.Y = bottom
			actor.SpeedY = 0
			actor.Grounded = false
			return ContactBottom
		}
		actor.X = left - actor.Width
		actor.SpeedX = 0
		return ContactLeft
	}

	if crossW > -crossH {
		actor.X = right
		actor.SpeedX = 0
		return ContactRight
	}

	actor.Y = top - actor.Height
	actor.SpeedY = 0
	actor.Grounded = true
	return ContactTop
}

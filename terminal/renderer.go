// Package terminal draws simulation frames into a tcell screen and turns
// terminal key events into actions.
package terminal

import (
	"image/color"
	"math"

	"github.com/automoto/tilejump/render"
	"github.com/gdamore/tcell/v2"
)

const (
	TileRune  = '█'
	ActorRune = '@'
)

// Renderer scales a pixel-space frame down to terminal cells. Cells are
// roughly twice as tall as they are wide, so CellHeight is usually
// 2*CellWidth.
type Renderer struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64

	// Status, if set, is written on the top row after the frame.
	Status string
}

func NewRenderer(screen tcell.Screen, cellWidth, cellHeight float64) *Renderer {
	return &Renderer{screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

// ViewportFor returns the pixel viewport that exactly covers a cols x rows
// screen.
func (r *Renderer) ViewportFor(cols, rows int) (width, height int) {
	return int(float64(cols) * r.CellWidth), int(float64(rows) * r.CellHeight)
}

func (r *Renderer) Render(f *render.Frame) error {
	r.screen.Clear()
	for _, t := range f.Tiles {
		r.fill(t, TileRune)
	}
	r.fill(f.Actor, ActorRune)
	if r.Status != "" {
		drawText(r.screen, 0, 0, r.Status, tcell.StyleDefault.Reverse(true))
	}
	r.screen.Show()
	return nil
}

// fill paints every cell the rectangle touches.
func (r *Renderer) fill(rect render.Rect, ch rune) {
	cols, rows := r.screen.Size()

	x0 := max(0, int(math.Floor(rect.X/r.CellWidth)))
	y0 := max(0, int(math.Floor(rect.Y/r.CellHeight)))
	x1 := min(cols, int(math.Ceil((rect.X+rect.W)/r.CellWidth)))
	y1 := min(rows, int(math.Ceil((rect.Y+rect.H)/r.CellHeight)))

	style := tcell.StyleDefault.Foreground(rgb(rect.Color))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}

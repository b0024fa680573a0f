package render

import (
	"math"

	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/vmath"
)

// CellAspect is terminal cell height over width
const CellAspect = 2.0

// hudRows is reserved above the playfield
const hudRows = 1

// Viewport maps arena units to terminal cells
type Viewport struct {
	OriginX, OriginY int     // Screen cell of arena (0, 0)
	ScaleX, ScaleY   float64 // Arena units per cell
	Cols, Rows       int     // Cells covered by the arena
}

// FitViewport scales the arena to fit inside a screen, leaving room for walls and HUD
// Scale never drops below one arena unit per column
func FitViewport(arena core.Arena, screenW, screenH int) Viewport {
	availW := float64(screenW - 2)           // side walls
	availH := float64(screenH - hudRows - 1) // ceiling
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	sx := math.Max(arena.Width/availW, arena.Height/(availH*CellAspect))
	if sx < 1 {
		sx = 1
	}
	sy := sx * CellAspect

	cols := int(math.Ceil(arena.Width / sx))
	rows := int(math.Ceil(arena.Height / sy))

	originX := (screenW - cols) / 2
	if originX < 1 {
		originX = 1
	}

	return Viewport{
		OriginX: originX,
		OriginY: hudRows + 1,
		ScaleX:  sx,
		ScaleY:  sy,
		Cols:    cols,
		Rows:    rows,
	}
}

// Project returns the cell containing arena point p
func (v Viewport) Project(p vmath.Vec2) (x, y int) {
	return v.OriginX + int(math.Floor(p.X/v.ScaleX)), v.OriginY + int(math.Floor(p.Y/v.ScaleY))
}

// CellCenter returns the arena point at the center of screen cell (x, y)
func (v Viewport) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x-v.OriginX)+0.5)*v.ScaleX,
		(float64(y-v.OriginY)+0.5)*v.ScaleY,
	)
}

// InField reports whether screen cell (x, y) lies on the arena
func (v Viewport) InField(x, y int) bool {
	return x >= v.OriginX && x < v.OriginX+v.Cols && y >= v.OriginY && y < v.OriginY+v.Rows
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/vmath"
)

// Launcher lane geometry in arena units, measured from the right wall
const (
	laneWidth       = 25
	laneTop         = 100
	launcherInset   = 20
	launcherWidth   = 15
	launcherHeight  = 5
	launcherBaseGap = 10
)

// DefaultHint is the control legend for default bindings
const DefaultHint = "Z/X: Flippers"

const readyHint = "DOWN: Charge & Launch"

// TerminalRenderer draws frames to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen

	// Hint is the control legend shown in the HUD
	Hint string
	// Paused adds a marker to the HUD
	Paused bool
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		Hint:   DefaultHint,
	}
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(f engine.Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	w, h := r.screen.Size()
	v := FitViewport(f.Arena, w, h)

	r.drawWalls(v, defaultStyle)
	if f.LauncherLane {
		r.drawLauncherLane(v, f, defaultStyle)
	}
	r.drawFlippers(v, f, defaultStyle)
	r.drawBall(v, f, defaultStyle)
	r.drawHud(f, w, defaultStyle)

	r.screen.Show()
}

// drawWalls draws side walls and ceiling; the floor stays open
func (r *TerminalRenderer) drawWalls(v Viewport, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbWall)
	left := v.OriginX - 1
	right := v.OriginX + v.Cols
	top := v.OriginY - 1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)

	for y := v.OriginY; y < v.OriginY+v.Rows; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
}

// drawLauncherLane draws the decorative plunger lane along the right wall
func (r *TerminalRenderer) drawLauncherLane(v Viewport, f engine.Frame, defaultStyle tcell.Style) {
	laneX := f.Arena.Width - laneWidth
	x0, y0 := v.Project(vmath.V2(laneX, laneTop))
	x1, y1 := v.Project(vmath.V2(f.Arena.Width-v.ScaleX/2, f.Arena.Height-v.ScaleY/2))

	fill := defaultStyle.Background(RgbLane)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, fill)
		}
		r.screen.SetContent(x0, y, '┃', nil, fill.Foreground(RgbLaneWall))
	}

	launcherY := f.Arena.Height - launcherBaseGap - float64(f.LauncherPower)
	lx0, ly0 := v.Project(vmath.V2(f.Arena.Width-launcherInset, launcherY))
	lx1, ly1 := v.Project(vmath.V2(f.Arena.Width-launcherInset+launcherWidth, launcherY+launcherHeight))
	block := fill.Foreground(RgbLauncher)
	for y := ly0; y <= ly1; y++ {
		for x := lx0; x <= lx1; x++ {
			if v.InField(x, y) {
				r.screen.SetContent(x, y, '▀', nil, block)
			}
		}
	}
}

func (r *TerminalRenderer) drawFlippers(v Viewport, f engine.Frame, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbFlipper)
	pivotStyle := defaultStyle.Foreground(RgbFlipperPivot)

	for _, seg := range f.Flippers {
		px, py := v.Project(seg.Pivot)
		tx, ty := v.Project(seg.Tip)
		Line(px, py, tx, ty, func(x, y int) {
			if v.InField(x, y) {
				r.screen.SetContent(x, y, '█', nil, style)
			}
		})
		if v.InField(px, py) {
			r.screen.SetContent(px, py, '◆', nil, pivotStyle)
		}
	}
}

// drawBall draws the ball last over field content so it stays visible on flippers
func (r *TerminalRenderer) drawBall(v Viewport, f engine.Frame, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBall)
	center := vmath.V2(f.Ball.X, f.Ball.Y)

	Disc(v, center, f.Ball.R, func(x, y int) {
		if v.InField(x, y) {
			r.screen.SetContent(x, y, '●', nil, style)
		}
	})
}

func (r *TerminalRenderer) drawHud(f engine.Frame, width int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHud)
	dim := defaultStyle.Foreground(RgbHudDim)

	x := r.drawText(1, 0, r.Hint, style)
	if f.Phase == engine.PhaseReady {
		x = r.drawText(x+2, 0, readyHint, dim)
	}
	if r.Paused {
		r.drawText(x+2, 0, "PAUSED", defaultStyle.Foreground(RgbPaused))
	}

	status := fmt.Sprintf("%s %6d", f.Phase, f.Tick)
	r.drawText(width-len(status)-1, 0, status, dim)
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

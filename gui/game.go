package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/pinball/engine"
)

const (
	wallStroke  = 1
	pivotRadius = 1.5

	// Launcher lane geometry in arena units, measured from the right wall
	laneWidth       = 25
	laneTop         = 100
	launcherInset   = 20
	launcherWidth   = 15
	launcherHeight  = 5
	launcherBaseGap = 10
)

// Game adapts a simulation loop to ebiten.Game; ebiten's TPS paces Update
type Game struct {
	loop        *engine.Loop
	justPressed func(ebiten.Key) bool

	Paused bool
	// OnMute is called when the mute key is pressed
	OnMute func()
}

// NewGame wraps loop; loop.Input should be a KeyboardSource and loop.Renderer nil
func NewGame(loop *engine.Loop) *Game {
	return &Game{
		loop:        loop,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update handles system keys then advances one tick unless paused
func (g *Game) Update() error {
	switch {
	case g.justPressed(ebiten.KeyEscape), g.justPressed(ebiten.KeyQ):
		return ebiten.Termination
	case g.justPressed(ebiten.KeyP):
		g.Paused = !g.Paused
	case g.justPressed(ebiten.KeyR):
		g.loop.Sim.Respawn()
	case g.justPressed(ebiten.KeyArrowDown):
		g.loop.Sim.ChargeLauncher()
	case g.justPressed(ebiten.KeyM):
		if g.OnMute != nil {
			g.OnMute()
		}
	}

	if g.Paused {
		return nil
	}
	g.loop.Tick()
	return nil
}

// Draw renders the current frame in arena units
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.loop.Sim.Frame()
	screen.Fill(colorBackground)

	w, h := float32(f.Arena.Width), float32(f.Arena.Height)
	vector.StrokeLine(screen, 0, 0, w, 0, wallStroke, colorWall, false)
	vector.StrokeLine(screen, 0, 0, 0, h, wallStroke, colorWall, false)
	vector.StrokeLine(screen, w, 0, w, h, wallStroke, colorWall, false)

	if f.LauncherLane {
		drawLauncherLane(screen, f)
	}

	for _, seg := range f.Flippers {
		vector.StrokeLine(screen,
			float32(seg.Pivot.X), float32(seg.Pivot.Y),
			float32(seg.Tip.X), float32(seg.Tip.Y),
			float32(f.FlipperWidth), colorFlipper, true)
		vector.DrawFilledCircle(screen, float32(seg.Pivot.X), float32(seg.Pivot.Y), pivotRadius, colorPivot, true)
	}

	vector.DrawFilledCircle(screen, float32(f.Ball.X), float32(f.Ball.Y), float32(f.Ball.R), colorBall, true)

	status := fmt.Sprintf("%s %d", f.Phase, f.Tick)
	if g.Paused {
		status += " PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 2, 2)
}

func drawLauncherLane(screen *ebiten.Image, f engine.Frame) {
	laneX := float32(f.Arena.Width - laneWidth)
	bottom := float32(f.Arena.Height)
	vector.DrawFilledRect(screen, laneX, laneTop, laneWidth, bottom-laneTop, colorLane, false)
	vector.StrokeLine(screen, laneX, laneTop, laneX, bottom, wallStroke, colorLaneWall, false)

	y := float32(f.Arena.Height - launcherBaseGap - float64(f.LauncherPower))
	vector.DrawFilledRect(screen, float32(f.Arena.Width-launcherInset), y, launcherWidth, launcherHeight, colorLauncher, false)
}

// Layout keeps the logical screen at arena size; ebiten scales to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.loop.Sim.Arena
	return int(a.Width), int(a.Height)
}

package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)
	RgbWall         = tcell.NewRGBColor(120, 124, 153)
	RgbBall         = tcell.NewRGBColor(247, 118, 142)
	RgbFlipper      = tcell.NewRGBColor(224, 175, 104)
	RgbFlipperPivot = tcell.NewRGBColor(255, 255, 255)
	RgbLane         = tcell.NewRGBColor(52, 59, 88)
	RgbLaneWall     = tcell.NewRGBColor(122, 162, 247)
	RgbLauncher     = tcell.NewRGBColor(255, 80, 80)
	RgbHud          = tcell.NewRGBColor(192, 202, 245)
	RgbHudDim       = tcell.NewRGBColor(86, 95, 137)
	RgbPaused       = tcell.NewRGBColor(255, 200, 0)
)

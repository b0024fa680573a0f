package gui

import "image/color"

var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorWall       = color.RGBA{120, 124, 153, 255}
	colorBall       = color.RGBA{247, 118, 142, 255}
	colorFlipper    = color.RGBA{224, 175, 104, 255}
	colorPivot      = color.RGBA{255, 255, 255, 255}
	colorLane       = color.RGBA{52, 59, 88, 255}
	colorLaneWall   = color.RGBA{122, 162, 247, 255}
	colorLauncher   = color.RGBA{255, 80, 80, 255}
)

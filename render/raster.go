package render

import "github.com/lixenwraith/pinball/vmath"

// Line visits every cell on the Bresenham line from (x0, y0) to (x1, y1), endpoints included
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc visits cells whose centers lie within r of center, always including the center cell
func Disc(v Viewport, center vmath.Vec2, r float64, plot func(x, y int)) {
	cx, cy := v.Project(center)
	plot(cx, cy)

	x0, y0 := v.Project(vmath.V2(center.X-r, center.Y-r))
	x1, y1 := v.Project(vmath.V2(center.X+r, center.Y+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x == cx && y == cy {
				continue
			}
			if vmath.V2Dist(v.CellCenter(x, y), center) <= r {
				plot(x, y)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in arena units
// Arena space is screen-oriented: X grows right, Y grows down
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Mid returns the midpoint of segment a-b
func V2Mid(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// V2FromAngle returns the point at distance length from origin along angle (radians)
func V2FromAngle(origin Vec2, angle, length float64) Vec2 {
	return Vec2{
		X: origin.X + math.Cos(angle)*length,
		Y: origin.Y + math.Sin(angle)*length,
	}
}

// V2ClosestOnSegment projects p onto segment a-b, clamped to the endpoints
// Degenerate segments return a
func V2ClosestOnSegment(p, a, b Vec2) Vec2 {
	ab := V2Sub(b, a)
	lenSq := V2Dot(ab, ab)
	if lenSq == 0 {
		return a
	}
	t := V2Dot(V2Sub(p, a), ab) / lenSq
	t = ClampF(t, 0, 1)
	return V2Add(a, V2Scale(ab, t))
}

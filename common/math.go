package common

import "image"

// Vec2 is a 2D vector in screen space (+X right, +Y down).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// PointDelta returns a - b as a Vec2.
func PointDelta(a, b image.Point) Vec2 {
	return Vec2{X: float64(a.X - b.X), Y: float64(a.Y - b.Y)}
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

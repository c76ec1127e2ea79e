// Package physics provides collision detection and clamping utilities.
package physics

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// BoxAround returns the square of half-size half centered on (cx, cy).
func BoxAround(cx, cy, half float64) Rect {
	return Rect{X: cx - half, Y: cy - half, Width: 2 * half, Height: 2 * half}
}

// Overlap reports whether two rectangles overlap. Touching edges do not count.
func Overlap(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// CollidePoint returns where y hits a span of the given top and height,
// normalised so that the span's center is 0 and its edges are -1 and 1.
// Values outside the span fall outside [-1, 1].
func CollidePoint(y, top, height float64) float64 {
	half := height / 2
	if half == 0 {
		return 0
	}
	return (y - (top + half)) / half
}

// EnforceMinMagnitude raises |v| to min while keeping its sign.
// A zero v takes the sign returned by coin (true means negative).
func EnforceMinMagnitude(v, min float64, coin func() bool) float64 {
	if math.Abs(v) >= min {
		return v
	}
	switch {
	case v > 0:
		return min
	case v < 0:
		return -min
	}
	if coin != nil && coin() {
		return -min
	}
	return min
}

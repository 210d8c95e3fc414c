package draggy

import "math"

// Point is a 2D coordinate. Committed positions, pointer readings and
// displacement deltas all use it.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. X0/Y0 is the top-left corner, X1/Y1
// the bottom-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle covers no area. A detached element
// reads back an empty box.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 && r.Y1 <= r.Y0
}

// Contains checks whether the given point lies within the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && y >= r.Y0 && x <= r.X1 && y <= r.Y1
}

func pointAdd(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

func rectAdd(r Rect, p Point) Rect {
	return Rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// intersectRect returns the overlapping area of a and b.
// If there is no overlap, an empty rectangle is returned.
func intersectRect(a, b Rect) Rect {
	if a.X0 < b.X0 {
		a.X0 = b.X0
	}
	if a.Y0 < b.Y0 {
		a.Y0 = b.Y0
	}
	if a.X1 > b.X1 {
		a.X1 = b.X1
	}
	if a.Y1 > b.Y1 {
		a.Y1 = b.Y1
	}
	if a.X1 < a.X0 {
		a.X1 = a.X0
	}
	if a.Y1 < a.Y0 {
		a.Y1 = a.Y0
	}
	return a
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// wrap folds v into [min, min+span) so a repeat axis re-enters on the
// opposite edge once the target leaves the limit rectangle.
func wrap(v, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return v
	}
	v = math.Mod(v-min, span)
	if v < 0 {
		v += span
	}
	return min + v
}

package draggy

// Box is a four-offset region given as left/top/right/bottom values. Pin
// boxes use it relative to the element's own bounds; threshold boxes use
// it as a dead zone around the pointer-down point.
type Box struct {
	Left, Top, Right, Bottom float64
}

// NewBox builds a box from one, two or four values. One value broadcasts
// to all four edges and two values (x, y) to a symmetric box. Any other
// count yields the zero box; a malformed shape must never break an
// interaction in flight.
func NewBox(vals ...float64) Box {
	switch len(vals) {
	case 1:
		return Box{Left: vals[0], Top: vals[0], Right: vals[0], Bottom: vals[0]}
	case 2:
		return Box{Left: vals[0], Top: vals[1], Right: vals[0], Bottom: vals[1]}
	case 4:
		return Box{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	}
	return Box{}
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Zero reports whether all four edges are zero.
func (b Box) Zero() bool { return b == Box{} }

// exceededBy reports whether the displacement d moves past any edge of
// the dead zone.
func (b Box) exceededBy(d Point) bool {
	return d.X < -b.Left || d.X > b.Right || d.Y < -b.Top || d.Y > b.Bottom
}

// boxFromValues is NewBox with an explicit fallback for malformed or
// missing shapes.
func boxFromValues(vals []float64, fallback Box) Box {
	switch len(vals) {
	case 1, 2, 4:
		return NewBox(vals...)
	}
	return fallback
}

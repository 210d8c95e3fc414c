package draggy

import "math"

// Unspecified marks a coordinate that keeps its previous value when
// passed to SetPosition.
var Unspecified = math.NaN()

// SetPosition commits a target point through the motion pipeline: axis
// lock, wrap-around repeat, limit clamping, precision rounding, then the
// geometry write. Pass Unspecified to leave a coordinate untouched.
func (c *Controller) SetPosition(x, y float64) {
	if c.state == StateDestroyed {
		return
	}
	c.commit(Point{X: x, Y: y}, !math.IsNaN(x), !math.IsNaN(y))
}

// commit is the motion resolver. It has no side effects beyond the
// geometry write and the controller's derived fields.
func (c *Controller) commit(p Point, hasX, hasY bool) {
	if c.opts.Axis == AxisY || !hasX {
		p.X = c.prev.X
	}
	if c.opts.Axis == AxisX || !hasY {
		p.Y = c.prev.Y
	}

	if c.opts.Repeat.x() {
		p.X = wrap(p.X, c.limits.X0, c.limits.X1)
	}
	if c.opts.Repeat.y() {
		p.Y = wrap(p.Y, c.limits.Y0, c.limits.Y1)
	}

	p.X = clamp(p.X, c.limits.X0, c.limits.X1)
	p.Y = clamp(p.Y, c.limits.Y0, c.limits.Y1)

	if u := c.opts.Precision; u > 0 {
		p.X = math.Round(p.X/u) * u
		p.Y = math.Round(p.Y/u) * u
	}

	if c.opts.Absolute {
		c.el.ApplyPosition(c.initOffset.X+p.X, c.initOffset.Y+p.Y)
	} else {
		c.el.ApplyTranslation(p.X, p.Y)
	}

	c.delta = pointSub(p, c.prev)
	c.prev = p
	c.movement = pointSub(p, c.init)
}

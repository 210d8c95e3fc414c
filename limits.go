package draggy

// updateLimits recomputes the movable rectangle for the current pin box
// and containment target. Runs at construction, at drag start, and on
// explicit Update calls.
func (c *Controller) updateLimits() {
	box := c.el.AbsoluteBox()
	if box.Empty() {
		// A detached element reads back an empty box. Keep the previous
		// limits rather than collapsing the drag.
		return
	}

	// Current committed point: the translation in translate mode, the
	// box origin relative to the established zero reference otherwise.
	var cur Point
	if !c.opts.Absolute {
		tx, ty := c.el.Translation()
		cur = Point{X: tx, Y: ty}
		c.initOffset = Point{X: box.X0 - cur.X, Y: box.Y0 - cur.Y}
	} else if c.haveOffset {
		cur = Point{X: box.X0 - c.initOffset.X, Y: box.Y0 - c.initOffset.Y}
	} else {
		cur = c.prev
		c.initOffset = Point{X: box.X0 - cur.X, Y: box.Y0 - cur.Y}
	}
	c.haveOffset = true
	c.prev = cur

	cont := c.containmentBox()
	c.pin = boxFromValues(c.opts.Pin, Box{Right: box.Width(), Bottom: box.Height()})

	// Overflow per axis: a pin larger than the containment collapses
	// that axis to the single value aligning the leading edges.
	var lim Rect
	if c.pin.Width()-cont.Width() > 0 {
		v := cont.X0 - c.initOffset.X - c.pin.Left
		lim.X0, lim.X1 = v, v
	} else {
		lim.X0 = cont.X0 - c.initOffset.X - c.pin.Left
		lim.X1 = cont.X1 - c.initOffset.X - c.pin.Right
	}
	if c.pin.Height()-cont.Height() > 0 {
		v := cont.Y0 - c.initOffset.Y - c.pin.Top
		lim.Y0, lim.Y1 = v, v
	} else {
		lim.Y0 = cont.Y0 - c.initOffset.Y - c.pin.Top
		lim.Y1 = cont.Y1 - c.initOffset.Y - c.pin.Bottom
	}
	c.limits = lim
}

// containmentBox resolves the Within option: an explicit element, the
// element's parent, or the binder root. Fixed elements ignore scrolling,
// so the root box is shifted into their frame.
func (c *Controller) containmentBox() Rect {
	switch w := c.opts.Within.(type) {
	case string:
		if w == "parent" {
			if p := c.el.Parent(); p != nil {
				return p.AbsoluteBox()
			}
		}
	case Element:
		if w != nil {
			return w.AbsoluteBox()
		}
	}

	var r Rect
	if root := c.binder.Root(); root != nil {
		r = root.AbsoluteBox()
	}
	if c.el.Fixed() {
		sx, sy := c.binder.Scroll()
		r = rectAdd(r, Point{X: -sx, Y: -sy})
	}
	return r
}

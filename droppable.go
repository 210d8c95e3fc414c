package draggy

// dropOverlay tracks intersection between the dragged element and a
// candidate set of drop targets, snapshotted once per drag. Only one
// target is tracked at a time.
type dropOverlay struct {
	c       *Controller
	targets []Element
	active  Element
}

// start resolves the droppable specifier into the candidate snapshot.
func (d *dropOverlay) start() {
	d.targets = resolveSpec(d.c.opts.Resolver, d.c.opts.Droppable)
	d.active = nil
}

// move re-tests overlap tolerance. While a target is active, later
// satisfying candidates are ignored until it is left.
func (d *dropOverlay) move() {
	box := d.c.el.AbsoluteBox()
	area := box.Width() * box.Height()
	if area <= 0 {
		return
	}
	tol := d.c.opts.DroppableTolerance

	if d.active != nil {
		if overlapFraction(box, d.active.AbsoluteBox(), area) >= tol {
			return
		}
		d.leave()
	}
	for _, t := range d.targets {
		if t == d.c.el {
			continue
		}
		if overlapFraction(box, t.AbsoluteBox(), area) >= tol {
			d.enter(t)
			return
		}
	}
}

// end reports a completed drop on the active target, if any.
func (d *dropOverlay) end() {
	if d.active == nil {
		return
	}
	t := d.active
	d.active = nil
	d.mark(t, false)
	d.notify(EventDrop, t)
}

func (d *dropOverlay) enter(t Element) {
	d.active = t
	d.mark(t, true)
	d.notify(EventDragOver, t)
}

func (d *dropOverlay) leave() {
	t := d.active
	d.active = nil
	d.mark(t, false)
	d.notify(EventDragOut, t)
}

// notify tells both sides: the dragging controller and the candidate.
func (d *dropOverlay) notify(name EventName, t Element) {
	d.c.emit(name, t)
	if d.c.binder != nil {
		d.c.binder.Emit(t, name, d.c.event(name, t), false)
	}
}

func (d *dropOverlay) mark(t Element, on bool) {
	if m, ok := t.(Marker); ok {
		m.SetMark(d.c.opts.DroppableClass, on)
	}
}

// overlapFraction is the intersection area as a fraction of the dragged
// element's area.
func overlapFraction(drag, cand Rect, dragArea float64) float64 {
	i := intersectRect(drag, cand)
	return i.Width() * i.Height() / dragArea
}

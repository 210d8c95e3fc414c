// Package draggy turns pointer input into constrained element motion: a
// press is tracked through an optional dead zone into an active drag,
// positions are axis-locked, wrapped, clamped and rounded before each
// write, and releasing can carry the element onward with the inertia of
// the final flick. Backends feed pointer events in; the library owns no
// event loop of its own.
package draggy

import (
	"fmt"
	"log"
	"math"
	"time"
)

// State is the controller's drag lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateThreshold
	StateDragging
	StateReleasing
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateThreshold:
		return "threshold"
	case StateDragging:
		return "dragging"
	case StateReleasing:
		return "releasing"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// stateHooks are the per-state enter and exit actions of the drag state
// machine.
type stateHooks struct {
	enter func(*Controller)
	exit  func(*Controller)
}

var stateTable map[State]stateHooks

// The table is filled in init rather than in the var initializer: the
// hook methods reach transition, which reads stateTable, and the
// compiler rejects that as an initialization cycle.
func init() {
	stateTable = map[State]stateHooks{
		StateIdle:      {enter: (*Controller).enterIdle, exit: (*Controller).exitIdle},
		StateThreshold: {enter: (*Controller).enterThreshold, exit: (*Controller).exitThreshold},
		StateDragging:  {enter: (*Controller).enterDragging, exit: (*Controller).exitDragging},
		StateReleasing: {enter: (*Controller).enterReleasing},
	}
}

// Controller makes a single element pointer-draggable. Obtain one with
// New; an element has at most one controller at a time.
type Controller struct {
	el     Element
	binder Binder
	opts   Options

	// Handler receives every notification the controller emits. The
	// same notifications are also dispatched on the element through the
	// binder.
	Handler *EventHandler

	state State
	scope string

	handles []Element
	cancels []Element

	pin       Box
	threshold Box
	limits    Rect

	prev     Point // last committed point
	init     Point // committed point at drag start
	delta    Point // displacement since last commit
	movement Point // displacement since drag start

	initOffset  Point // page-space origin of the committed coordinate space
	haveOffset  bool
	innerOffset Point // pointer-down offset from the element box origin

	down        Point // pointer-down page position
	lastPointer Point
	sniper      Point // accumulated precision-mode bias
	mods        ModKeys
	touch       int

	track    tracker
	sampling bool

	releaseFrom  Point
	releaseTo    Point
	releaseStart time.Time
	releaseEnd   time.Time

	drop *dropOverlay

	now func() time.Time
}

// New returns the controller for el, creating it on first use. Calling
// New again for the same element reconfigures and resets the existing
// controller instead of creating a duplicate.
func New(el Element, binder Binder, opts Options) *Controller {
	if c := controllers[el]; c != nil {
		c.Setup(opts)
		return c
	}

	nextScope++
	c := &Controller{
		el:      el,
		binder:  binder,
		Handler: newHandler(),
		scope:   fmt.Sprintf("draggy.%d", nextScope),
		touch:   -1,
		now:     time.Now,
	}
	controllers[el] = c
	c.Setup(opts)
	return c
}

// Setup re-applies configuration and forces the controller back to idle
// with recomputed limits. New calls it; applications may call it to
// reconfigure a live controller.
func (c *Controller) Setup(opts Options) {
	if c.state == StateDestroyed {
		log.Println("draggy: setup on destroyed controller")
		return
	}

	c.opts = opts.normalized()
	c.threshold = boxFromValues(c.opts.Threshold, Box{})

	c.unbindAll()
	c.handles = resolveSpec(c.opts.Resolver, c.opts.Handle)
	if len(c.handles) == 0 {
		c.handles = []Element{c.el}
	}
	c.cancels = resolveSpec(c.opts.Resolver, c.opts.Cancel)

	if c.opts.Droppable != nil {
		c.drop = &dropOverlay{c: c}
	} else {
		c.drop = nil
	}

	c.haveOffset = false
	c.sampling = false
	c.updateLimits()
	c.transition(StateIdle)
}

// Update refreshes the limit rectangle from current geometry.
func (c *Controller) Update() {
	if c.state == StateDestroyed {
		return
	}
	c.updateLimits()
}

// Destroy unbinds all listeners, cancels pending timers and deregisters
// the controller, leaving it inert. Safe to call from any state, any
// number of times.
func (c *Controller) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	if c.state == StateDragging {
		if s := c.opts.Selection; s != nil {
			s.Enable(c.binder.Root())
		}
	}
	c.unbindAll()
	c.sampling = false
	c.releaseEnd = time.Time{}
	endTouch(c.touch)
	c.touch = -1
	delete(controllers, c.el)
	c.state = StateDestroyed
}

// State returns the current lifecycle phase.
func (c *Controller) State() State { return c.state }

// Element returns the controlled element.
func (c *Controller) Element() Element { return c.el }

// Limits returns the movable rectangle computed by the last update.
func (c *Controller) Limits() Rect { return c.limits }

// Position returns the last committed point.
func (c *Controller) Position() (x, y float64) { return c.prev.X, c.prev.Y }

// Speed returns the tracker's smoothed speed scalar.
func (c *Controller) Speed() float64 { return c.track.speed }

// Angle returns the tracker's direction angle in radians.
func (c *Controller) Angle() float64 { return c.track.angle }

// transition runs the exit hook of the current state and the enter hook
// of the next. Re-entering the releasing state collapses straight to
// idle.
func (c *Controller) transition(next State) {
	if c.state == StateDestroyed {
		return
	}
	if next == StateReleasing && c.state == StateReleasing {
		next = StateIdle
	}
	if h := stateTable[c.state]; h.exit != nil {
		h.exit(c)
	}
	c.state = next
	if h := stateTable[next]; h.enter != nil {
		h.enter(c)
	}
}

func (c *Controller) enterIdle() {
	c.mods = ModKeys{}
	c.delta = Point{}
	c.movement = Point{}
	c.sampling = false
	for _, h := range c.handles {
		c.binder.Bind(c.scope+".down", h, []EventKind{PointerDown}, c.onPointer)
	}
	c.emit(EventIdle, nil)
}

func (c *Controller) exitIdle() {
	for _, h := range c.handles {
		c.binder.Unbind(c.scope+".down", h)
	}
	if c.opts.Release {
		c.track.reset(c.prev, c.now())
		c.sampling = true
	}
}

func (c *Controller) enterThreshold() {
	c.binder.Bind(c.scope+".pending", c.binder.Root(),
		[]EventKind{PointerMove, PointerUp}, c.onPointer)
	c.emit(EventThreshold, nil)
}

func (c *Controller) exitThreshold() {
	c.binder.Unbind(c.scope+".pending", c.binder.Root())
}

func (c *Controller) enterDragging() {
	c.updateLimits()
	c.init = c.prev
	c.delta = Point{}
	c.movement = Point{}
	c.sniper = Point{}
	if s := c.opts.Selection; s != nil {
		s.Disable(c.binder.Root())
	}
	c.binder.Bind(c.scope+".drag", c.binder.Root(),
		[]EventKind{PointerMove, PointerUp, PointerLeave}, c.onPointer)
	if c.drop != nil {
		c.drop.start()
	}
	c.emit(EventDragStart, nil)
}

func (c *Controller) exitDragging() {
	if s := c.opts.Selection; s != nil {
		s.Enable(c.binder.Root())
	}
	c.binder.Unbind(c.scope+".drag", c.binder.Root())
	c.sampling = false
	c.emit(EventDragEnd, nil)
}

func (c *Controller) enterReleasing() {
	now := c.now()
	c.releaseFrom = c.prev
	c.releaseTo = Point{
		X: c.prev.X + c.track.speed*math.Cos(c.track.angle),
		Y: c.prev.Y + c.track.speed*math.Sin(c.track.angle),
	}
	c.releaseStart = now
	c.releaseEnd = now.Add(c.opts.ReleaseDuration)

	// A press during the release animation must be able to catch the
	// element, so the down handlers come back early.
	for _, h := range c.handles {
		c.binder.Bind(c.scope+".down", h, []EventKind{PointerDown}, c.onPointer)
	}
}

func (c *Controller) unbindAll() {
	for _, h := range c.handles {
		c.binder.Unbind(c.scope+".down", h)
	}
	root := c.binder.Root()
	c.binder.Unbind(c.scope+".pending", root)
	c.binder.Unbind(c.scope+".drag", root)
}

func (c *Controller) onPointer(ev PointerEvent) {
	if c.state == StateDestroyed {
		return
	}
	switch ev.Kind {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp, PointerLeave:
		c.pointerUp(ev)
	}
}

func (c *Controller) pointerDown(ev PointerEvent) {
	if c.state == StateReleasing {
		// A press lands the element where it is.
		c.transition(StateIdle)
	}
	if c.state != StateIdle {
		return
	}

	if t := ev.Target; t != nil {
		if other := Lookup(t); other != nil && other != c {
			// Claimed by a nested controller.
			return
		}
		for _, cancelEl := range c.cancels {
			if elementContains(cancelEl, t) {
				return
			}
		}
		if c.opts.StartVeto(t) {
			return
		}
	}
	if !claimTouch(ev.Touch) {
		return
	}
	c.touch = ev.Touch

	c.mods = ev.Mods
	c.down = Point{X: ev.X, Y: ev.Y}
	c.lastPointer = c.down
	if box := c.el.AbsoluteBox(); !box.Empty() {
		c.innerOffset = Point{X: ev.X - box.X0, Y: ev.Y - box.Y0}
	}

	if c.threshold.Zero() {
		c.transition(StateDragging)
		return
	}
	c.transition(StateThreshold)
}

func (c *Controller) pointerMove(ev PointerEvent) {
	p := Point{X: ev.X, Y: ev.Y}
	c.mods = ev.Mods

	switch c.state {
	case StateThreshold:
		if !c.threshold.exceededBy(pointSub(p, c.down)) {
			c.lastPointer = p
			return
		}
		c.transition(StateDragging)
		c.dragMove(p, ev.Mods)
	case StateDragging:
		c.dragMove(p, ev.Mods)
	}
}

func (c *Controller) dragMove(p Point, mods ModKeys) {
	if c.opts.SniperKey(mods) {
		// Scale the per-move delta and bank the shortfall so toggling
		// the key never jumps the element.
		d := pointSub(p, c.lastPointer)
		c.sniper.X += d.X * (c.opts.SniperSlowdown - 1)
		c.sniper.Y += d.Y * (c.opts.SniperSlowdown - 1)
	}
	c.lastPointer = p

	target := pointAdd(pointAdd(c.init, pointSub(p, c.down)), c.sniper)
	c.commit(target, true, true)
	c.emit(EventDrag, nil)
	if c.drop != nil {
		c.drop.move()
	}
}

func (c *Controller) pointerUp(ev PointerEvent) {
	endTouch(ev.Touch)
	if ev.Touch >= 0 && ev.Touch == c.touch {
		c.touch = -1
	}

	switch c.state {
	case StateThreshold:
		c.transition(StateIdle)
	case StateDragging:
		if c.sampling {
			// One more sample seeds the release.
			c.track.sample(c.prev, c.now(), c.opts.Velocity, c.opts.MaxSpeed)
		}
		if c.drop != nil {
			c.drop.end()
		}
		if c.opts.Release && c.track.speed > 1 {
			c.transition(StateReleasing)
		} else {
			c.transition(StateIdle)
		}
	}
}

// tick advances the cooperative timers: kinematic sampling while a drag
// is pending or active, and the one-shot release animation.
func (c *Controller) tick(now time.Time) {
	switch c.state {
	case StateThreshold, StateDragging:
		if c.sampling && now.Sub(c.track.lastAt) >= c.opts.Framerate {
			c.track.sample(c.prev, now, c.opts.Velocity, c.opts.MaxSpeed)
			c.emit(EventTrack, nil)
		}
	case StateReleasing:
		total := c.releaseEnd.Sub(c.releaseStart)
		if total <= 0 || !now.Before(c.releaseEnd) {
			c.commit(c.releaseTo, true, true)
			c.transition(StateIdle)
			return
		}
		f := float64(now.Sub(c.releaseStart)) / float64(total)
		c.commit(Point{
			X: c.releaseFrom.X + (c.releaseTo.X-c.releaseFrom.X)*f,
			Y: c.releaseFrom.Y + (c.releaseTo.Y-c.releaseFrom.Y)*f,
		}, true, true)
	}
}

func (c *Controller) event(name EventName, target Element) Event {
	return Event{
		Controller: c,
		Name:       name,
		X:          c.prev.X,
		Y:          c.prev.Y,
		DeltaX:     c.delta.X,
		DeltaY:     c.delta.Y,
		MovementX:  c.movement.X,
		MovementY:  c.movement.Y,
		Speed:      c.track.speed,
		Angle:      c.track.angle,
		Target:     target,
	}
}

// emit publishes a notification on the controller handler and on the
// element through the binder.
func (c *Controller) emit(name EventName, target Element) {
	ev := c.event(name, target)
	c.Handler.Emit(ev)
	if c.binder != nil {
		c.binder.Emit(c.el, name, ev, true)
	}
}

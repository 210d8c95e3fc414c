package draggy

import (
	"testing"
	"time"
)

// fakeElement is a minimal geometry-bearing element for tests.
type fakeElement struct {
	pos    Point
	off    Point
	w, h   float64
	parent *fakeElement
	fixed  bool
	focus  bool

	marks map[string]bool
}

func (e *fakeElement) Translation() (float64, float64) { return e.off.X, e.off.Y }

func (e *fakeElement) AbsoluteBox() Rect {
	if e.w <= 0 && e.h <= 0 {
		return Rect{}
	}
	x, y := e.pos.X+e.off.X, e.pos.Y+e.off.Y
	return Rect{X0: x, Y0: y, X1: x + e.w, Y1: y + e.h}
}

func (e *fakeElement) Fixed() bool { return e.fixed }

func (e *fakeElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) ApplyTranslation(x, y float64) { e.off = Point{X: x, Y: y} }

func (e *fakeElement) ApplyPosition(x, y float64) {
	e.pos = Point{X: x - e.off.X, Y: y - e.off.Y}
}

func (e *fakeElement) Focusable() bool { return e.focus }

func (e *fakeElement) SetMark(name string, on bool) {
	if e.marks == nil {
		e.marks = map[string]bool{}
	}
	e.marks[name] = on
}

type bindKey struct {
	scope string
	el    Element
}

type emitRec struct {
	target Element
	name   EventName
}

// fakeBinder records bindings and element notifications.
type fakeBinder struct {
	root   *fakeElement
	binds  map[bindKey]func(PointerEvent)
	emits  []emitRec
	sx, sy float64
}

func newFakeBinder(root *fakeElement) *fakeBinder {
	return &fakeBinder{root: root, binds: map[bindKey]func(PointerEvent){}}
}

func (b *fakeBinder) Bind(scope string, el Element, kinds []EventKind, fn func(PointerEvent)) {
	b.binds[bindKey{scope, el}] = fn
}

func (b *fakeBinder) Unbind(scope string, el Element) {
	delete(b.binds, bindKey{scope, el})
}

func (b *fakeBinder) Emit(target Element, name EventName, payload Event, bubbles bool) {
	b.emits = append(b.emits, emitRec{target, name})
}

func (b *fakeBinder) Root() Element              { return b.root }
func (b *fakeBinder) Scroll() (float64, float64) { return b.sx, b.sy }

type clock struct {
	t time.Time
}

func (cl *clock) now() time.Time          { return cl.t }
func (cl *clock) advance(d time.Duration) { cl.t = cl.t.Add(d) }

// newTestController builds a 100x50 element inside a 400x300 root.
func newTestController(t *testing.T, opts Options) (*Controller, *fakeElement, *fakeBinder, *clock) {
	t.Helper()
	controllers = map[Element]*Controller{}
	activeTouch = -1

	root := &fakeElement{w: 400, h: 300}
	el := &fakeElement{w: 100, h: 50, parent: root}
	b := newFakeBinder(root)
	c := New(el, b, opts)
	cl := &clock{t: time.Unix(1000, 0)}
	c.now = cl.now
	return c, el, b, cl
}

func press(c *Controller, x, y float64) {
	c.onPointer(PointerEvent{Kind: PointerDown, X: x, Y: y, Touch: -1, Target: c.el})
}

func moveTo(c *Controller, x, y float64) {
	c.onPointer(PointerEvent{Kind: PointerMove, X: x, Y: y, Touch: -1})
}

func lift(c *Controller, x, y float64) {
	c.onPointer(PointerEvent{Kind: PointerUp, X: x, Y: y, Touch: -1})
}

func collectEvents(c *Controller) *[]EventName {
	var names []EventName
	c.Handler.Handle = func(ev Event) { names = append(names, ev.Name) }
	return &names
}

func TestZeroThresholdSkipsThresholdState(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{})
	names := collectEvents(c)

	press(c, 10, 10)
	if c.State() != StateDragging {
		t.Fatalf("expected dragging, got %v", c.State())
	}
	for _, n := range *names {
		if n == EventThreshold {
			t.Fatalf("threshold event emitted with zero threshold box")
		}
	}
	sawStart := false
	for _, n := range *names {
		if n == EventDragStart {
			sawStart = true
		}
	}
	if !sawStart {
		t.Fatalf("dragstart not emitted")
	}
}

func TestThresholdDeadZone(t *testing.T) {
	c, el, _, _ := newTestController(t, Options{Threshold: []float64{5}})

	press(c, 10, 10)
	if c.State() != StateThreshold {
		t.Fatalf("expected threshold, got %v", c.State())
	}

	moveTo(c, 14, 10)
	if c.State() != StateThreshold {
		t.Fatalf("moved inside the dead zone, expected threshold, got %v", c.State())
	}
	if x, y := c.Position(); x != 0 || y != 0 {
		t.Fatalf("element moved inside the dead zone: (%v,%v)", x, y)
	}

	moveTo(c, 16, 10)
	if c.State() != StateDragging {
		t.Fatalf("dead zone exceeded, expected dragging, got %v", c.State())
	}
	if x, _ := c.Position(); x != 6 {
		t.Fatalf("expected x=6 after threshold exit, got %v", x)
	}
	_ = el
}

func TestThresholdAbortOnRelease(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{Threshold: []float64{5}})

	press(c, 10, 10)
	lift(c, 12, 10)
	if c.State() != StateIdle {
		t.Fatalf("expected idle after early release, got %v", c.State())
	}
	if x, y := c.Position(); x != 0 || y != 0 {
		t.Fatalf("element moved without a drag: (%v,%v)", x, y)
	}
}

func TestClampScenario(t *testing.T) {
	// pin [0,0,100,50] inside {0,0,400,300}: a (500,10) pointer drag
	// right-clamps x to 300 and leaves y free.
	c, el, _, _ := newTestController(t, Options{Pin: []float64{0, 0, 100, 50}})

	press(c, 10, 10)
	moveTo(c, 510, 20)
	if x, y := c.Position(); x != 300 || y != 10 {
		t.Fatalf("expected (300,10), got (%v,%v)", x, y)
	}
	if tx, ty := el.Translation(); tx != 300 || ty != 10 {
		t.Fatalf("adapter write mismatch: (%v,%v)", tx, ty)
	}
}

func TestAxisLockX(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{Axis: AxisX})

	press(c, 50, 50)
	moveTo(c, 70, 10)
	if x, y := c.Position(); x != 20 || y != 0 {
		t.Fatalf("axis x: expected (20,0), got (%v,%v)", x, y)
	}
}

func TestReleaseInertia(t *testing.T) {
	c, _, _, cl := newTestController(t, Options{Release: true})
	names := collectEvents(c)

	press(c, 10, 10)
	moveTo(c, 70, 90) // committed (60,80)
	cl.advance(50 * time.Millisecond)
	c.tick(cl.t)
	if c.Speed() <= 1 {
		t.Fatalf("expected tracked speed above 1, got %v", c.Speed())
	}
	sawTrack := false
	for _, n := range *names {
		if n == EventTrack {
			sawTrack = true
		}
	}
	if !sawTrack {
		t.Fatalf("tracking notification not emitted")
	}

	cl.advance(10 * time.Millisecond)
	moveTo(c, 100, 130) // committed (90,120)
	lift(c, 100, 130)
	if c.State() != StateReleasing {
		t.Fatalf("expected releasing, got %v", c.State())
	}

	x0, y0 := c.Position()
	cl.advance(250 * time.Millisecond)
	c.tick(cl.t)
	x1, y1 := c.Position()
	if x1 <= x0 || y1 <= y0 {
		t.Fatalf("release did not continue the motion: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}

	cl.advance(300 * time.Millisecond)
	c.tick(cl.t)
	if c.State() != StateIdle {
		t.Fatalf("expected idle after release duration, got %v", c.State())
	}
}

func TestSlowReleaseGoesIdle(t *testing.T) {
	c, _, _, cl := newTestController(t, Options{Release: true})

	press(c, 10, 10)
	moveTo(c, 12, 10)
	cl.advance(time.Second)
	c.tick(cl.t)
	lift(c, 12, 10)
	if c.State() != StateIdle {
		t.Fatalf("slow release should not trigger inertia, got %v", c.State())
	}
}

func TestPressDuringReleaseCancelsIt(t *testing.T) {
	c, _, _, cl := newTestController(t, Options{Release: true})

	press(c, 10, 10)
	moveTo(c, 80, 90)
	cl.advance(10 * time.Millisecond)
	lift(c, 80, 90)
	if c.State() != StateReleasing {
		t.Fatalf("expected releasing, got %v", c.State())
	}

	press(c, 80, 90)
	if c.State() != StateDragging {
		t.Fatalf("press during release should start a fresh drag, got %v", c.State())
	}
}

func TestSniperSlowdown(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{SniperSlowdown: 0.5})

	press(c, 10, 10)
	c.onPointer(PointerEvent{Kind: PointerMove, X: 50, Y: 10, Touch: -1, Mods: ModKeys{Shift: true}})
	if x, _ := c.Position(); x != 20 {
		t.Fatalf("sniper move: expected x=20, got %v", x)
	}

	// Releasing the key keeps the banked offset: a further 10px plain
	// move advances the full 10px from the slowed position.
	moveTo(c, 60, 10)
	if x, _ := c.Position(); x != 30 {
		t.Fatalf("post-sniper move: expected x=30, got %v", x)
	}
}

func TestDestroyMidDrag(t *testing.T) {
	c, _, b, _ := newTestController(t, Options{Release: true})

	press(c, 10, 10)
	moveTo(c, 50, 50)
	if c.State() != StateDragging {
		t.Fatalf("expected dragging, got %v", c.State())
	}

	c.Destroy()
	if c.State() != StateDestroyed {
		t.Fatalf("expected destroyed, got %v", c.State())
	}
	if len(b.binds) != 0 {
		t.Fatalf("listeners left bound after destroy: %d", len(b.binds))
	}
	if c.sampling {
		t.Fatalf("sampling timer still armed after destroy")
	}
	if Lookup(c.el) != nil {
		t.Fatalf("registry entry left after destroy")
	}

	// A stale handler reference must stay inert.
	x0, y0 := c.Position()
	moveTo(c, 200, 200)
	if x1, y1 := c.Position(); x1 != x0 || y1 != y0 {
		t.Fatalf("destroyed controller committed a move")
	}

	c.Destroy() // idempotent
}

func TestReacquireReusesController(t *testing.T) {
	c, el, b, _ := newTestController(t, Options{})

	press(c, 10, 10)
	again := New(el, b, Options{Axis: AxisY})
	if again != c {
		t.Fatalf("re-registration created a second controller")
	}
	if c.State() != StateIdle {
		t.Fatalf("re-registration should reset to idle, got %v", c.State())
	}
	if c.opts.Axis != AxisY {
		t.Fatalf("re-registration did not apply new options")
	}
}

func TestNestedControllerClaimsPress(t *testing.T) {
	c, el, b, _ := newTestController(t, Options{})

	inner := &fakeElement{pos: Point{X: 10, Y: 10}, w: 20, h: 20, parent: el}
	New(inner, b, Options{})

	c.onPointer(PointerEvent{Kind: PointerDown, X: 15, Y: 15, Touch: -1, Target: inner})
	if c.State() != StateIdle {
		t.Fatalf("outer controller grabbed a nested press, got %v", c.State())
	}
}

func TestCancelRegionVetoesPress(t *testing.T) {
	root := &fakeElement{w: 400, h: 300}
	el := &fakeElement{w: 100, h: 50, parent: root}
	grip := &fakeElement{w: 10, h: 10, parent: el}
	controllers = map[Element]*Controller{}
	activeTouch = -1
	b := newFakeBinder(root)
	c := New(el, b, Options{Cancel: grip})

	c.onPointer(PointerEvent{Kind: PointerDown, X: 5, Y: 5, Touch: -1, Target: grip})
	if c.State() != StateIdle {
		t.Fatalf("press in cancel region started a drag")
	}

	c.onPointer(PointerEvent{Kind: PointerDown, X: 50, Y: 25, Touch: -1, Target: el})
	if c.State() != StateDragging {
		t.Fatalf("press outside cancel region did not start a drag")
	}
}

func TestFocusableTargetVetoesPress(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{})

	field := &fakeElement{w: 40, h: 10, parent: c.el.(*fakeElement), focus: true}
	c.onPointer(PointerEvent{Kind: PointerDown, X: 5, Y: 5, Touch: -1, Target: field})
	if c.State() != StateIdle {
		t.Fatalf("press on a focusable target started a drag")
	}
}

func TestSecondTouchIgnored(t *testing.T) {
	c, _, _, _ := newTestController(t, Options{})

	c.onPointer(PointerEvent{Kind: PointerDown, X: 10, Y: 10, Touch: 3, Target: c.el})
	if c.State() != StateDragging {
		t.Fatalf("first touch did not start a drag")
	}
	c.onPointer(PointerEvent{Kind: PointerUp, X: 10, Y: 10, Touch: 3})

	// Another touch session is still live.
	activeTouch = 7
	c.onPointer(PointerEvent{Kind: PointerDown, X: 10, Y: 10, Touch: 3, Target: c.el})
	if c.State() != StateIdle {
		t.Fatalf("press from a foreign touch session started a drag")
	}
}

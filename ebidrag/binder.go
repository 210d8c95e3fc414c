package ebidrag

import (
	"time"

	"golang.org/x/time/rate"

	"draggy"
)

// binding is one bound handler scope.
type binding struct {
	scope string
	el    draggy.Element
	kinds map[draggy.EventKind]bool
	fn    func(draggy.PointerEvent)
}

// Binder polls Ebiten input state and delivers normalized pointer events
// to bound handlers. Call Update once per frame before game logic; it
// also advances the controllers' timers.
type Binder struct {
	screen *Screen
	binds  []*binding

	prev    draggy.Point
	pressed bool
	touch   int

	// Notify receives notifications dispatched on elements via Emit.
	Notify func(target draggy.Element, name draggy.EventName, ev draggy.Event)

	// Browsers deliver very dense pointer updates; cap the synthetic
	// move rate there like the UI wheel events are capped.
	moveLimiter *rate.Limiter
}

// NewBinder builds a binder rooted at the given screen.
func NewBinder(screen *Screen) *Binder {
	b := &Binder{screen: screen, touch: -1}
	if isWasm {
		b.moveLimiter = rate.NewLimiter(rate.Every(8*time.Millisecond), 1)
	}
	return b
}

func (b *Binder) Bind(scope string, el draggy.Element, kinds []draggy.EventKind, fn func(draggy.PointerEvent)) {
	b.Unbind(scope, el)
	ks := make(map[draggy.EventKind]bool, len(kinds))
	for _, k := range kinds {
		ks[k] = true
	}
	b.binds = append(b.binds, &binding{scope: scope, el: el, kinds: ks, fn: fn})
}

func (b *Binder) Unbind(scope string, el draggy.Element) {
	out := b.binds[:0]
	for _, bd := range b.binds {
		if bd.scope == scope && bd.el == el {
			continue
		}
		out = append(out, bd)
	}
	b.binds = out
}

func (b *Binder) Emit(target draggy.Element, name draggy.EventName, payload draggy.Event, bubbles bool) {
	for el := target; el != nil; el = el.Parent() {
		if b.Notify != nil {
			b.Notify(el, name, payload)
		}
		if !bubbles {
			return
		}
	}
}

func (b *Binder) Root() draggy.Element { return b.screen }

// Scroll is always zero; an Ebiten screen does not scroll.
func (b *Binder) Scroll() (float64, float64) { return 0, 0 }

// Update polls input, synthesizes pointer events and ticks the
// controller registry. Call it from the game's Update.
func (b *Binder) Update() {
	x, y, touch := pointerPosition()
	pos := draggy.Point{X: x, Y: y}
	mods := readMods()

	switch {
	case pointerJustPressed():
		b.pressed = true
		b.touch = touch
		b.dispatch(draggy.PointerEvent{
			Kind: draggy.PointerDown, X: pos.X, Y: pos.Y, Mods: mods, Touch: touch,
		}, pos, true)
	case b.pressed && pointerPressed():
		if pos != b.prev && (b.moveLimiter == nil || b.moveLimiter.Allow()) {
			b.dispatch(draggy.PointerEvent{
				Kind: draggy.PointerMove, X: pos.X, Y: pos.Y, Mods: mods, Touch: b.touch,
			}, pos, false)
		}
	case b.pressed:
		b.pressed = false
		b.dispatch(draggy.PointerEvent{
			Kind: draggy.PointerUp, X: pos.X, Y: pos.Y, Mods: mods, Touch: b.touch,
		}, pos, false)
		b.touch = -1
	}
	b.prev = pos

	draggy.Tick()
}

// dispatch delivers the event to matching bindings. Presses hit-test
// against each bound element and stop at the topmost match; moves and
// releases go to every interested binding.
func (b *Binder) dispatch(ev draggy.PointerEvent, pos draggy.Point, press bool) {
	snapshot := append([]*binding(nil), b.binds...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		bd := snapshot[i]
		if !bd.kinds[ev.Kind] {
			continue
		}
		if press {
			if !bd.el.AbsoluteBox().Contains(pos.X, pos.Y) {
				continue
			}
			ev.Target = bd.el
			bd.fn(ev)
			return
		}
		bd.fn(ev)
	}
}

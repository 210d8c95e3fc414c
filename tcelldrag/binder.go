package tcelldrag

import (
	"github.com/gdamore/tcell/v2"

	"draggy"
)

type binding struct {
	scope string
	el    draggy.Element
	kinds map[draggy.EventKind]bool
	fn    func(draggy.PointerEvent)
}

// Binder feeds tcell mouse events to bound draggy handlers. Pass every
// event from the application's poll loop to Feed; mouse tracking must be
// enabled on the screen.
type Binder struct {
	root  *root
	binds []*binding

	buttons tcell.ButtonMask

	// Notify receives notifications dispatched on elements via Emit.
	Notify func(target draggy.Element, name draggy.EventName, ev draggy.Event)
}

// NewBinder builds a binder for the given screen.
func NewBinder(s tcell.Screen) *Binder {
	return &Binder{root: &root{s: s}}
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

func (b *Binder) Root() draggy.Element { return b.root }

// Scroll is always zero; terminal cells do not scroll under the UI.
func (b *Binder) Scroll() (float64, float64) { return 0, 0 }

// Feed translates a tcell event into pointer events and ticks the
// controller registry. It reports whether the event was a mouse event it
// consumed.
func (b *Binder) Feed(ev tcell.Event) bool {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	x, y := m.Position()
	pos := draggy.Point{X: float64(x), Y: float64(y)}
	mods := modsFrom(m.Modifiers())

	held := m.Buttons()&tcell.Button1 != 0
	was := b.buttons&tcell.Button1 != 0
	b.buttons = m.Buttons()

	switch {
	case held && !was:
		b.dispatch(draggy.PointerEvent{
			Kind: draggy.PointerDown, X: pos.X, Y: pos.Y, Mods: mods, Touch: -1,
		}, pos, true)
	case held && was:
		b.dispatch(draggy.PointerEvent{
			Kind: draggy.PointerMove, X: pos.X, Y: pos.Y, Mods: mods, Touch: -1,
		}, pos, false)
	case !held && was:
		b.dispatch(draggy.PointerEvent{
			Kind: draggy.PointerUp, X: pos.X, Y: pos.Y, Mods: mods, Touch: -1,
		}, pos, false)
	}

	draggy.Tick()
	return true
}

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

func modsFrom(m tcell.ModMask) draggy.ModKeys {
	return draggy.ModKeys{
		Shift: m&tcell.ModShift != 0,
		Ctrl:  m&tcell.ModCtrl != 0,
		Alt:   m&tcell.ModAlt != 0,
	}
}

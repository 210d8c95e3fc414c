package draggy

// EventKind classifies a normalized pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// ModKeys is the modifier key state delivered with a pointer event.
type ModKeys struct {
	Shift, Ctrl, Alt bool
}

// PointerEvent is a normalized mouse or single-touch reading in page
// coordinates.
type PointerEvent struct {
	Kind EventKind
	X, Y float64
	Mods ModKeys

	// Touch is the touch index within the active touch session, -1 when
	// the mouse drives the pointer.
	Touch int

	// Target is the element under the pointer at press time, when the
	// binder knows it. May be nil.
	Target Element
}

// Element is the geometry surface the library needs from a visual
// element. Implementations are pointer-like and comparable; the
// controller registry keys on element identity.
type Element interface {
	// Translation returns the element's current 2D translation offset.
	Translation() (x, y float64)

	// AbsoluteBox returns the element's page-absolute bounding box,
	// including any active translation. Detached elements return an
	// empty rect.
	AbsoluteBox() Rect

	// Fixed reports whether the element is viewport-fixed.
	Fixed() bool

	// Parent returns the enclosing element, or nil at the root.
	Parent() Element

	// ApplyTranslation sets the element's translation offset.
	ApplyTranslation(x, y float64)

	// ApplyPosition places the element's box top-left corner at the
	// given page coordinates.
	ApplyPosition(x, y float64)
}

// Marker is an optional element capability the droppable overlay uses to
// flag the hovered drop target.
type Marker interface {
	SetMark(name string, on bool)
}

// Focusable marks elements that take keyboard focus on pointer-down,
// such as text inputs. The default start veto refuses to begin a drag on
// them so a press keeps its focus behavior.
type Focusable interface {
	Focusable() bool
}

// Binder attaches and detaches pointer handlers and dispatches
// notifications on elements. Implementations normalize mouse and
// single-touch input into PointerEvents.
type Binder interface {
	// Bind registers fn for the given event kinds on el. A second Bind
	// with the same scope and element replaces the first.
	Bind(scope string, el Element, kinds []EventKind, fn func(PointerEvent))

	// Unbind removes the binding for the scope/element pair. Unbinding
	// something never bound is a no-op.
	Unbind(scope string, el Element)

	// Emit dispatches a notification on the target element, walking up
	// the parent chain when bubbles is set.
	Emit(target Element, name EventName, payload Event, bubbles bool)

	// Root is the default containment target and the scope for
	// document-level move/up listeners.
	Root() Element

	// Scroll is the current viewport scroll offset.
	Scroll() (x, y float64)
}

// Resolver turns a target specifier into concrete elements. A specifier
// is a single Element, a slice of specifiers (flattened recursively), or
// a backend-defined pattern.
type Resolver interface {
	Resolve(spec any) []Element
}

// Selection disables text selection for the duration of a drag.
type Selection interface {
	Disable(root Element)
	Enable(root Element)
}

// NopSelection is a Selection for backends with nothing to select.
type NopSelection struct{}

func (NopSelection) Disable(Element) {}
func (NopSelection) Enable(Element)  {}

// resolveSpec flattens element and slice specifiers without a resolver;
// anything else is handed to r when present.
func resolveSpec(r Resolver, spec any) []Element {
	switch t := spec.(type) {
	case nil:
		return nil
	case Element:
		return []Element{t}
	case []Element:
		out := make([]Element, 0, len(t))
		for _, el := range t {
			if el != nil {
				out = append(out, el)
			}
		}
		return out
	case []any:
		var out []Element
		for _, s := range t {
			out = append(out, resolveSpec(r, s)...)
		}
		return out
	}
	if r != nil {
		return r.Resolve(spec)
	}
	return nil
}

// elementContains reports whether el is root or one of its descendants.
func elementContains(root, el Element) bool {
	for e := el; e != nil; e = e.Parent() {
		if e == root {
			return true
		}
	}
	return false
}

package draggy

import "time"

// Axis restricts movement to a single axis.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Repeat selects wrap-around movement per axis.
type Repeat int

const (
	RepeatNone Repeat = iota
	RepeatX
	RepeatY
	RepeatBoth
)

func (r Repeat) x() bool { return r == RepeatX || r == RepeatBoth }
func (r Repeat) y() bool { return r == RepeatY || r == RepeatBoth }

const (
	defaultPrecision       = 1.0
	defaultReleaseDuration = 500 * time.Millisecond
	defaultVelocity        = 1.0
	defaultMaxSpeed        = 50.0
	defaultFramerate       = 50 * time.Millisecond
	defaultSniperSlowdown  = 0.25
	defaultTolerance       = 0.5
	defaultDroppableClass  = "drop-target"
)

// Options configures a Controller. The zero value is usable; unset
// fields take the defaults documented per field. Options are normalized
// at construction and at every reconfiguration.
type Options struct {
	// Handle selects the sub-elements that start a drag. Defaults to the
	// controlled element itself.
	Handle any

	// Cancel selects sub-elements that veto a drag start.
	Cancel any

	// Within is the containment target: an Element, the string "parent",
	// or nil for the binder root.
	Within any

	// Pin is the sub-region of the element that must stay inside the
	// containment rectangle, as one, two or four values (see NewBox).
	// Defaults to the element's full box.
	Pin []float64

	// Threshold is the dead zone around the pointer-down point that must
	// be exceeded before a drag starts. Defaults to no dead zone.
	Threshold []float64

	Axis   Axis
	Repeat Repeat

	// Absolute commits positions by placing the element absolutely
	// instead of writing a translation offset.
	Absolute bool

	// Precision is the rounding unit for committed coordinates.
	// Default 1.
	Precision float64

	// Release enables inertial continuation after the pointer lifts.
	Release bool

	// ReleaseDuration is the length of the inertia animation.
	// Default 500ms.
	ReleaseDuration time.Duration

	// Velocity scales the tracked speed. Default 1.
	Velocity float64

	// MaxSpeed caps an instantaneous speed sample. Default 50.
	MaxSpeed float64

	// Framerate is the kinematic sampling interval. Default 50ms.
	Framerate time.Duration

	// SniperSlowdown scales pointer deltas while the sniper key is held,
	// in (0, 1]. Default 0.25.
	SniperSlowdown float64

	// SniperKey reports whether the precision modifier is held.
	// Default: any shift key.
	SniperKey func(ModKeys) bool

	// StartVeto rejects a drag start for the pointer-down target.
	// Default: elements reporting themselves focus-sensitive via
	// Focusable.
	StartVeto func(Element) bool

	// Droppable selects candidate drop targets; nil disables the
	// overlay.
	Droppable any

	// DroppableTolerance is the overlap fraction of the dragged
	// element's area required to enter a drop target, in (0, 1].
	// Default 0.5.
	DroppableTolerance float64

	// DroppableClass is the mark name applied to the hovered drop
	// target through the Marker capability.
	DroppableClass string

	// Resolver resolves pattern specifiers in Handle, Cancel and
	// Droppable. Element and slice specifiers work without one.
	Resolver Resolver

	// Selection toggles text selection during drags. Optional.
	Selection Selection
}

// normalized fills unset fields with their defaults and clamps the
// fraction-valued knobs into range.
func (o Options) normalized() Options {
	if o.Precision <= 0 {
		o.Precision = defaultPrecision
	}
	if o.ReleaseDuration <= 0 {
		o.ReleaseDuration = defaultReleaseDuration
	}
	if o.Velocity <= 0 {
		o.Velocity = defaultVelocity
	}
	if o.MaxSpeed <= 0 {
		o.MaxSpeed = defaultMaxSpeed
	}
	if o.Framerate <= 0 {
		o.Framerate = defaultFramerate
	}
	if o.SniperSlowdown <= 0 {
		o.SniperSlowdown = defaultSniperSlowdown
	} else if o.SniperSlowdown > 1 {
		o.SniperSlowdown = 1
	}
	if o.SniperKey == nil {
		o.SniperKey = func(m ModKeys) bool { return m.Shift }
	}
	if o.StartVeto == nil {
		o.StartVeto = func(el Element) bool {
			f, ok := el.(Focusable)
			return ok && f.Focusable()
		}
	}
	if o.DroppableTolerance <= 0 {
		o.DroppableTolerance = defaultTolerance
	} else if o.DroppableTolerance > 1 {
		o.DroppableTolerance = 1
	}
	if o.DroppableClass == "" {
		o.DroppableClass = defaultDroppableClass
	}
	return o
}

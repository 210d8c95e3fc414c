package draggy

// EventName identifies a controller notification.
type EventName string

const (
	EventIdle      EventName = "idle"
	EventThreshold EventName = "threshold"
	EventDragStart EventName = "dragstart"
	EventDrag      EventName = "drag"
	EventDragEnd   EventName = "dragend"
	EventTrack     EventName = "track"
	EventDragOver  EventName = "dragover"
	EventDragOut   EventName = "dragout"
	EventDrop      EventName = "drop"
)

// Event describes a controller notification. Positions and deltas are in
// committed coordinates at emission time.
type Event struct {
	Controller *Controller
	Name       EventName

	X, Y                 float64
	DeltaX, DeltaY       float64
	MovementX, MovementY float64

	// Speed and Angle are the kinematic tracker's latest sample.
	Speed, Angle float64

	// Target is the drop candidate for dragover/dragout/drop.
	Target Element
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan Event
	Handle func(Event)
}

// Emit delivers the event through the channel and callback if present.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

func newHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 16)}
}

package draggy

import "time"

// controllers maps element identity to its controller. An element has at
// most one controller; New reuses and resets an existing entry instead
// of creating a duplicate. Destroy removes the entry.
var controllers = map[Element]*Controller{}

var nextScope int

// Lookup returns the controller registered for el, or nil.
func Lookup(el Element) *Controller {
	return controllers[el]
}

// Tick advances every registered controller's cooperative timers using
// the wall clock. Backends call this once per frame.
func Tick() {
	now := time.Now()
	for _, c := range controllers {
		c.tick(now)
	}
}

// activeTouch holds the touch index of the single concurrent touch drag
// session, -1 when none. Presses from other touches are ignored until
// the session ends.
var activeTouch = -1

// claimTouch admits a pointer-down into the current touch session. Mouse
// input (index -1) always passes.
func claimTouch(idx int) bool {
	if idx < 0 {
		return true
	}
	if activeTouch < 0 {
		activeTouch = idx
		return true
	}
	return activeTouch == idx
}

func endTouch(idx int) {
	if idx >= 0 && idx == activeTouch {
		activeTouch = -1
	}
}

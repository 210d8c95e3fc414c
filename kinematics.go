package draggy

import (
	"math"
	"time"
)

// Smoothing weights for the running speed. The fresh sample dominates so
// release inertia reflects the final flick rather than the whole drag.
// Calibrated values; changing them changes the release feel.
const (
	speedWeightNew = 0.8
	speedWeightOld = 0.2
)

// tracker maintains the smoothed speed scalar and direction angle of the
// committed positions sampled at a fixed interval while dragging.
type tracker struct {
	last   Point
	lastAt time.Time
	speed  float64
	angle  float64
	primed bool
}

// reset arms the tracker at the given origin.
func (t *tracker) reset(p Point, now time.Time) {
	t.last = p
	t.lastAt = now
	t.speed = 0
	t.angle = 0
	t.primed = true
}

// sample folds the distance moved since the previous sample into the
// running speed and takes the direction angle from the same window.
func (t *tracker) sample(p Point, now time.Time, velocity, maxSpeed float64) {
	if !t.primed {
		t.reset(p, now)
		return
	}

	d := pointSub(p, t.last)
	dist := math.Hypot(d.X, d.Y)
	elapsed := float64(now.Sub(t.lastAt)) / float64(time.Millisecond)
	if elapsed < 0 {
		elapsed = 0
	}

	instant := velocity * dist / (1 + elapsed)
	if instant > maxSpeed {
		instant = maxSpeed
	}
	t.speed = speedWeightNew*instant + speedWeightOld*t.speed
	if dist > 0 {
		t.angle = math.Atan2(d.Y, d.X)
	}

	t.last = p
	t.lastAt = now
}

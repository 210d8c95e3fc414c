package draggy

import (
	"math"
	"testing"
	"time"
)

func TestTrackerConvergesOnSteadyMotion(t *testing.T) {
	var tr tracker
	now := time.Unix(1000, 0)
	tr.reset(Point{}, now)

	// 51 px every 50ms gives an instantaneous speed of exactly 1.
	p := Point{}
	for i := 0; i < 20; i++ {
		now = now.Add(50 * time.Millisecond)
		p.X += 51
		tr.sample(p, now, 1, 50)
	}

	if math.Abs(tr.speed-1) > 1e-6 {
		t.Fatalf("expected speed to converge to 1, got %v", tr.speed)
	}
	if tr.angle != 0 {
		t.Fatalf("expected angle 0 for rightward motion, got %v", tr.angle)
	}
}

func TestTrackerCapsAtMaxSpeed(t *testing.T) {
	var tr tracker
	now := time.Unix(1000, 0)
	tr.reset(Point{}, now)

	for i := 0; i < 30; i++ {
		now = now.Add(time.Millisecond)
		tr.sample(Point{X: float64(i+1) * 1000}, now, 1, 50)
	}

	if tr.speed > 50 {
		t.Fatalf("speed %v exceeds the cap", tr.speed)
	}
	if tr.speed < 49 {
		t.Fatalf("expected speed near the cap after saturation, got %v", tr.speed)
	}
}

func TestTrackerVelocityScalesSpeed(t *testing.T) {
	run := func(velocity float64) float64 {
		var tr tracker
		now := time.Unix(1000, 0)
		tr.reset(Point{}, now)
		now = now.Add(50 * time.Millisecond)
		tr.sample(Point{X: 51}, now, velocity, 1000)
		return tr.speed
	}

	if s1, s3 := run(1), run(3); math.Abs(s3-3*s1) > 1e-9 {
		t.Fatalf("velocity 3 should triple the speed: %v vs %v", s1, s3)
	}
}

func TestTrackerAngleFollowsDirection(t *testing.T) {
	var tr tracker
	now := time.Unix(1000, 0)
	tr.reset(Point{}, now)

	cases := []struct {
		d    Point
		want float64
	}{
		{Point{X: 10}, 0},
		{Point{Y: 10}, math.Pi / 2},
		{Point{X: -10}, math.Pi},
		{Point{X: 10, Y: -10}, -math.Pi / 4},
	}
	p := Point{}
	for _, tc := range cases {
		now = now.Add(50 * time.Millisecond)
		p = pointAdd(p, tc.d)
		tr.sample(p, now, 1, 50)
		if math.Abs(tr.angle-tc.want) > 1e-9 {
			t.Fatalf("delta %+v: expected angle %v, got %v", tc.d, tc.want, tr.angle)
		}
	}

	// A stationary sample decays the speed but keeps the last heading.
	now = now.Add(50 * time.Millisecond)
	tr.sample(p, now, 1, 50)
	if math.Abs(tr.angle+math.Pi/4) > 1e-9 {
		t.Fatalf("stationary sample changed the angle to %v", tr.angle)
	}
}

func TestTrackerFirstSamplePrimes(t *testing.T) {
	var tr tracker
	tr.sample(Point{X: 100}, time.Unix(1000, 0), 1, 50)
	if tr.speed != 0 {
		t.Fatalf("unprimed tracker should only arm itself, got speed %v", tr.speed)
	}
	if tr.last.X != 100 {
		t.Fatalf("expected the first sample to become the origin, got %+v", tr.last)
	}
}

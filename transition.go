package inputbar

import (
	"math"
	"time"
)

// DefaultDuration is the length of an animated row change.
const DefaultDuration = 350 * time.Millisecond

// Easing maps the elapsed fraction of a transition in [0, 1] to its progress.
type Easing func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 {
	return t
}

// EaseInOutExpo accelerates exponentially up to the midpoint and
// decelerates symmetrically afterwards.
func EaseInOutExpo(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// transition moves a value from one offset to another over time.
type transition struct {
	from, to float64
	start    time.Time
	duration time.Duration
	easing   Easing
}

// value returns the offset at now.
func (t transition) value(now time.Time) float64 {
	if t.duration <= 0 || !now.Before(t.start.Add(t.duration)) {
		return t.to
	}
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		return t.from
	}
	f := float64(elapsed) / float64(t.duration)
	ease := t.easing
	if ease == nil {
		ease = Linear
	}
	return t.from + (t.to-t.from)*ease(f)
}

// running reports whether the transition has not reached its target at now.
func (t transition) running(now time.Time) bool {
	return t.duration > 0 && now.Before(t.start.Add(t.duration))
}

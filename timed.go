package kinetic

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultStep is the simulated time per Update call for a [Timed], matching
// a 60 TPS loop.
const DefaultStep float32 = 1.0 / 60

// Timed adapts a duration-based [gween] tween to the [Animatable] contract
// so it can live inside a [TweenerGroup] next to spring tweeners. Since
// Animatable carries no clock, each Update advances the underlying tween by
// a fixed time step (see [Timed.SetStep]).
//
// Unlike a spring [Tweener], a Timed runs for a fixed duration and cannot be
// retargeted; create a new one to change course.
//
// [gween]: https://github.com/tanema/gween
type Timed struct {
	// Value is the interpolated value after the most recent step.
	Value float64

	// Dest, if set, receives Value after every step, so a field can be
	// animated without wiring a callback.
	Dest *float64

	tween *gween.Tween
	step  float32
	done  bool
}

// NewTimed creates a tween from from to to over duration seconds, shaped by
// the easing function fn (e.g. ease.Linear, ease.OutQuad).
func NewTimed(from, to float64, duration float32, fn ease.TweenFunc) *Timed {
	return &Timed{
		Value: from,
		tween: gween.New(float32(from), float32(to), duration, fn),
		step:  DefaultStep,
	}
}

// SetStep overrides the simulated seconds per Update call. Steps that are
// not positive are ignored.
func (t *Timed) SetStep(dt float32) {
	if dt > 0 {
		t.step = dt
	}
}

// Done reports whether the tween has reached its final value.
func (t *Timed) Done() bool {
	return t.done
}

// Update advances the tween by one step and reports whether it is still
// running. The step that reaches the end writes the exact final value and
// returns false; all later calls are no-ops returning false.
func (t *Timed) Update() bool {
	if t.done {
		return false
	}
	v, finished := t.tween.Update(t.step)
	t.Value = float64(v)
	if t.Dest != nil {
		*t.Dest = t.Value
	}
	t.done = finished
	return !finished
}

package kinetic

import "math"

// Tweener animates a single float64 toward a target value using a
// spring-damper approximation. Each Update call is one discrete simulation
// step: the retained velocity is decayed by Spring, a fraction Speed of the
// remaining gap is added as a new impulse, and the sum is applied to Value.
// With Spring == 0 this is a pure exponential ease; with Spring > 0 velocity
// carries across steps and the value can overshoot and bounce.
//
// There is no internal clock — the caller (typically a render loop) decides
// when steps happen. Read Value after each Update to drive whatever property
// is being animated.
//
// Speed and Spring are deliberately not clamped. Values outside (0, 1) can
// oscillate forever or diverge; that is the caller's responsibility.
type Tweener struct {
	// Value is the animated value, always finite and always readable.
	Value float64

	// Speed is the fraction of the current gap converted into a velocity
	// impulse each step.
	Speed float64

	// Spring is the fraction of the previous step's velocity retained
	// before the new impulse is added.
	Spring float64

	// Tolerance is the gap magnitude below which the animation is
	// considered finished and Value snaps exactly to the target.
	// Defaults to [DefaultTolerance].
	Tolerance float64

	// OnUpdate, if set, is invoked after every step that is not
	// short-circuited by the exact-equality fast path.
	OnUpdate func(*Tweener)

	// OnSettled, if set, is invoked after any such step whose result is
	// "no longer animating".
	OnSettled func(*Tweener)

	target   float64
	velocity float64
	atRest   bool
}

// NewTweener creates a tweener holding value, which becomes both the current
// value and the target, so the tweener starts at rest. A non-finite value is
// coerced to 0.
func NewTweener(value, speed, spring float64) *Tweener {
	value = finite(value)
	return &Tweener{
		Value:     value,
		Speed:     speed,
		Spring:    spring,
		Tolerance: DefaultTolerance,
		target:    value,
		atRest:    true,
	}
}

// SetTarget replaces the target value. Velocity, Value, and the rest state
// are untouched, so retargeting mid-flight redirects the motion smoothly —
// the next Update sees the new gap and steers toward it with the momentum it
// already has. A non-finite value is coerced to 0.
func (t *Tweener) SetTarget(v float64) {
	t.target = finite(v)
}

// Target returns the value currently being approached.
func (t *Tweener) Target() float64 {
	return t.target
}

// Velocity returns the momentum carried into the next step.
func (t *Tweener) Velocity() float64 {
	return t.velocity
}

// Resting reports whether the tweener has settled on its target.
func (t *Tweener) Resting() bool {
	return t.atRest
}

// Update advances the value one step toward the target and reports whether
// the tweener is still animating. The step that closes the gap under
// Tolerance snaps Value exactly onto the target, zeroes the velocity, and
// still counts as animating (the snap is itself a change); the call after
// that hits the exact-equality fast path and returns false.
//
// The fast path fires neither callback. Every other call fires OnUpdate,
// and additionally OnSettled when the result is false — which, given the
// snap, is only reachable by retargeting within Tolerance of the current
// value while at rest.
//
// Callbacks must not call Update on this tweener re-entrantly.
func (t *Tweener) Update() bool {
	if t.Value == t.target {
		return false
	}

	gap := t.target - t.Value
	t.velocity *= t.Spring

	var animating bool
	switch {
	case math.Abs(gap) > t.Tolerance:
		t.velocity += gap * t.Speed
		t.Value += t.velocity
		t.atRest = false
		animating = true
	case !t.atRest:
		t.atRest = true
		t.velocity = 0
		t.Value = t.target
		animating = true
	}

	if t.OnUpdate != nil {
		t.OnUpdate(t)
	}
	if !animating && t.OnSettled != nil {
		t.OnSettled(t)
	}
	return animating
}

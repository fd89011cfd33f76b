package kinetic

import "math"

// Animatable is the contract shared by every entity in the system: a single
// tweener or a whole group. Update advances internal state by one discrete
// step and reports whether the entity is still in motion. Calling Update on
// an entity already at rest with no target change is a no-op that returns
// false.
//
// Because a [TweenerGroup] satisfies Animatable itself, groups nest
// recursively: a group member may be another group.
type Animatable interface {
	Update() bool
}

// DefaultSpeed is the speed used when a group lazily creates a tweener and
// the options leave Speed unset.
const DefaultSpeed = 0.5

// DefaultTolerance is the gap magnitude below which a tweener is considered
// at rest and snaps exactly to its target.
const DefaultTolerance = 0.01

// TweenerOptions configures a tweener lazily created by
// [TweenerGroup.SetTarget]. The zero value is valid: Speed falls back to
// [DefaultSpeed], Tolerance to [DefaultTolerance], Spring to 0 (no bounce),
// and nil callbacks are simply not invoked.
type TweenerOptions struct {
	Speed     float64
	Spring    float64
	Tolerance float64
	OnUpdate  func(*Tweener)
	OnSettled func(*Tweener)
}

// finite coerces NaN and ±Inf to 0 so Value and target stay finite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

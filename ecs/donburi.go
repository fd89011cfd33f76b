package ecs

import (
	"github.com/phanxgames/kinetic"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SettleEvent is published when a group member transitions from animating to
// rest. Value carries the member's final value for leaf tweeners and 0 for
// nested groups.
type SettleEvent struct {
	Key   string
	Value float64
}

// SettleEventType is the Donburi event type for settle notifications.
// Subscribe to this in your ECS systems to react to finished animations.
var SettleEventType = events.NewEventType[SettleEvent]()

// DonburiDriver steps a tweener group and bridges its member lifecycle into
// a Donburi world as typed events. It installs itself as the group's
// OnMemberUpdate hook, so the group must not be given another hook while a
// driver owns it.
type DonburiDriver struct {
	world  donburi.World
	group  *kinetic.TweenerGroup
	moving map[string]bool
}

// NewDonburiDriver creates a driver that publishes a SettleEvent to world
// each time a member of group stops animating. Events are queued; process
// them with events.ProcessAllEvents or SettleEventType.ProcessEvents.
func NewDonburiDriver(world donburi.World, group *kinetic.TweenerGroup) *DonburiDriver {
	d := &DonburiDriver{world: world, group: group, moving: make(map[string]bool)}
	group.OnMemberUpdate = d.memberUpdated
	return d
}

// Update advances the group one step and reports whether it is still
// animating, with the same AND-of-all semantics as TweenerGroup.Update.
func (d *DonburiDriver) Update() bool {
	return d.group.Update()
}

func (d *DonburiDriver) memberUpdated(key string, member kinetic.Animatable, animating bool) {
	if d.moving[key] && !animating {
		ev := SettleEvent{Key: key}
		if tw, ok := member.(*kinetic.Tweener); ok {
			ev.Value = tw.Value
		}
		SettleEventType.Publish(d.world, ev)
	}
	d.moving[key] = animating
}

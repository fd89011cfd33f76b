// Package ecs provides ECS adapters for kinetic's animation lifecycle.
//
// The primary adapter is [NewDonburiDriver], which steps a
// [kinetic.TweenerGroup] each tick and publishes a [SettleEvent] into a
// [Donburi] world whenever a member comes to rest. Subscribe to
// [SettleEventType] in your ECS systems to react to finished animations.
//
// Usage:
//
//	driver := ecs.NewDonburiDriver(world, group)
//	// each tick:
//	driver.Update()
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

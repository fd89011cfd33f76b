// Package kinetic is a small spring-damper tween engine for frame-driven
// animation.
//
// Kinetic animates float64 values toward targets one discrete step at a
// time: each step decays the retained velocity by a spring factor, converts
// a fraction of the remaining gap into a fresh impulse, and applies the
// result. There is no clock and no scheduler — the caller invokes Update
// once per frame (or per tick of whatever loop it owns) and reads the
// values back out.
//
// # Quick start
//
// Drive a group from your game loop and stop scheduling frames once it
// settles:
//
//	g := kinetic.NewTweenerGroup()
//	g.SetTarget("x", 0, 320, nil)
//	g.SetTarget("y", 0, 240, &kinetic.TweenerOptions{Speed: 0.2, Spring: 0.4})
//
//	// each frame:
//	animating := g.Update()
//	sprite.X = g.Tweener("x").Value
//	sprite.Y = g.Tweener("y").Value
//
// [TweenerGroup.SetTarget] lazily creates the named tweener on first use,
// and only retargets it afterward, so redirecting an animation mid-flight
// is the same call as starting it.
//
// # Composition
//
// Everything that animates satisfies [Animatable], a one-method contract
// (Update() bool), and a [TweenerGroup] satisfies it too — groups nest
// inside groups, and one Update at the root steps the whole tree. The
// group's aggregate result is true only while every member is still moving.
//
// Duration-based tweens from [gween] slot into the same groups via [Timed].
// ECS integration (settle events published into a [Donburi] world) lives in
// the kinetic/ecs submodule.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package kinetic

// Package ecs bridges panel events into a [Donburi] world so ECS systems can
// react to touch, encoder, keyboard and widget input alongside game-style
// simulation state.
//
// Usage:
//
//	bridge := ecs.NewBridge(world, m)
//	bridge.Attach(m.Screen("menu"))
//	bridge.Watch(slider)
//	// in a system:
//	ecs.InputEventType.Subscribe(world, onInput)
//	ecs.InputEventType.ProcessEvents(world)
//
// Handlers run on the manager's loop goroutine, so process the world's
// events from the same goroutine (for example in a screen's OnFrame).
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

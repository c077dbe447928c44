// Package ecs bridges a frame's view tree into a [Donburi] world.
//
// [Attach] gives every attached view an entity carrying [ViewComponent] and
// republishes pointer, focus and tree changes as typed events. Subscribe to
// [MouseEventType], [FocusEventType] or [TreeEventType] in your systems and
// drain them with events.ProcessAllEvents.
//
// Usage:
//
//	bridge := ecs.Attach(frame, world)
//	defer bridge.Detach()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs bridges imui widget interactions into a Donburi world.
//
// [NewDonburiSink] returns an [imui.EventSink] that publishes every press and
// click as a typed Donburi event. Subscribe to [InteractionEventType] in your
// ECS systems and drain the queue with ProcessEvents once per tick.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

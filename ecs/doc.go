// Package ecs provides ECS adapters for touchgui's synthetic input events.
//
// The primary adapter is [NewDonburiReceiver], which publishes every key and
// mouse event the touch GUI produces into a [Donburi] world as a typed
// event. Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	recv := ecs.NewDonburiReceiver(world)
//	gui := touchgui.New(cfg, keymap, recv, widgets)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

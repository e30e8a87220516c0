package ecs

import (
	"github.com/phanxgames/touchgui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for touchgui's synthetic input.
// Subscribe to this in your ECS systems to receive key and mouse events.
var InputEventType = events.NewEventType[touchgui.Event]()

type donburiReceiver struct {
	world donburi.World
}

// NewDonburiReceiver creates a Receiver backed by a Donburi world.
// Events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiReceiver(world donburi.World) touchgui.Receiver {
	return &donburiReceiver{world: world}
}

func (r *donburiReceiver) OnEvent(ev touchgui.Event) {
	InputEventType.Publish(r.world, ev)
}

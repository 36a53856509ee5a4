// Package ecs provides ECS adapters for circlegarden.
package ecs

import (
	"github.com/phanxgames/circlegarden"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for circlegarden scene events.
// Subscribe to this in your ECS systems to learn when scenes become
// available or are dropped.
var SceneEventType = events.NewEventType[circlegarden.SceneEvent]()

type donburiListener struct {
	world donburi.World
}

// NewDonburiListener creates a SceneListener backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiListener(world donburi.World) circlegarden.SceneListener {
	return &donburiListener{world: world}
}

func (l *donburiListener) EmitSceneEvent(event circlegarden.SceneEvent) {
	SceneEventType.Publish(l.world, event)
}

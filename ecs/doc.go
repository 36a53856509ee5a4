// Package ecs provides ECS adapters for circlegarden's scene registry.
//
// The primary adapter is [NewDonburiListener], which bridges scene events
// (ready, dropped) into a [Donburi] world as typed events. Subscribe to
// [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	listener := ecs.NewDonburiListener(world)
//	textures := circlegarden.NewDynamicTextures(circlegarden.WithListener(listener))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

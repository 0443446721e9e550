// Package ecs provides ECS adapters for grove's placement output.
//
// The primary adapter is [NewDonburiSpawner], which turns each spawned
// placement into an entity in a [Donburi] world carrying the [Placed]
// component. Query [Placed] in your ECS systems to find placed objects.
//
// Usage:
//
//	spawner := ecs.NewDonburiSpawner(world)
//	grove.Place(spawner, "tree", transforms)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

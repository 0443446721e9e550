// Package ecs provides ECS adapters for grove.
package ecs

import (
	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
)

// Placed is the Donburi component attached to every entity created by the
// spawner. Query it in your ECS systems to find placed objects.
var Placed = donburi.NewComponentType[PlacedData]()

// PlacedData records what kind of object a placed entity is and where it sits.
type PlacedData struct {
	Kind      string
	Transform grove.Transform
}

type donburiSpawner struct {
	world donburi.World
}

// NewDonburiSpawner creates a Spawner backed by a Donburi world.
// Each Spawn call creates one entity carrying the [Placed] component,
// so generated layouts flow straight into ECS systems via [grove.Place].
func NewDonburiSpawner(world donburi.World) grove.Spawner {
	return &donburiSpawner{world: world}
}

func (s *donburiSpawner) Spawn(kind string, t grove.Transform) error {
	entry := s.world.Entry(s.world.Create(Placed))
	Placed.SetValue(entry, PlacedData{Kind: kind, Transform: t})
	return nil
}

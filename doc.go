// Package grove generates object placements for game worlds: grids,
// rings, random scatters and paths, expressed as engine-neutral
// transforms.
//
// Grove does not talk to any engine itself. Generators produce
// [Transform] slices; a [Spawner] implementation turns them into
// whatever the host program places, be that editor actors, ECS
// entities, or plain records in a test.
//
// # Quick start
//
// Generate transforms with one of the pattern functions and hand them
// to a Spawner via [Place]:
//
//	transforms, err := grove.Grid(3, 5, 100, 100, mgl64.Vec3{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	rec := grove.NewRecorder()
//	placed, err := grove.Place(rec, "pine_tree", transforms)
//
// # Patterns
//
// Four generators cover the common layouts: [Grid] for row/column
// arrays, [Circle] for rings, [Scatter] for seeded random fills and
// [AlongPath] for placement along a [Path]. Paths interpolate control
// points with optional Hermite tangents and answer position and tangent
// queries by arc length.
//
// # Terrain
//
// [AlignToSurface] drops generated transforms onto terrain through a
// [TraceFunc]. [Heightfield] supplies a ready-made trace source built
// from height samples; engine adapters can plug in their own line
// traces.
//
// # Plans
//
// Whole layouts can be authored declaratively in YAML and loaded with
// [LoadPlan]; [Plan.Apply] generates and spawns every placement in one
// call. The preview subpackage renders plans in an [Ebitengine] window
// or to PNG files, and the ecs subpackage spawns into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package grove

package grove

import "github.com/go-gl/mathgl/mgl64"

// SurfaceHit describes where a downward trace met a surface.
type SurfaceHit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// TraceFunc casts straight down from origin and reports the first
// surface within maxDist below it. Implementations adapt grove to a
// terrain source: a Heightfield, an engine line trace, a physics query.
type TraceFunc func(origin mgl64.Vec3, maxDist float64) (SurfaceHit, bool)

// AlignToSurface drops each transform onto the surface found by trace.
// A hit moves the transform to the hit point and orients its forward
// axis along the surface normal; a miss leaves the transform untouched.
// Returns the number of transforms moved.
func AlignToSurface(transforms []Transform, trace TraceFunc, maxDist float64) int {
	if trace == nil {
		return 0
	}
	moved := 0
	for i := range transforms {
		hit, ok := trace(transforms[i].Position, maxDist)
		if !ok {
			continue
		}
		transforms[i].Position = hit.Point
		transforms[i].Rotation = RotatorFromDirection(hit.Normal)
		moved++
	}
	return moved
}

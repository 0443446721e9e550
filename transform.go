package grove

import "github.com/go-gl/mathgl/mgl64"

// Transform is one placement: where an object sits, how it faces and how
// it is scaled. Generators produce slices of Transform; a Spawner turns
// them into engine objects.
type Transform struct {
	Position mgl64.Vec3
	Rotation Rotator
	Scale    mgl64.Vec3
}

// NewTransform returns a Transform at position with zero rotation and
// unit scale.
func NewTransform(position mgl64.Vec3) Transform {
	return Transform{Position: position, Scale: UniformScale(1)}
}

// UniformScale returns the scale vector (f, f, f).
func UniformScale(f float64) mgl64.Vec3 {
	return mgl64.Vec3{f, f, f}
}

package grove

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is an orientation as pitch, yaw and roll in degrees, the way
// level editors present rotation to designers. Yaw turns around the
// world up axis, measured counter-clockwise from +X; pitch tilts the
// forward axis toward +Z; roll turns around the forward axis itself.
type Rotator struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// RotatorFromDirection returns the rotator that points the forward axis
// along dir. Yaw comes out in [0, 360), pitch in [-90, 90], roll is
// always zero. A zero direction yields the zero rotator.
func RotatorFromDirection(dir mgl64.Vec3) Rotator {
	horiz := math.Hypot(dir.X(), dir.Y())
	if horiz == 0 && dir.Z() == 0 {
		return Rotator{}
	}
	return Rotator{
		Pitch: mgl64.RadToDeg(math.Atan2(dir.Z(), horiz)),
		Yaw:   normalizeDegrees(mgl64.RadToDeg(math.Atan2(dir.Y(), dir.X()))),
	}
}

// Add returns the component-wise sum of r and o. The result is not
// normalized; call Normalized to wrap it.
func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{
		Pitch: r.Pitch + o.Pitch,
		Yaw:   r.Yaw + o.Yaw,
		Roll:  r.Roll + o.Roll,
	}
}

// Normalized returns a copy of r with every component wrapped into
// [0, 360).
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: normalizeDegrees(r.Pitch),
		Yaw:   normalizeDegrees(r.Yaw),
		Roll:  normalizeDegrees(r.Roll),
	}
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

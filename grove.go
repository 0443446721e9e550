package grove

import (
	"errors"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidArgument is wrapped by every generator and constructor error
// caused by bad caller input: negative counts, inverted ranges, empty
// control point lists. Match it with errors.Is.
var ErrInvalidArgument = errors.New("grove: invalid argument")

// Up is the world up axis. Grove worlds are Z-up: X and Y span the ground
// plane and Z is height.
var Up = mgl64.Vec3{0, 0, 1}

// --- Bounds ---

// Bounds is an axis-aligned rectangle on the ground plane.
// Used to constrain scatter placement and to define heightfield regions.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Width returns the X extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether the ground-plane point (x, y) lies inside the
// bounds. Points on the edge are considered inside.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

func (b Bounds) valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// --- Range ---

// Range is a general-purpose min/max interval.
// Used by ScatterConfig for scale variation and by anything else that
// needs a bounded random draw.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a uniformly distributed value in [Min, Max) drawn from
// rng. When Min equals Max that value is returned exactly.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

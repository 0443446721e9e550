package grove

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// ScatterConfig controls random placement inside a rectangular region.
type ScatterConfig struct {
	// Count is the number of transforms to produce. Zero yields an empty
	// slice.
	Count int
	// Bounds is the ground-plane rectangle positions are drawn from.
	Bounds Bounds
	// Z is the height assigned to every position.
	Z float64
	// Scale is the uniform scale range each transform draws from. The
	// zero value means unit scale.
	Scale Range
	// RandomYaw randomises each transform's yaw in [0, 360).
	RandomYaw bool
	// Seed selects the random sequence. Equal configs produce identical
	// layouts.
	Seed uint64
	// Source, when non-nil, supplies randomness instead of Seed. The
	// caller owns its state; successive calls continue the same stream.
	Source *rand.Rand
}

// Scatter returns cfg.Count transforms uniformly distributed over
// cfg.Bounds at height cfg.Z. Draws happen in a fixed order per
// transform (x, y, yaw, scale), so a given seed always reproduces the
// same layout.
func Scatter(cfg ScatterConfig) ([]Transform, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: scatter count %d must not be negative", ErrInvalidArgument, cfg.Count)
	}
	if !cfg.Bounds.valid() {
		return nil, fmt.Errorf("%w: scatter bounds %+v are inverted", ErrInvalidArgument, cfg.Bounds)
	}
	scale := cfg.Scale
	if scale == (Range{}) {
		scale = Range{Min: 1, Max: 1}
	}
	if !scale.valid() {
		return nil, fmt.Errorf("%w: scatter scale range %+v is inverted", ErrInvalidArgument, cfg.Scale)
	}

	rng := cfg.Source
	if rng == nil {
		rng = seededRand(cfg.Seed)
	}
	xr := Range{Min: cfg.Bounds.MinX, Max: cfg.Bounds.MaxX}
	yr := Range{Min: cfg.Bounds.MinY, Max: cfg.Bounds.MaxY}

	out := make([]Transform, 0, cfg.Count)
	for range cfg.Count {
		var tf Transform
		tf.Position = mgl64.Vec3{xr.Random(rng), yr.Random(rng), cfg.Z}
		if cfg.RandomYaw {
			tf.Rotation.Yaw = rng.Float64() * 360
		}
		tf.Scale = UniformScale(scale.Random(rng))
		out = append(out, tf)
	}
	return out, nil
}

// seededRand builds a PCG-backed generator from a single seed, deriving
// the two state words by hashing the seed with distinct salts.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seedWord(seed, "lo"), seedWord(seed, "hi")))
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}

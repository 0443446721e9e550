package grove

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// AlongPathConfig controls placement along a Path.
type AlongPathConfig struct {
	// Count is the number of transforms to produce. One transform sits
	// at the path start; two or more span the full path end to end.
	Count int
	// LateralOffset shifts each transform sideways from the path,
	// positive to the right of the travel direction.
	LateralOffset float64
	// RotationOffset is added to each transform's rotation after path
	// alignment.
	RotationOffset Rotator
	// AlignToPath orients each transform's forward axis along the
	// path tangent at its station.
	AlignToPath bool
	// Ease redistributes stations along the path. nil keeps them evenly
	// spaced; an easing function from gween/ease packs them toward one
	// end while the first and last stay on the path ends.
	Ease ease.TweenFunc
}

// AlongPath returns cfg.Count transforms spaced along p. Count must be
// positive.
func AlongPath(p *Path, cfg AlongPathConfig) ([]Transform, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: along-path placement needs a path", ErrInvalidArgument)
	}
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: along-path count %d must be positive", ErrInvalidArgument, cfg.Count)
	}

	length := p.Length()
	out := make([]Transform, 0, cfg.Count)
	for i := range cfg.Count {
		dist := 0.0
		if cfg.Count > 1 {
			frac := float64(i) / float64(cfg.Count-1)
			if cfg.Ease != nil {
				frac = float64(cfg.Ease(float32(frac), 0, 1, 1))
			}
			dist = length * frac
		}

		tf := NewTransform(p.PositionAt(dist))
		tangent := p.TangentAt(dist)
		if cfg.AlignToPath && tangent != (mgl64.Vec3{}) {
			tf.Rotation = RotatorFromDirection(tangent)
		}
		if cfg.LateralOffset != 0 && tangent != (mgl64.Vec3{}) {
			right := tangent.Cross(Up)
			if ln := right.Len(); ln > 1e-12 {
				tf.Position = tf.Position.Add(right.Mul(cfg.LateralOffset / ln))
			}
		}
		tf.Rotation = tf.Rotation.Add(cfg.RotationOffset)
		out = append(out, tf)
	}
	return out, nil
}

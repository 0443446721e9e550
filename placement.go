package grove

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid returns rows*cols transforms laid out row-major on the ground
// plane: index row*cols+col sits at origin plus (col*spacingX,
// row*spacingY, 0). Every transform carries zero rotation and unit
// scale. Zero rows or columns yield an empty slice; negative dimensions
// are an error. Negative spacing simply grows the grid the other way.
func Grid(rows, cols int, spacingX, spacingY float64, origin mgl64.Vec3) ([]Transform, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must not be negative", ErrInvalidArgument, rows, cols)
	}
	out := make([]Transform, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			pos := origin.Add(mgl64.Vec3{
				float64(col) * spacingX,
				float64(row) * spacingY,
				0,
			})
			out = append(out, NewTransform(pos))
		}
	}
	return out, nil
}

// Circle returns count transforms evenly spaced around a circle of the
// given radius on the ground plane, starting on the +X side of center
// and proceeding counter-clockwise. With faceCenter set, each
// transform's yaw is the placement angle plus 90 degrees, wrapped into
// [0, 360); otherwise yaw is zero. Count must be positive and radius
// must not be negative.
func Circle(count int, radius float64, center mgl64.Vec3, faceCenter bool) ([]Transform, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: circle count %d must be positive", ErrInvalidArgument, count)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: circle radius %v must not be negative", ErrInvalidArgument, radius)
	}
	out := make([]Transform, 0, count)
	for i := range count {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pos := center.Add(mgl64.Vec3{
			radius * math.Cos(angle),
			radius * math.Sin(angle),
			0,
		})
		tf := NewTransform(pos)
		if faceCenter {
			tf.Rotation.Yaw = normalizeDegrees(mgl64.RadToDeg(angle) + 90)
		}
		out = append(out, tf)
	}
	return out, nil
}

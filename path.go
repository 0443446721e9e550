package grove

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ControlPoint is one knot of a Path. Tangent is optional: left zero, the
// path runs straight between neighbouring points; set, the adjacent
// segments bend through a cubic Hermite curve with that tangent at the
// knot.
type ControlPoint struct {
	Position mgl64.Vec3
	Tangent  mgl64.Vec3
}

// curveSteps is the number of flattening subdivisions per curved segment
// in the arc length table. Straight segments need only one.
const curveSteps = 20

// Path is an arc-length parameterised curve through a sequence of
// control points. Build one with NewPath or NewLinePath, then query
// positions and tangents by distance from the start. A Path is immutable
// after construction and safe for concurrent readers.
type Path struct {
	points  []ControlPoint
	segs    []pathSegment
	samples []pathSample
	length  float64
}

// pathSegment caches the Hermite endpoints and tangents between two
// consecutive control points.
type pathSegment struct {
	p0, p1 mgl64.Vec3
	m0, m1 mgl64.Vec3
	curved bool
}

// pathSample is one row of the cumulative arc length table.
type pathSample struct {
	dist float64 // arc length from the path start
	seg  int
	u    float64 // curve parameter within the segment
}

// NewPath builds a path through the given control points in order.
// Points without tangents produce straight segments; points with
// tangents produce Hermite curves. A single point is a valid zero-length
// path; an empty slice is an error.
func NewPath(points []ControlPoint) (*Path, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: path needs at least one control point", ErrInvalidArgument)
	}
	p := &Path{points: append([]ControlPoint(nil), points...)}
	p.build()
	return p, nil
}

// NewLinePath builds a path of straight segments through positions.
// Shorthand for NewPath with tangent-free control points.
func NewLinePath(positions ...mgl64.Vec3) (*Path, error) {
	points := make([]ControlPoint, len(positions))
	for i, pos := range positions {
		points[i].Position = pos
	}
	return NewPath(points)
}

// build flattens every segment into the cumulative arc length table.
// Untangented segments are exactly linear, so one subdivision suffices;
// curved segments get curveSteps.
func (p *Path) build() {
	if len(p.points) < 2 {
		p.samples = []pathSample{{}}
		return
	}
	p.segs = make([]pathSegment, len(p.points)-1)
	zero := mgl64.Vec3{}
	for i := range p.segs {
		a, b := p.points[i], p.points[i+1]
		chord := b.Position.Sub(a.Position)
		seg := pathSegment{p0: a.Position, p1: b.Position, m0: chord, m1: chord}
		if a.Tangent != zero {
			seg.m0 = a.Tangent
			seg.curved = true
		}
		if b.Tangent != zero {
			seg.m1 = b.Tangent
			seg.curved = true
		}
		p.segs[i] = seg
	}

	prev := p.points[0].Position
	for i, seg := range p.segs {
		steps := 1
		if seg.curved {
			steps = curveSteps
		}
		p.samples = append(p.samples, pathSample{dist: p.length, seg: i})
		for k := 1; k <= steps; k++ {
			u := float64(k) / float64(steps)
			pos := hermite(seg, u)
			p.length += pos.Sub(prev).Len()
			prev = pos
			p.samples = append(p.samples, pathSample{dist: p.length, seg: i, u: u})
		}
	}
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	return p.length
}

// ControlPoints returns a copy of the path's control points.
func (p *Path) ControlPoints() []ControlPoint {
	return append([]ControlPoint(nil), p.points...)
}

// PositionAt returns the point at the given distance along the path.
// Distances are clamped to [0, Length]. A zero-length path always
// returns its single position.
func (p *Path) PositionAt(dist float64) mgl64.Vec3 {
	if p.length == 0 {
		return p.points[0].Position
	}
	seg, u := p.locate(dist)
	return hermite(p.segs[seg], u)
}

// TangentAt returns the unit tangent at the given distance along the
// path. Distances are clamped to [0, Length]. A path with no extent
// returns the zero vector.
func (p *Path) TangentAt(dist float64) mgl64.Vec3 {
	if p.length == 0 {
		return mgl64.Vec3{}
	}
	seg, u := p.locate(dist)
	d := hermiteDeriv(p.segs[seg], u)
	ln := d.Len()
	if ln < 1e-12 {
		return mgl64.Vec3{}
	}
	return d.Mul(1 / ln)
}

// locate maps a distance along the path to a segment index and curve
// parameter via binary search over the arc length table.
func (p *Path) locate(dist float64) (int, float64) {
	if dist <= 0 {
		first := p.samples[0]
		return first.seg, first.u
	}
	if dist >= p.length {
		last := p.samples[len(p.samples)-1]
		return last.seg, last.u
	}
	k := sort.Search(len(p.samples), func(i int) bool {
		return p.samples[i].dist >= dist
	})
	a, b := p.samples[k-1], p.samples[k]
	if a.seg != b.seg || b.dist == a.dist {
		return b.seg, b.u
	}
	t := (dist - a.dist) / (b.dist - a.dist)
	return a.seg, a.u + (b.u-a.u)*t
}

// hermite evaluates the cubic Hermite basis on seg at parameter u. When
// both tangents equal the chord the cubic collapses to the straight line
// from p0 to p1.
func hermite(seg pathSegment, u float64) mgl64.Vec3 {
	u2 := u * u
	u3 := u2 * u
	out := seg.p0.Mul(2*u3 - 3*u2 + 1)
	out = out.Add(seg.m0.Mul(u3 - 2*u2 + u))
	out = out.Add(seg.p1.Mul(-2*u3 + 3*u2))
	return out.Add(seg.m1.Mul(u3 - u2))
}

// hermiteDeriv evaluates the derivative of the Hermite basis on seg at u.
func hermiteDeriv(seg pathSegment, u float64) mgl64.Vec3 {
	u2 := u * u
	out := seg.p0.Mul(6*u2 - 6*u)
	out = out.Add(seg.m0.Mul(3*u2 - 4*u + 1))
	out = out.Add(seg.p1.Mul(-6*u2 + 6*u))
	return out.Add(seg.m1.Mul(3*u2 - 2*u))
}

package grove

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Heightfield is a regular grid of height samples over a rectangular
// region, bilinearly interpolated between samples. It provides the
// terrain side of surface alignment without an engine attached.
type Heightfield struct {
	region  Bounds
	cols    int // samples across X
	rows    int // samples across Y
	heights []float64
}

// NewHeightfield builds a heightfield from row-major samples:
// heights[row*cols+col] is the height at that column and row, with row
// zero along MinY. Both dimensions need at least two samples and the
// region must span a non-empty rectangle.
func NewHeightfield(region Bounds, cols, rows int, heights []float64) (*Heightfield, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: heightfield needs at least 2x2 samples, got %dx%d", ErrInvalidArgument, cols, rows)
	}
	if !region.valid() || region.Width() == 0 || region.Height() == 0 {
		return nil, fmt.Errorf("%w: heightfield region %+v must span a non-empty rectangle", ErrInvalidArgument, region)
	}
	if len(heights) != cols*rows {
		return nil, fmt.Errorf("%w: heightfield wants %d samples, got %d", ErrInvalidArgument, cols*rows, len(heights))
	}
	return &Heightfield{
		region:  region,
		cols:    cols,
		rows:    rows,
		heights: append([]float64(nil), heights...),
	}, nil
}

// NewHeightfieldFunc builds a heightfield by sampling fn at every grid
// point.
func NewHeightfieldFunc(region Bounds, cols, rows int, fn func(x, y float64) float64) (*Heightfield, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: heightfield needs at least 2x2 samples, got %dx%d", ErrInvalidArgument, cols, rows)
	}
	heights := make([]float64, 0, cols*rows)
	for r := range rows {
		y := region.MinY + region.Height()*float64(r)/float64(rows-1)
		for c := range cols {
			x := region.MinX + region.Width()*float64(c)/float64(cols-1)
			heights = append(heights, fn(x, y))
		}
	}
	return NewHeightfield(region, cols, rows, heights)
}

// Region returns the rectangle the heightfield covers.
func (h *Heightfield) Region() Bounds {
	return h.region
}

// HeightAt returns the bilinearly interpolated height at (x, y).
// Positions outside the region clamp to its edge.
func (h *Heightfield) HeightAt(x, y float64) float64 {
	c, r, fx, fy := h.cell(x, y)
	h00 := h.at(c, r)
	h10 := h.at(c+1, r)
	h01 := h.at(c, r+1)
	h11 := h.at(c+1, r+1)
	bottom := h00 + (h10-h00)*fx
	top := h01 + (h11-h01)*fx
	return bottom + (top-bottom)*fy
}

// NormalAt returns the upward unit normal of the interpolated surface
// at (x, y).
func (h *Heightfield) NormalAt(x, y float64) mgl64.Vec3 {
	c, r, fx, fy := h.cell(x, y)
	h00 := h.at(c, r)
	h10 := h.at(c+1, r)
	h01 := h.at(c, r+1)
	h11 := h.at(c+1, r+1)
	cellW := h.region.Width() / float64(h.cols-1)
	cellH := h.region.Height() / float64(h.rows-1)
	// Partials of the bilinear patch: each varies linearly in the other
	// axis' fraction.
	dx := ((h10 - h00) + ((h11-h01)-(h10-h00))*fy) / cellW
	dy := ((h01 - h00) + ((h11-h10)-(h01-h00))*fx) / cellH
	return mgl64.Vec3{-dx, -dy, 1}.Normalize()
}

// Trace is the downward cast of TraceFunc against the heightfield: it
// hits when the surface under origin lies within maxDist below it.
// Origins outside the region, or already beneath the surface, miss.
func (h *Heightfield) Trace(origin mgl64.Vec3, maxDist float64) (SurfaceHit, bool) {
	x, y := origin.X(), origin.Y()
	if !h.region.Contains(x, y) {
		return SurfaceHit{}, false
	}
	height := h.HeightAt(x, y)
	drop := origin.Z() - height
	if drop < 0 || drop > maxDist {
		return SurfaceHit{}, false
	}
	return SurfaceHit{
		Point:  mgl64.Vec3{x, y, height},
		Normal: h.NormalAt(x, y),
	}, true
}

// cell locates the grid cell containing (x, y) after clamping to the
// region, returning the cell's lower corner indices and the fractional
// position within the cell.
func (h *Heightfield) cell(x, y float64) (c, r int, fx, fy float64) {
	cx := (clamp(x, h.region.MinX, h.region.MaxX) - h.region.MinX) / h.region.Width() * float64(h.cols-1)
	cy := (clamp(y, h.region.MinY, h.region.MaxY) - h.region.MinY) / h.region.Height() * float64(h.rows-1)
	c = min(int(cx), h.cols-2)
	r = min(int(cy), h.rows-2)
	return c, r, cx - float64(c), cy - float64(r)
}

func (h *Heightfield) at(c, r int) float64 {
	return h.heights[r*h.cols+c]
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

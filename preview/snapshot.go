package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/grove"
)

// SnapshotConfig controls the output of SavePNG.
type SnapshotConfig struct {
	// Width and Height are the image dimensions in pixels. Zero values
	// default to 1024x768.
	Width  int
	Height int
	// Padding is the margin in pixels kept around the layout. Zero
	// defaults to 48.
	Padding int
	// Background fills the canvas. The zero value defaults to the same
	// dark slate the windowed preview uses.
	Background color.RGBA
	// Paths are drawn as polylines under the placement dots.
	Paths []*grove.Path
}

// SavePNG plots the batches into a PNG file without opening a window.
// The layout is scaled to fit the canvas, the same way the windowed view
// fits itself on its first frame.
func SavePNG(path string, batches []grove.Batch, cfg SnapshotConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Padding <= 0 {
		cfg.Padding = fitPadding
	}
	bg := cfg.Background
	if bg == (color.RGBA{}) {
		bg = color.RGBA{R: 18, G: 22, B: 28, A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}

	if minX, minY, maxX, maxY, ok := layoutBounds(batches, cfg.Paths); ok {
		pr := fitProjection(minX, minY, maxX, maxY, cfg.Width, cfg.Height, cfg.Padding)
		renderLayout(img, pr, batches, cfg.Paths)
	}

	if err := writePNG(path, img); err != nil {
		return fmt.Errorf("grove: snapshot: %w", err)
	}
	return nil
}

// renderLayout plots paths first, then one dot plus yaw tick per transform.
func renderLayout(img *image.NRGBA, pr projection, batches []grove.Batch, paths []*grove.Path) {
	for _, p := range paths {
		if p == nil {
			continue
		}
		length := p.Length()
		prev := p.PositionAt(0)
		for i := 1; i <= pathSamples; i++ {
			pos := p.PositionAt(length * float64(i) / pathSamples)
			x0, y0 := pr.apply(prev.X(), prev.Y())
			x1, y1 := pr.apply(pos.X(), pos.Y())
			drawLine(img, x0, y0, x1, y1, pathColor)
			prev = pos
		}
	}

	for _, b := range batches {
		col := KindColor(b.Kind)
		for i := range b.Transforms {
			t := &b.Transforms[i]
			cx, cy := pr.apply(t.Position.X(), t.Position.Y())
			r := dotRadius * t.Scale.X()
			if r <= 0 {
				r = dotRadius
			}
			fillCircle(img, cx, cy, r, col)

			yaw := mgl64.DegToRad(t.Rotation.Yaw)
			drawLine(img, cx, cy, cx+tickLength*math.Cos(yaw), cy+tickLength*math.Sin(yaw), col)
		}
	}
}

// --- Pixel primitives ---

func setPixel(img *image.NRGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

// fillCircle plots a filled circle, testing pixel centers against the radius.
func fillCircle(img *image.NRGBA, cx, cy, r float64, col color.RGBA) {
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				setPixel(img, x, y, col)
			}
		}
	}
}

// drawLine plots a 1px line by stepping one pixel at a time.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float64, col color.RGBA) {
	steps := int(math.Hypot(x1-x0, y1-y0)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPixel(img, int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), col)
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

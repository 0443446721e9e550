package preview

import (
	"image/color"
	"math"

	"github.com/cespare/xxhash/v2"
)

// KindColor derives a stable color for a kind string by hashing it onto
// the hue wheel. The same kind gets the same color across runs and
// machines, so side-by-side snapshots stay comparable.
func KindColor(kind string) color.RGBA {
	hue := float64(xxhash.Sum64String(kind)%360) / 360
	r, g, b := hsvToRGB(hue, 0.65, 0.95)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

// hsvToRGB converts HSV (all [0,1]) to RGB.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h -= math.Floor(h)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	}
	return 0, 0, 0
}

package preview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD prints frame rates and layout stats in the top-left corner.
func (v *View) drawHUD(screen *ebiten.Image) {
	total := 0
	for _, b := range v.batches {
		total += len(b.Transforms)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nplaced: %d  zoom: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), total, v.zoom))
}

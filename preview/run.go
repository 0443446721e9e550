package preview

import "github.com/hajimehoshi/ebiten/v2"

const (
	defaultWidth  = 1024
	defaultHeight = 768
)

// RunConfig configures the preview window.
type RunConfig struct {
	// Title is the window title. Defaults to "grove preview".
	Title string
	// Width and Height are the initial window dimensions in pixels.
	// Zero values default to 1024x768.
	Width  int
	Height int
	// ShowFPS overlays frame rates and layout stats in the corner.
	ShowFPS bool
}

// Run opens a resizable window and drives the view until it is closed.
func Run(v *View, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "grove preview"
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}

	v.ShowFPS = cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Package preview renders grove layouts top-down with Ebitengine.
//
// [View] implements ebiten.Game: every placed transform is drawn as a dot
// with a yaw tick, colored by kind, on top of any registered paths. The
// view fits itself to the layout on the first frame; pan with the arrow
// keys and zoom with the mouse wheel.
//
//	v := preview.New(batches...)
//	v.AddPath(road)
//	if err := preview.Run(v, preview.RunConfig{Title: "forest layout"}); err != nil {
//		log.Fatal(err)
//	}
//
// [SavePNG] plots the same layout straight to a PNG file without opening
// a window, for headless tools and tests.
package preview

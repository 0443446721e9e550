package preview

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/grove"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// fitPadding is the margin in pixels kept around the layout when the
	// view fits itself to the content.
	fitPadding = 48

	dotRadius  = 3.5
	tickLength = 9.0
	pathWidth  = 1.5

	markerRadius = 6.0

	panSpeed = 300.0 // world units per second at zoom 1
	zoomStep = 1.1   // zoom factor per wheel notch
	minZoom  = 0.01
	maxZoom  = 100.0

	circleSegments = 12
	pathSamples    = 64
)

var (
	pathColor   = color.RGBA{R: 90, G: 96, B: 104, A: 255}
	markerColor = color.RGBA{R: 255, G: 196, B: 64, A: 255}
)

// pathMarker animates a highlight dot along a path.
type pathMarker struct {
	path  *grove.Path
	tween *gween.Tween
	dist  float64
}

// View renders placement batches and paths top-down. It implements
// ebiten.Game, so it can be passed to [Run] or embedded in a larger game
// loop. World X maps to screen X and world Y to screen Y; Z is ignored.
type View struct {
	// ClearColor fills the background each frame.
	ClearColor color.RGBA
	// ShowFPS overlays frame rates and layout stats in the corner.
	ShowFPS bool

	batches []grove.Batch
	paths   []*grove.Path
	marker  *pathMarker

	camX, camY float64 // world position at the screen center
	zoom       float64 // screen pixels per world unit
	fitted     bool

	screenW, screenH int

	verts []ebiten.Vertex
	inds  []uint32
}

// New creates a view showing the given batches. More content can be added
// with AddBatch and AddPath before or between frames.
func New(batches ...grove.Batch) *View {
	return &View{
		ClearColor: color.RGBA{R: 18, G: 22, B: 28, A: 255},
		batches:    batches,
		zoom:       1,
	}
}

// AddBatch adds a batch of placed transforms to the view and refits the
// camera on the next frame.
func (v *View) AddBatch(b grove.Batch) {
	v.batches = append(v.batches, b)
	v.fitted = false
}

// AddPath adds a path, drawn as a polyline under the placement dots.
func (v *View) AddPath(p *grove.Path) {
	if p == nil {
		return
	}
	v.paths = append(v.paths, p)
	v.fitted = false
}

// FollowPath animates a highlight marker along the path over duration
// seconds, restarting from the beginning when it arrives. A nil easeFn
// moves the marker linearly. Passing a nil path removes the marker.
func (v *View) FollowPath(p *grove.Path, duration float32, easeFn ease.TweenFunc) {
	if p == nil {
		v.marker = nil
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	v.marker = &pathMarker{
		path:  p,
		tween: gween.New(0, float32(p.Length()), duration, easeFn),
	}
}

// Update advances the marker animation and handles pan and zoom input.
func (v *View) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	step := float64(dt) * panSpeed / v.zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camX += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camY -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camY += step
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		v.zoom *= math.Pow(zoomStep, wheelY)
		v.zoom = math.Max(minZoom, math.Min(v.zoom, maxZoom))
	}

	if v.marker != nil {
		val, done := v.marker.tween.Update(dt)
		v.marker.dist = float64(val)
		if done {
			v.marker.tween.Reset()
		}
	}
	return nil
}

// Draw renders paths, placement dots, and the marker into screen.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.ClearColor)
	v.fitOnce()

	v.verts = v.verts[:0]
	v.inds = v.inds[:0]

	for _, p := range v.paths {
		v.appendPath(p)
	}
	for _, b := range v.batches {
		col := KindColor(b.Kind)
		for i := range b.Transforms {
			v.appendTransform(&b.Transforms[i], col)
		}
	}
	if v.marker != nil {
		pos := v.marker.path.PositionAt(v.marker.dist)
		sx, sy := v.worldToScreen(pos.X(), pos.Y())
		v.appendCircle(sx, sy, markerRadius, markerColor)
	}

	v.flush(screen)

	if v.ShowFPS {
		v.drawHUD(screen)
	}
}

// Layout reports the logical screen size. The view renders 1:1 with the
// window, so resizing the window shows more of the world.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.screenW, v.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// fitOnce centers and zooms the camera so all content is visible. Runs on
// the first frame after content changes, once the screen size is known.
func (v *View) fitOnce() {
	if v.fitted || v.screenW == 0 || v.screenH == 0 {
		return
	}
	v.fitted = true

	minX, minY, maxX, maxY, ok := layoutBounds(v.batches, v.paths)
	if !ok {
		return
	}
	pr := fitProjection(minX, minY, maxX, maxY, v.screenW, v.screenH, fitPadding)
	v.camX, v.camY = pr.camX, pr.camY
	v.zoom = pr.scale
}

func (v *View) worldToScreen(wx, wy float64) (sx, sy float64) {
	sx = (wx-v.camX)*v.zoom + float64(v.screenW)/2
	sy = (wy-v.camY)*v.zoom + float64(v.screenH)/2
	return
}

// appendPath emits a polyline approximating the path.
func (v *View) appendPath(p *grove.Path) {
	length := p.Length()
	if length == 0 {
		pos := p.PositionAt(0)
		sx, sy := v.worldToScreen(pos.X(), pos.Y())
		v.appendCircle(sx, sy, pathWidth, pathColor)
		return
	}
	prev := p.PositionAt(0)
	for i := 1; i <= pathSamples; i++ {
		pos := p.PositionAt(length * float64(i) / pathSamples)
		x0, y0 := v.worldToScreen(prev.X(), prev.Y())
		x1, y1 := v.worldToScreen(pos.X(), pos.Y())
		v.appendLine(x0, y0, x1, y1, pathWidth, pathColor)
		prev = pos
	}
}

// appendTransform emits one dot plus a tick showing the yaw direction.
// Dot radius is in screen pixels regardless of zoom, scaled by the
// transform's X scale so scatter jitter stays visible.
func (v *View) appendTransform(t *grove.Transform, col color.RGBA) {
	sx, sy := v.worldToScreen(t.Position.X(), t.Position.Y())
	r := dotRadius * t.Scale.X()
	if r <= 0 {
		r = dotRadius
	}
	v.appendCircle(sx, sy, r, col)

	yaw := mgl64.DegToRad(t.Rotation.Yaw)
	v.appendLine(sx, sy, sx+tickLength*math.Cos(yaw), sy+tickLength*math.Sin(yaw), 1, col)
}

// --- Triangle accumulation ---

// premultiply converts a color to premultiplied float components for
// ebiten vertices.
func premultiply(col color.RGBA) (r, g, b, a float32) {
	a = float32(col.A) / 255
	r = float32(col.R) / 255 * a
	g = float32(col.G) / 255 * a
	b = float32(col.B) / 255 * a
	return
}

// appendCircle emits a triangle fan approximating a filled circle.
func (v *View) appendCircle(cx, cy, radius float64, col color.RGBA) {
	cr, cg, cb, ca := premultiply(col)
	base := uint32(len(v.verts))

	v.verts = append(v.verts, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for i := 0; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		v.verts = append(v.verts, ebiten.Vertex{
			DstX: float32(cx + radius*math.Cos(angle)),
			DstY: float32(cy + radius*math.Sin(angle)),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := uint32(0); i < circleSegments; i++ {
		v.inds = append(v.inds, base, base+1+i, base+2+i)
	}
}

// appendLine emits a quad for a line segment of the given width.
func (v *View) appendLine(x0, y0, x1, y1, width float64, col color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	ln := math.Hypot(dx, dy)
	if ln == 0 {
		return
	}
	// Perpendicular half-width offset.
	nx := -dy / ln * width / 2
	ny := dx / ln * width / 2

	cr, cg, cb, ca := premultiply(col)
	base := uint32(len(v.verts))

	corners := [4][2]float64{
		{x0 + nx, y0 + ny},
		{x0 - nx, y0 - ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
	}
	for _, c := range corners {
		v.verts = append(v.verts, ebiten.Vertex{
			DstX: float32(c[0]), DstY: float32(c[1]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	// Two triangles: TL-TR-BL, TR-BR-BL
	v.inds = append(v.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flush submits accumulated vertices as a single DrawTriangles32 call
// against the white pixel texture.
func (v *View) flush(screen *ebiten.Image) {
	if len(v.verts) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	screen.DrawTriangles32(v.verts, v.inds, ensureWhitePixel(), &triOp)
}

// --- White pixel singleton (no sync.Once; the preview runs on the game loop only) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// for all untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// --- Layout fitting ---

// projection maps world XY coordinates onto a pixel canvas.
type projection struct {
	scale         float64 // pixels per world unit
	camX, camY    float64 // world position at the canvas center
	width, height float64 // canvas size in pixels
}

// fitProjection computes the scale and center that fit the given world
// rectangle into a width x height canvas with padding pixels of margin.
func fitProjection(minX, minY, maxX, maxY float64, width, height, padding int) projection {
	pr := projection{
		scale:  1,
		camX:   (minX + maxX) / 2,
		camY:   (minY + maxY) / 2,
		width:  float64(width),
		height: float64(height),
	}

	availW := math.Max(float64(width-2*padding), 1)
	availH := math.Max(float64(height-2*padding), 1)
	w := maxX - minX
	h := maxY - minY

	switch {
	case w <= 0 && h <= 0:
		// Single point; any scale shows it.
	case w <= 0:
		pr.scale = availH / h
	case h <= 0:
		pr.scale = availW / w
	default:
		pr.scale = math.Min(availW/w, availH/h)
	}
	return pr
}

// apply maps a world position to canvas pixel coordinates.
func (pr projection) apply(wx, wy float64) (x, y float64) {
	x = (wx-pr.camX)*pr.scale + pr.width/2
	y = (wy-pr.camY)*pr.scale + pr.height/2
	return
}

// layoutBounds returns the world-space extent of everything drawn: batch
// positions and sampled path points. ok is false when there is no content.
func layoutBounds(batches []grove.Batch, paths []*grove.Path) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	add := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		ok = true
	}

	for _, b := range batches {
		for i := range b.Transforms {
			p := b.Transforms[i].Position
			add(p.X(), p.Y())
		}
	}
	for _, p := range paths {
		if p == nil {
			continue
		}
		length := p.Length()
		for i := 0; i <= pathSamples; i++ {
			pos := p.PositionAt(length * float64(i) / pathSamples)
			add(pos.X(), pos.Y())
		}
	}
	return
}

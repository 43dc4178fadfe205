package render

import (
	"image"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/tk/geom"
	"github.com/gogpu/tk/internal/logx"
	"github.com/gogpu/tk/text"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default software rendering
//	ctx := render.NewContext(800, 600)
//
//	// Custom renderer (dependency injection)
//	ctx := render.NewContext(800, 600, render.WithRenderer(myRenderer))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer Renderer
	pixmap   *Pixmap
	fonts    *text.Collection
}

// WithRenderer sets a custom renderer for the Context.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Context. The pixmap dimensions
// should match the Context dimensions.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithFonts sets the font collection used for text measurement and
// drawing. Contexts created without one share a fresh empty collection.
func WithFonts(fc *text.Collection) ContextOption {
	return func(o *contextOptions) {
		o.fonts = fc
	}
}

// savedState is one entry of the paint-configuration stack. It captures
// exactly the paint and the path bounds tracker, not the clip or the
// transform.
type savedState struct {
	paint  Paint
	bounds boundsTracker
}

// Context is a 2D drawing surface backed by a retained pixmap. It keeps
// a current path, paint configuration, transform, clip stack, and a
// saved-state stack.
//
// The saved-state stack and the clip stack are parallel but distinct:
// Save and Restore manage paint configuration and path bounds, while
// Restore additionally drops one clip level if any is active. Restore
// without a matching Save is a no-op.
type Context struct {
	width  int
	height int

	pixmap   *Pixmap
	renderer Renderer
	fonts    *text.Collection

	path   *Path
	paint  Paint
	matrix Matrix

	background Color

	saved     []savedState
	clipStack []geom.Rect
}

// NewContext creates a drawing context of the given pixel size.
func NewContext(width, height int, opts ...ContextOption) *Context {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.pixmap == nil {
		o.pixmap = NewPixmap(width, height)
	}
	if o.renderer == nil {
		o.renderer = NewSoftwareRenderer()
	}
	if o.fonts == nil {
		o.fonts = text.NewCollection()
	}
	return &Context{
		width:    width,
		height:   height,
		pixmap:   o.pixmap,
		renderer: o.renderer,
		fonts:    o.fonts,
		path:     NewPath(),
		paint:    DefaultPaint(),
		matrix:   Identity(),
	}
}

// Width returns the context width in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the context height in pixels.
func (c *Context) Height() int {
	return c.height
}

// Fonts returns the context's font collection.
func (c *Context) Fonts() *text.Collection {
	return c.fonts
}

// Path state.

// BeginPath clears the current path and its tracked bounds.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// Path returns the current path.
func (c *Context) Path() *Path {
	return c.path
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(geom.Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line from the current point.
func (c *Context) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(geom.Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo adds a quadratic Bézier curve from the current point.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cp := c.matrix.TransformPoint(geom.Pt(cx, cy))
	p := c.matrix.TransformPoint(geom.Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo adds a cubic Bézier curve from the current point.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c1 := c.matrix.TransformPoint(geom.Pt(c1x, c1y))
	c2 := c.matrix.TransformPoint(geom.Pt(c2x, c2y))
	p := c.matrix.TransformPoint(geom.Pt(x, y))
	c.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// Arc adds a circular arc around (cx, cy). Only the center honors the
// current transform; the radius is in device units.
func (c *Context) Arc(cx, cy, r, angle1, angle2 float64) {
	center := c.matrix.TransformPoint(geom.Pt(cx, cy))
	c.path.Arc(center.X, center.Y, r, angle1, angle2)
}

// Rect adds an axis-aligned rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	if c.matrix.IsIdentity() {
		c.path.Rect(x, y, w, h)
		return
	}
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// Transform state.

// Identity resets the transform.
func (c *Context) Identity() {
	c.matrix = Identity()
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// Transform returns the current transform.
func (c *Context) Transform() Matrix {
	return c.matrix
}

// Translate appends a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale appends a scale to the current transform.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate appends a rotation to the current transform.
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// Paint state.

// SetFillBrush sets the brush used by Fill and FillText.
func (c *Context) SetFillBrush(b Brush) {
	c.paint.FillBrush = b
}

// SetStrokeBrush sets the brush used by Stroke.
func (c *Context) SetStrokeBrush(b Brush) {
	c.paint.StrokeBrush = b
}

// FillBrush returns the current fill brush.
func (c *Context) FillBrush() Brush {
	return c.paint.FillBrush
}

// StrokeBrush returns the current stroke brush.
func (c *Context) StrokeBrush() Brush {
	return c.paint.StrokeBrush
}

// SetLineWidth sets the stroke width in device units.
func (c *Context) SetLineWidth(w float64) {
	c.paint.LineWidth = w
}

// SetAlpha sets the global alpha multiplier in [0, 1].
func (c *Context) SetAlpha(a float64) {
	c.paint.Alpha = clamp01(a)
}

// SetFontFamily sets the font family used by text operations.
func (c *Context) SetFontFamily(family string) {
	c.paint.FontFamily = family
}

// SetFontSize sets the font size in pixels.
func (c *Context) SetFontSize(size float64) {
	c.paint.FontSize = size
}

// Drawing.

// Fill rasterizes the current path's filled region with the fill brush.
// An empty path or a brush that resolves to nothing is a no-op.
func (c *Context) Fill() error {
	return c.draw(c.paint.FillBrush, 0)
}

// Stroke rasterizes the current path's outline with the stroke brush.
func (c *Context) Stroke() error {
	return c.draw(c.paint.StrokeBrush, c.paint.LineWidth)
}

func (c *Context) draw(brush Brush, strokeWidth float64) error {
	frame, ok := c.path.Bounds()
	if !ok {
		return nil
	}
	device, err := ResolveBrush(brush, frame)
	if err != nil {
		return err
	}
	if device == nil {
		return nil
	}
	opts := DrawOptions{Alpha: c.paint.Alpha}
	if clip, ok := c.clip(); ok {
		opts.Clip = clip
		opts.HaveClip = true
	}
	if strokeWidth > 0 {
		return c.renderer.Stroke(c.pixmap, c.path, device, strokeWidth, opts)
	}
	return c.renderer.Fill(c.pixmap, c.path, device, opts)
}

// FillRect fills an axis-aligned rectangle without disturbing the
// current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	return c.drawRect(x, y, w, h, c.paint.FillBrush, 0)
}

// StrokeRect strokes an axis-aligned rectangle without disturbing the
// current path.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	return c.drawRect(x, y, w, h, c.paint.StrokeBrush, c.paint.LineWidth)
}

func (c *Context) drawRect(x, y, w, h float64, brush Brush, strokeWidth float64) error {
	saved := c.path
	c.path = NewPath()
	c.Rect(x, y, w, h)
	err := c.draw(brush, strokeWidth)
	c.path = saved
	return err
}

// Clipping.

// Clip intersects future drawing with the current path's bounding
// rectangle, pushing one clip level. The rectangle approximation stands
// in for an exact clip region.
func (c *Context) Clip() {
	bounds, ok := c.path.Bounds()
	if !ok {
		return
	}
	if prev, active := c.clip(); active {
		bounds = bounds.Intersect(prev)
	}
	c.clipStack = append(c.clipStack, bounds)
}

// clip returns the innermost active clip rectangle.
func (c *Context) clip() (geom.Rect, bool) {
	if len(c.clipStack) == 0 {
		return geom.Rect{}, false
	}
	return c.clipStack[len(c.clipStack)-1], true
}

// Save and restore.

// Save pushes the paint configuration and the current path bounds
// tracker state. Clip levels are not part of the snapshot.
func (c *Context) Save() {
	c.saved = append(c.saved, savedState{
		paint:  c.paint,
		bounds: c.path.boundsSnapshot(),
	})
}

// Restore pops one clip level if any is active, then restores the most
// recently saved paint configuration and path bounds. With no prior Save
// the clip level is still dropped but the call is otherwise a no-op.
func (c *Context) Restore() {
	if len(c.clipStack) > 0 {
		c.clipStack = c.clipStack[:len(c.clipStack)-1]
	}
	if len(c.saved) == 0 {
		return
	}
	state := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.paint = state.paint
	c.path.restoreBounds(state.bounds)
}

// Text.

// RegisterFont parses TTF or OTF data and registers it under the family
// name in the context's font collection.
func (c *Context) RegisterFont(family string, data []byte) error {
	return c.fonts.Register(family, data)
}

// MeasureText returns the advance width and line height of the string in
// the current font. A missing font family reports zero extents.
func (c *Context) MeasureText(s string) geom.Size {
	face, err := c.fonts.Face(c.paint.FontFamily, c.paint.FontSize)
	if err != nil {
		logx.Logger().Debug("render: measure text without font",
			slog.String("family", c.paint.FontFamily))
		return geom.Size{}
	}
	m := face.Metrics()
	return geom.Sz(face.Advance(s), m.Ascent+m.Descent)
}

// FillText draws the string with its top-left corner at (x, y) using the
// fill brush. Only solid brushes are supported; gradient text returns
// ErrUnsupportedBrush. A missing font family returns ErrNoFont.
func (c *Context) FillText(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	solid, ok := c.paint.FillBrush.(SolidBrush)
	if !ok {
		return ErrUnsupportedBrush
	}
	face, err := c.fonts.Face(c.paint.FontFamily, c.paint.FontSize)
	if err != nil {
		return ErrNoFont
	}
	p := c.matrix.TransformPoint(geom.Pt(x, y))

	dst := c.pixmap.RGBA()
	if clip, active := c.clip(); active {
		dst = dst.SubImage(clipRect(clip)).(*image.RGBA)
	}
	col := solid.Color
	if c.paint.Alpha < 1 {
		col = col.WithAlpha(col.A * c.paint.Alpha)
	}
	baseline := p.Y + face.Metrics().Ascent
	face.Draw(dst, s, p.X, baseline, col.Color())
	return nil
}

// clipRect converts a device clip rectangle to pixel bounds, rounding
// outward so partially covered edge pixels stay inside the clip. Plain
// int conversion would truncate toward zero and shift negative origins
// the wrong way.
func clipRect(clip geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(clip.X)), int(math.Floor(clip.Y)),
		int(math.Ceil(clip.MaxX())), int(math.Ceil(clip.MaxY())),
	)
}

// Framebuffer.

// SetBackground sets the color used by Clear.
func (c *Context) SetBackground(col Color) {
	c.background = col
}

// Clear fills the whole pixmap with the background color.
func (c *Context) Clear() {
	c.pixmap.Clear(c.background)
}

// Resize replaces the backing pixmap with one of the new size. The
// drawing state (paint, transform, clip, saves) is reset.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
	c.pixmap = NewPixmap(width, height)
	c.path = NewPath()
	c.paint = DefaultPaint()
	c.matrix = Identity()
	c.saved = nil
	c.clipStack = nil
}

// Pixmap returns the backing pixmap.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Data returns the raw RGBA pixel buffer.
func (c *Context) Data() []uint8 {
	return c.pixmap.Data()
}

// Image returns a copy of the framebuffer as an image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG writes the framebuffer to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the framebuffer as PNG to w.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics are vertical face metrics in device pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the face.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// face.
	Descent float64

	// Height is the recommended line height.
	Height float64
}

// Face is a font source instantiated at a size. It is not safe for
// concurrent use; create one per goroutine.
type Face struct {
	source *FontSource
	size   float64
	xface  font.Face
}

// NewFace creates a sized face from the source.
func NewFace(src *FontSource, size float64) (*Face, error) {
	xf, err := opentype.NewFace(src.Font(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &Face{source: src, size: size, xface: xf}, nil
}

// Source returns the font source this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	m := f.xface.Metrics()
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// Advance returns the horizontal advance of the string through the
// current global shaper.
func (f *Face) Advance(text string) float64 {
	return GetShaper().Advance(f, text)
}

// Measure returns the advance width of the string and the line height
// of the face.
func (f *Face) Measure(text string) (w, h float64) {
	m := f.Metrics()
	return f.Advance(text), m.Ascent + m.Descent
}

// Draw renders the string onto dst with the baseline at (x, y).
func (f *Face) Draw(dst draw.Image, text string, x, y float64, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.xface,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(text)
}

// builtinAdvance measures with the x/image face's own advances.
func (f *Face) builtinAdvance(text string) float64 {
	return fromFixed(font.MeasureString(f.xface, text))
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

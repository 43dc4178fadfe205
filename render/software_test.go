package render

import (
	"testing"

	"github.com/gogpu/tk/geom"
)

func TestSoftwareFillRect(t *testing.T) {
	pm := NewPixmap(20, 20)
	p := NewPath()
	p.Rect(4, 4, 10, 10)

	r := NewSoftwareRenderer()
	err := r.Fill(pm, p, DeviceColor{Color: Red}, DrawOptions{Alpha: 1})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := pm.GetPixel(9, 9); got.R < 0.99 || got.A < 0.99 {
		t.Fatalf("inside = %+v, want opaque red", got)
	}
	if got := pm.GetPixel(1, 1); got.A != 0 {
		t.Fatalf("outside = %+v, want transparent", got)
	}
	if got := pm.GetPixel(9, 16); got.A != 0 {
		t.Fatalf("below rect = %+v, want transparent", got)
	}
}

func TestSoftwareFillRespectsClip(t *testing.T) {
	pm := NewPixmap(20, 20)
	p := NewPath()
	p.Rect(0, 0, 20, 20)

	r := NewSoftwareRenderer()
	err := r.Fill(pm, p, DeviceColor{Color: Blue}, DrawOptions{
		Alpha:    1,
		Clip:     geom.NewRect(5, 5, 5, 5),
		HaveClip: true,
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := pm.GetPixel(7, 7); got.B < 0.99 {
		t.Fatalf("inside clip = %+v, want blue", got)
	}
	if got := pm.GetPixel(15, 15); got.A != 0 {
		t.Fatalf("outside clip = %+v, want untouched", got)
	}
}

func TestSoftwareFillAlphaBlends(t *testing.T) {
	pm := NewPixmap(10, 10)
	p := NewPath()
	p.Rect(0, 0, 10, 10)

	r := NewSoftwareRenderer()
	err := r.Fill(pm, p, DeviceColor{Color: Red}, DrawOptions{Alpha: 0.5})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	got := pm.GetPixel(5, 5)
	if got.A < 0.45 || got.A > 0.55 {
		t.Fatalf("alpha = %v, want about 0.5", got.A)
	}
	// Straight alpha: the red channel stays at full intensity even
	// though the pixel is half transparent.
	if got.R < 0.98 {
		t.Fatalf("red = %v, want about 1 (straight alpha)", got.R)
	}
}

func TestBlendPixelStraightAlpha(t *testing.T) {
	tests := []struct {
		name string
		back Color
		src  Color
		want Color
	}{
		{
			name: "over transparent",
			back: Transparent,
			src:  Color{R: 1, A: 0.5},
			want: Color{R: 1, A: 0.5},
		},
		{
			name: "over half blue",
			back: Color{B: 1, A: 0.5},
			src:  Color{R: 1, A: 0.5},
			want: Color{R: 2.0 / 3, B: 1.0 / 3, A: 0.75},
		},
		{
			name: "opaque replaces",
			back: Color{B: 1, A: 0.5},
			src:  Color{R: 1, A: 1},
			want: Color{R: 1, A: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(1, 1)
			pm.SetPixel(0, 0, tt.back)
			pm.BlendPixel(0, 0, tt.src)
			got := pm.GetPixel(0, 0)
			if !colorNear(got, tt.want, 0.02) {
				t.Fatalf("blended = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func colorNear(a, b Color, eps float64) bool {
	near := func(x, y float64) bool {
		d := x - y
		return d < eps && d > -eps
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestSoftwareFillNonRectangular(t *testing.T) {
	// A triangle covering the lower-left half of the square.
	pm := NewPixmap(20, 20)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(0, 20)
	p.LineTo(20, 20)
	p.Close()

	r := NewSoftwareRenderer()
	err := r.Fill(pm, p, DeviceColor{Color: Black}, DrawOptions{Alpha: 1})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := pm.GetPixel(3, 16); got.A < 0.99 {
		t.Fatalf("lower-left = %+v, want filled", got)
	}
	if got := pm.GetPixel(16, 3); got.A != 0 {
		t.Fatalf("upper-right = %+v, want empty", got)
	}
}

func TestSoftwareStroke(t *testing.T) {
	pm := NewPixmap(30, 30)
	p := NewPath()
	p.MoveTo(5, 15)
	p.LineTo(25, 15)

	r := NewSoftwareRenderer()
	err := r.Stroke(pm, p, DeviceColor{Color: Red}, 4, DrawOptions{Alpha: 1})
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if got := pm.GetPixel(15, 15); got.R < 0.99 {
		t.Fatalf("on line = %+v, want red", got)
	}
	if got := pm.GetPixel(15, 5); got.A != 0 {
		t.Fatalf("far from line = %+v, want empty", got)
	}
}

func TestSoftwareStrokeJoinsCorners(t *testing.T) {
	pm := NewPixmap(40, 40)
	p := NewPath()
	p.Rect(10, 10, 20, 20)

	r := NewSoftwareRenderer()
	err := r.Stroke(pm, p, DeviceColor{Color: Red}, 4, DrawOptions{Alpha: 1})
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	// The round join fills the wedge outside both edge quads at each
	// corner.
	if got := pm.GetPixel(9, 9); got.R < 0.99 {
		t.Fatalf("corner join = %+v, want red", got)
	}
	if got := pm.GetPixel(20, 20); got.A != 0 {
		t.Fatalf("center = %+v, want empty", got)
	}
}

func TestSoftwareStrokeBlendsOncePerPixel(t *testing.T) {
	pm := NewPixmap(40, 40)
	p := NewPath()
	p.Rect(10, 10, 20, 20)

	r := NewSoftwareRenderer()
	err := r.Stroke(pm, p, DeviceColor{Color: Red}, 4, DrawOptions{Alpha: 0.5})
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	// (10, 10) lies under two edge quads and the corner cap; a single
	// combined fill still blends it exactly once.
	got := pm.GetPixel(10, 10)
	if got.A < 0.45 || got.A > 0.55 {
		t.Fatalf("corner alpha = %v, want about 0.5", got.A)
	}
}

func TestSoftwareZeroAlphaNoOp(t *testing.T) {
	pm := NewPixmap(10, 10)
	p := NewPath()
	p.Rect(0, 0, 10, 10)

	r := NewSoftwareRenderer()
	if err := r.Fill(pm, p, DeviceColor{Color: Red}, DrawOptions{Alpha: 0}); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := pm.GetPixel(5, 5); got.A != 0 {
		t.Fatalf("pixel = %+v, want untouched", got)
	}
}

package render

import (
	"image"
	"testing"

	"github.com/gogpu/tk/geom"
)

func TestContextFillEmptyPathNoOp(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillBrush(Solid(Red))
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill on empty path: %v", err)
	}
	for i, v := range ctx.Data() {
		if v != 0 {
			t.Fatalf("pixel byte %d = %d after empty fill", i, v)
		}
	}
}

func TestContextFillSolid(t *testing.T) {
	ctx := NewContext(20, 20)
	ctx.SetFillBrush(Solid(Red))
	ctx.Rect(5, 5, 10, 10)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	inside := ctx.Pixmap().GetPixel(10, 10)
	if inside.R < 0.99 || inside.A < 0.99 {
		t.Fatalf("inside pixel = %+v, want opaque red", inside)
	}
	outside := ctx.Pixmap().GetPixel(1, 1)
	if outside.A != 0 {
		t.Fatalf("outside pixel = %+v, want transparent", outside)
	}
}

func TestContextFillGradientAcrossShape(t *testing.T) {
	// Gradients resolve against the path bounds, not the canvas, so a
	// to-right ramp spans exactly the rectangle.
	ctx := NewContext(100, 20)
	g := LinearGradient(Directional{Direction: ToRight},
		GradientStop{Position: AutoPosition(), Color: Black},
		GradientStop{Position: AutoPosition(), Color: White},
	)
	ctx.SetFillBrush(WithGradient(g))
	ctx.Rect(20, 0, 60, 20)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	left := ctx.Pixmap().GetPixel(21, 10)
	right := ctx.Pixmap().GetPixel(78, 10)
	if left.R > 0.1 {
		t.Fatalf("left edge R = %v, want near 0", left.R)
	}
	if right.R < 0.9 {
		t.Fatalf("right edge R = %v, want near 1", right.R)
	}
}

func TestContextFillUnsupportedRadialSizing(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillBrush(WithGradient(Gradient{
		Kind: Radial{Sizing: ToFarthestSide},
		Stops: []GradientStop{
			{Position: AutoPosition(), Color: Red},
			{Position: AutoPosition(), Color: Blue},
		},
	}))
	ctx.Rect(0, 0, 10, 10)
	if err := ctx.Fill(); err == nil {
		t.Fatal("no error for unsupported sizing policy")
	}
}

func TestContextSaveRestorePaint(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillBrush(Solid(Red))
	ctx.SetLineWidth(3)
	ctx.SetAlpha(0.5)

	ctx.Save()
	ctx.SetFillBrush(Solid(Blue))
	ctx.SetLineWidth(7)
	ctx.SetAlpha(1)
	ctx.Restore()

	if b := ctx.FillBrush().(SolidBrush); b.Color != Red {
		t.Fatalf("fill brush = %+v, want red", b.Color)
	}
	if ctx.paint.LineWidth != 3 {
		t.Fatalf("line width = %v, want 3", ctx.paint.LineWidth)
	}
	if ctx.paint.Alpha != 0.5 {
		t.Fatalf("alpha = %v, want 0.5", ctx.paint.Alpha)
	}
}

func TestContextSaveRestoreBounds(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.MoveTo(10, 10)
	ctx.LineTo(20, 20)
	before, _ := ctx.Path().Bounds()

	ctx.Save()
	ctx.LineTo(90, 90)
	ctx.Restore()

	after, ok := ctx.Path().Bounds()
	if !ok {
		t.Fatal("bounds lost after restore")
	}
	if !rectApproxEq(before, after) {
		t.Fatalf("bounds = %+v, want %+v", after, before)
	}
}

func TestContextRestoreWithoutSave(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillBrush(Solid(Red))
	ctx.Restore()
	if b := ctx.FillBrush().(SolidBrush); b.Color != Red {
		t.Fatalf("restore without save changed paint: %+v", b.Color)
	}
}

func TestContextRestorePopsOneClipLevel(t *testing.T) {
	ctx := NewContext(100, 100)

	ctx.Rect(0, 0, 80, 80)
	ctx.Clip()
	ctx.BeginPath()
	ctx.Rect(0, 0, 40, 40)
	ctx.Clip()
	if len(ctx.clipStack) != 2 {
		t.Fatalf("clip depth = %d, want 2", len(ctx.clipStack))
	}

	// Restore pops a clip level even with no matching save.
	ctx.Restore()
	if len(ctx.clipStack) != 1 {
		t.Fatalf("clip depth after restore = %d, want 1", len(ctx.clipStack))
	}
	ctx.Restore()
	ctx.Restore() // below zero: clamped, no panic
	if len(ctx.clipStack) != 0 {
		t.Fatalf("clip depth = %d, want 0", len(ctx.clipStack))
	}
}

func TestContextClipIntersects(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.Rect(0, 0, 60, 60)
	ctx.Clip()
	ctx.BeginPath()
	ctx.Rect(40, 40, 60, 60)
	ctx.Clip()

	clip, ok := ctx.clip()
	if !ok {
		t.Fatal("no active clip")
	}
	want := geom.NewRect(40, 40, 20, 20)
	if !rectApproxEq(clip, want) {
		t.Fatalf("clip = %+v, want %+v", clip, want)
	}
}

func TestContextClipRestrictsFill(t *testing.T) {
	ctx := NewContext(50, 50)
	ctx.Rect(0, 0, 20, 50)
	ctx.Clip()
	ctx.BeginPath()
	ctx.SetFillBrush(Solid(Red))
	ctx.Rect(0, 0, 50, 50)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := ctx.Pixmap().GetPixel(10, 25); got.A < 0.99 {
		t.Fatalf("inside clip = %+v, want opaque", got)
	}
	if got := ctx.Pixmap().GetPixel(40, 25); got.A != 0 {
		t.Fatalf("outside clip = %+v, want untouched", got)
	}
}

func TestContextTranslateAffectsPath(t *testing.T) {
	ctx := NewContext(50, 50)
	ctx.Translate(10, 20)
	ctx.Rect(0, 0, 5, 5)
	got, _ := ctx.Path().Bounds()
	want := geom.NewRect(10, 20, 5, 5)
	if !rectApproxEq(got, want) {
		t.Fatalf("bounds = %+v, want %+v", got, want)
	}
}

func TestContextFillRectPreservesPath(t *testing.T) {
	ctx := NewContext(50, 50)
	ctx.MoveTo(1, 1)
	ctx.LineTo(2, 2)
	before, _ := ctx.Path().Bounds()

	ctx.SetFillBrush(Solid(Blue))
	if err := ctx.FillRect(10, 10, 20, 20); err != nil {
		t.Fatalf("FillRect: %v", err)
	}

	after, _ := ctx.Path().Bounds()
	if !rectApproxEq(before, after) {
		t.Fatalf("FillRect disturbed path bounds: %+v -> %+v", before, after)
	}
	if got := ctx.Pixmap().GetPixel(15, 15); got.B < 0.99 {
		t.Fatalf("rect pixel = %+v, want blue", got)
	}
}

func TestContextClearAndResize(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetBackground(White)
	ctx.Clear()
	if got := ctx.Pixmap().GetPixel(5, 5); got.R < 0.99 {
		t.Fatalf("cleared pixel = %+v, want white", got)
	}

	ctx.Resize(20, 30)
	if ctx.Width() != 20 || ctx.Height() != 30 {
		t.Fatalf("size = %dx%d, want 20x30", ctx.Width(), ctx.Height())
	}
	if got := ctx.Pixmap().GetPixel(5, 5); got.A != 0 {
		t.Fatalf("resized pixmap not blank: %+v", got)
	}
}

func TestClipRectRounding(t *testing.T) {
	tests := []struct {
		name string
		clip geom.Rect
		want image.Rectangle
	}{
		{"integral", geom.NewRect(2, 3, 10, 10), image.Rect(2, 3, 12, 13)},
		{"fractional max", geom.NewRect(0, 0, 19.2, 9.7), image.Rect(0, 0, 20, 10)},
		{"negative origin", geom.NewRect(-0.5, -1.5, 4, 4), image.Rect(-1, -2, 4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clipRect(tt.clip); got != tt.want {
				t.Fatalf("clipRect(%+v) = %v, want %v", tt.clip, got, tt.want)
			}
		})
	}
}

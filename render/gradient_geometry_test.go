package render

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tk/geom"
)

func twoStops() []GradientStop {
	return []GradientStop{
		{Position: AutoPosition(), Color: Red},
		{Position: AutoPosition(), Color: Blue},
	}
}

func pointApproxEq(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func resolveLinearBrush(t *testing.T, coords LinearCoords, frame geom.Rect) DeviceLinear {
	t.Helper()
	g := Gradient{Kind: Linear{Coords: coords}, Stops: twoStops()}
	db, err := ResolveBrush(WithGradient(g), frame)
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	lin, ok := db.(DeviceLinear)
	if !ok {
		t.Fatalf("resolved to %T, want DeviceLinear", db)
	}
	return lin
}

func TestResolveBrushSolid(t *testing.T) {
	db, err := ResolveBrush(Solid(Red), geom.NewRect(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	dc, ok := db.(DeviceColor)
	if !ok {
		t.Fatalf("resolved to %T, want DeviceColor", db)
	}
	if dc.Color != Red {
		t.Fatalf("color = %+v, want red", dc.Color)
	}
}

func TestResolveBrushSingleStopDegradesToSolid(t *testing.T) {
	g := LinearGradient(Directional{Direction: ToRight}, GradientStop{Position: AutoPosition(), Color: Green})
	db, err := ResolveBrush(WithGradient(g), geom.NewRect(0, 0, 100, 50))
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	dc, ok := db.(DeviceColor)
	if !ok {
		t.Fatalf("resolved to %T, want DeviceColor", db)
	}
	if dc.Color != Green {
		t.Fatalf("color = %+v, want green", dc.Color)
	}
}

func TestResolveBrushDegenerateFrame(t *testing.T) {
	g := LinearGradient(Directional{Direction: ToRight}, twoStops()...)
	db, err := ResolveBrush(WithGradient(g), geom.NewRect(10, 10, 0, 0))
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	if db != nil {
		t.Fatalf("degenerate frame resolved to %T, want nil no-op", db)
	}
}

func TestLinearDirectionEndpoints(t *testing.T) {
	frame := geom.NewRect(0, 0, 100, 50)
	tests := []struct {
		name       string
		dir        Direction
		start, end geom.Point
	}{
		{"to right", ToRight, geom.Pt(0, 25), geom.Pt(100, 25)},
		{"to left", ToLeft, geom.Pt(100, 25), geom.Pt(0, 25)},
		{"to top", ToTop, geom.Pt(50, 50), geom.Pt(50, 0)},
		{"to bottom", ToBottom, geom.Pt(50, 0), geom.Pt(50, 50)},
		{"to bottom right", ToBottomRight, geom.Pt(0, 0), geom.Pt(100, 50)},
		{"to top left", ToTopLeft, geom.Pt(100, 50), geom.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin := resolveLinearBrush(t, Directional{Direction: tt.dir}, frame)
			if !pointApproxEq(lin.Start, tt.start) || !pointApproxEq(lin.End, tt.end) {
				t.Fatalf("endpoints = %+v -> %+v, want %+v -> %+v",
					lin.Start, lin.End, tt.start, tt.end)
			}
		})
	}
}

func TestLinearDirectionFrameOffset(t *testing.T) {
	frame := geom.NewRect(20, 30, 100, 50)
	lin := resolveLinearBrush(t, Directional{Direction: ToRight}, frame)
	if !pointApproxEq(lin.Start, geom.Pt(20, 55)) || !pointApproxEq(lin.End, geom.Pt(120, 55)) {
		t.Fatalf("endpoints = %+v -> %+v", lin.Start, lin.End)
	}
}

func TestLinearAngleEndpoints(t *testing.T) {
	frame := geom.NewRect(0, 0, 100, 50)

	// 0 degrees points up: bottom-mid to top-mid.
	up := resolveLinearBrush(t, Angle{Radians: 0}, frame)
	if !pointApproxEq(up.Start, geom.Pt(50, 50)) || !pointApproxEq(up.End, geom.Pt(50, 0)) {
		t.Fatalf("0deg endpoints = %+v -> %+v", up.Start, up.End)
	}

	// 180 degrees is the same line with start and end swapped.
	down := resolveLinearBrush(t, Angle{Radians: math.Pi}, frame)
	if !pointApproxEq(down.Start, up.End) || !pointApproxEq(down.End, up.Start) {
		t.Fatalf("180deg endpoints = %+v -> %+v, want swap of %+v -> %+v",
			down.Start, down.End, up.Start, up.End)
	}

	// 90 degrees points right.
	right := resolveLinearBrush(t, Angle{Radians: math.Pi / 2}, frame)
	if !pointApproxEq(right.Start, geom.Pt(0, 25)) || !pointApproxEq(right.End, geom.Pt(100, 25)) {
		t.Fatalf("90deg endpoints = %+v -> %+v", right.Start, right.End)
	}

	// 270 degrees points left.
	left := resolveLinearBrush(t, Angle{Radians: 3 * math.Pi / 2}, frame)
	if !pointApproxEq(left.Start, geom.Pt(100, 25)) || !pointApproxEq(left.End, geom.Pt(0, 25)) {
		t.Fatalf("270deg endpoints = %+v -> %+v", left.Start, left.End)
	}
}

func TestLinearEndsOffsets(t *testing.T) {
	// Ends offsets are frame-relative.
	frame := geom.NewRect(10, 20, 100, 50)
	lin := resolveLinearBrush(t, Ends{Start: geom.Pt(0, 0), End: geom.Pt(100, 0)}, frame)
	if !pointApproxEq(lin.Start, geom.Pt(10, 20)) || !pointApproxEq(lin.End, geom.Pt(110, 20)) {
		t.Fatalf("endpoints = %+v -> %+v", lin.Start, lin.End)
	}
}

func TestRadialClosestSide(t *testing.T) {
	g := RadialGradient(false, twoStops()...)
	db, err := ResolveBrush(WithGradient(g), geom.NewRect(0, 0, 200, 100))
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	rad, ok := db.(DeviceRadial)
	if !ok {
		t.Fatalf("resolved to %T, want DeviceRadial", db)
	}
	if rad.Radius != 50 {
		t.Fatalf("radius = %v, want 50", rad.Radius)
	}
	if math.Abs(rad.ScaleX-0.5) > 1e-9 || rad.ScaleY != 1 {
		t.Fatalf("scales = (%v, %v), want (0.5, 1)", rad.ScaleX, rad.ScaleY)
	}
	if !pointApproxEq(rad.Center, geom.Pt(100, 50)) {
		t.Fatalf("center = %+v, want (100, 50)", rad.Center)
	}
}

func TestRadialForceCircle(t *testing.T) {
	g := RadialGradient(true, twoStops()...)
	db, err := ResolveBrush(WithGradient(g), geom.NewRect(0, 0, 200, 100))
	if err != nil {
		t.Fatalf("ResolveBrush: %v", err)
	}
	rad := db.(DeviceRadial)
	if rad.ScaleX != 1 || rad.ScaleY != 1 {
		t.Fatalf("scales = (%v, %v), want (1, 1)", rad.ScaleX, rad.ScaleY)
	}
}

func TestRadialUnsupportedSizing(t *testing.T) {
	g := Gradient{
		Kind:  Radial{Sizing: ToFarthestCorner},
		Stops: twoStops(),
	}
	_, err := ResolveBrush(WithGradient(g), geom.NewRect(0, 0, 100, 100))
	if !errors.Is(err, ErrUnsupportedGradientSizing) {
		t.Fatalf("err = %v, want ErrUnsupportedGradientSizing", err)
	}
}

func TestDeviceLinearSampling(t *testing.T) {
	lin := DeviceLinear{
		Start: geom.Pt(0, 0),
		End:   geom.Pt(100, 0),
		Stops: []ResolvedStop{
			{Position: 0, Color: Black},
			{Position: 1, Color: White},
		},
	}
	mid := lin.ColorAt(50, 123) // y is irrelevant for a horizontal axis
	if math.Abs(mid.R-0.5) > 1e-9 {
		t.Fatalf("midpoint R = %v, want 0.5", mid.R)
	}
	if got := lin.ColorAt(-10, 0); got != Black {
		t.Fatalf("before start = %+v, want black", got)
	}
}

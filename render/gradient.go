package render

import "github.com/gogpu/tk/geom"

// StopPosition locates a gradient stop along the gradient axis.
// It is one of three variants: automatic (interpolated between its
// neighbors), a fraction of the gradient length, or an absolute length in
// the gradient's own unit (pixels).
type StopPosition struct {
	kind  stopKind
	value float64
}

type stopKind uint8

const (
	stopAuto stopKind = iota
	stopFraction
	stopAbsolute
)

// AutoPosition returns a stop position that is interpolated between its
// explicitly positioned neighbors.
func AutoPosition() StopPosition {
	return StopPosition{kind: stopAuto}
}

// Fraction returns a stop position at the given fraction [0, 1] of the
// gradient length.
func Fraction(f float64) StopPosition {
	return StopPosition{kind: stopFraction, value: f}
}

// Absolute returns a stop position at the given absolute length along the
// gradient axis (same unit as the axis, typically pixels).
func Absolute(length float64) StopPosition {
	return StopPosition{kind: stopAbsolute, value: length}
}

// IsAuto reports whether the position must be interpolated.
func (s StopPosition) IsAuto() bool {
	return s.kind == stopAuto
}

// fraction resolves an explicit position to a unit fraction of the given
// axis length, clamped to at most 1. Must not be called on an Auto position.
func (s StopPosition) fraction(length float64) float64 {
	v := s.value
	if s.kind == stopAbsolute {
		if length <= 0 {
			return 0
		}
		v = s.value / length
	}
	if v > 1 {
		return 1
	}
	return v
}

// GradientStop is a color at a position along the gradient axis.
type GradientStop struct {
	Position StopPosition
	Color    Color
}

// Direction names the eight compass directions a linear gradient can cross
// its frame in.
type Direction int

const (
	ToTop Direction = iota
	ToTopRight
	ToRight
	ToBottomRight
	ToBottom
	ToBottomLeft
	ToLeft
	ToTopLeft
)

// Unit describes how a displacement component is resolved against the frame.
type Unit uint8

const (
	// Pixels means the value is used as-is.
	Pixels Unit = iota
	// Percent means the value is a percentage of the frame dimension.
	Percent
)

// Length is a displacement component with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Px is a convenience constructor for a pixel length.
func Px(v float64) Length {
	return Length{Value: v, Unit: Pixels}
}

// Pct is a convenience constructor for a percentage length.
func Pct(v float64) Length {
	return Length{Value: v, Unit: Percent}
}

func (l Length) pixels(dimension float64) float64 {
	if l.Unit == Percent {
		return l.Value / 100 * dimension
	}
	return l.Value
}

// Displacement shifts a gradient's resolved geometry within its frame.
type Displacement struct {
	X, Y Length
}

func (d Displacement) pixels(size geom.Size) geom.Point {
	return geom.Pt(d.X.pixels(size.Width), d.Y.pixels(size.Height))
}

// LinearCoords describes the axis of a linear gradient.
// This is a sealed interface: Ends, Angle, and Directional are the only
// implementations.
type LinearCoords interface {
	linearCoordsMarker()
}

// Ends defines the gradient line by two frame-relative points.
// The offsets are in frame units, not normalized.
type Ends struct {
	Start, End geom.Point
}

func (Ends) linearCoordsMarker() {}

// Angle defines the gradient line by an angle through the frame center,
// measured clockwise from "up", plus an optional displacement.
type Angle struct {
	Radians      float64
	Displacement Displacement
}

func (Angle) linearCoordsMarker() {}

// Directional defines the gradient line as one crossing the frame in a
// named compass direction, plus an optional displacement.
type Directional struct {
	Direction    Direction
	Displacement Displacement
}

func (Directional) linearCoordsMarker() {}

// RadialSizing selects how a radial gradient's radius relates to the frame.
type RadialSizing int

const (
	// ToClosestSide sizes the radius to half the smaller frame dimension.
	ToClosestSide RadialSizing = iota
	// ToClosestCorner is recognized but not implemented.
	ToClosestCorner
	// ToFarthestSide is recognized but not implemented.
	ToFarthestSide
	// ToFarthestCorner is recognized but not implemented.
	ToFarthestCorner
)

// GradientKind describes the shape of a gradient.
// This is a sealed interface: Linear and Radial are the only implementations.
type GradientKind interface {
	gradientKindMarker()
}

// Linear is a gradient along a straight axis.
type Linear struct {
	Coords LinearCoords
}

func (Linear) gradientKindMarker() {}

// Radial is a gradient radiating from the frame center.
type Radial struct {
	Sizing RadialSizing
	// ForceCircle suppresses the elliptical scaling applied to
	// non-square frames.
	ForceCircle bool
}

func (Radial) gradientKindMarker() {}

// Gradient describes a color gradient. Gradients are value types: cloned
// freely, no shared mutable state (Clone copies the stop slice).
type Gradient struct {
	Kind   GradientKind
	Stops  []GradientStop
	Repeat bool
}

// Clone returns a copy of the gradient with its own stop slice.
func (g Gradient) Clone() Gradient {
	stops := make([]GradientStop, len(g.Stops))
	copy(stops, g.Stops)
	return Gradient{Kind: g.Kind, Stops: stops, Repeat: g.Repeat}
}

// LinearGradient builds a linear gradient with the given coordinates and
// stops.
func LinearGradient(coords LinearCoords, stops ...GradientStop) Gradient {
	return Gradient{Kind: Linear{Coords: coords}, Stops: stops}
}

// RadialGradient builds a closest-side radial gradient with the given stops.
func RadialGradient(forceCircle bool, stops ...GradientStop) Gradient {
	return Gradient{Kind: Radial{Sizing: ToClosestSide, ForceCircle: forceCircle}, Stops: stops}
}

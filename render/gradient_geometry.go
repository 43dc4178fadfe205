package render

import (
	"errors"
	"math"

	"github.com/gogpu/tk/geom"
)

// ErrUnsupportedGradientSizing is returned when a radial gradient uses a
// sizing policy other than ToClosestSide. Callers must treat it as a hard
// stop for that draw call; there is no silent fallback color.
var ErrUnsupportedGradientSizing = errors.New("render: unsupported radial gradient sizing policy")

// DeviceBrush is a brush resolved into device coordinates against a target
// frame, ready for per-pixel sampling by a renderer.
type DeviceBrush interface {
	// ColorAt returns the color at the given device coordinates.
	ColorAt(x, y float64) Color
}

// DeviceColor is a resolved solid fill.
type DeviceColor struct {
	Color Color
}

// ColorAt implements DeviceBrush.
func (d DeviceColor) ColorAt(_, _ float64) Color {
	return d.Color
}

// DeviceLinear is a linear gradient with device-space endpoints and a
// resolved color ramp.
type DeviceLinear struct {
	Start, End geom.Point
	Stops      []ResolvedStop
	Repeat     bool
}

// ColorAt implements DeviceBrush by projecting the point onto the gradient
// line.
func (d DeviceLinear) ColorAt(x, y float64) Color {
	axis := d.End.Sub(d.Start)
	lengthSq := axis.Dot(axis)
	if lengthSq == 0 {
		if len(d.Stops) == 0 {
			return Transparent
		}
		return d.Stops[0].Color
	}
	t := geom.Pt(x, y).Sub(d.Start).Dot(axis) / lengthSq
	return colorAtOffset(d.Stops, t, d.Repeat)
}

// DeviceRadial is a radial gradient with a device-space center, radius, and
// the per-axis scale factors that turn the circle into an ellipse for
// non-square frames.
type DeviceRadial struct {
	Center         geom.Point
	Radius         float64
	ScaleX, ScaleY float64
	Stops          []ResolvedStop
	Repeat         bool
}

// ColorAt implements DeviceBrush.
func (d DeviceRadial) ColorAt(x, y float64) Color {
	if d.Radius <= 0 {
		if len(d.Stops) == 0 {
			return Transparent
		}
		return d.Stops[0].Color
	}
	dx := (x - d.Center.X) * d.ScaleX
	dy := (y - d.Center.Y) * d.ScaleY
	t := math.Sqrt(dx*dx+dy*dy) / d.Radius
	return colorAtOffset(d.Stops, t, d.Repeat)
}

// ResolveBrush resolves a brush against the bounding frame of the shape
// being painted, producing a device-space brush.
//
// Degenerate inputs (zero-area frame, zero-length gradient axis) return a
// nil DeviceBrush with a nil error: the draw call is a no-op, not a
// failure. A gradient with exactly one stop degrades to a solid color. A
// nil brush or a gradient with zero stops is a configuration error and
// panics.
func ResolveBrush(b Brush, frame geom.Rect) (DeviceBrush, error) {
	switch b := b.(type) {
	case SolidBrush:
		return DeviceColor{Color: b.Color}, nil
	case GradientBrush:
		return resolveGradient(b.Gradient, frame)
	case nil:
		panic("render: nil brush")
	default:
		panic("render: unknown brush type")
	}
}

func resolveGradient(g Gradient, frame geom.Rect) (DeviceBrush, error) {
	if len(g.Stops) == 0 {
		panic("render: gradient with no color stops")
	}
	if len(g.Stops) == 1 {
		return DeviceColor{Color: g.Stops[0].Color}, nil
	}

	switch k := g.Kind.(type) {
	case Linear:
		return resolveLinear(k.Coords, g, frame)
	case Radial:
		return resolveRadial(k, g, frame)
	default:
		panic("render: gradient without a kind")
	}
}

func resolveLinear(coords LinearCoords, g Gradient, frame geom.Rect) (DeviceBrush, error) {
	var start, end geom.Point

	switch c := coords.(type) {
	case Ends:
		// Offsets are frame-relative, not normalized.
		start = frame.Position().Add(c.Start)
		end = frame.Position().Add(c.End)
	case Angle:
		if frame.IsEmpty() {
			return nil, nil
		}
		start, end = angleEndpoints(c.Radians, frame)
		disp := c.Displacement.pixels(frame.Size())
		start = start.Add(disp)
		end = end.Add(disp)
	case Directional:
		if frame.IsEmpty() {
			return nil, nil
		}
		s, e := directionEndpoints(c.Direction, frame.Width, frame.Height)
		disp := c.Displacement.pixels(frame.Size())
		start = s.Add(frame.Position()).Add(disp)
		end = e.Add(frame.Position()).Add(disp)
	default:
		panic("render: linear gradient without coordinates")
	}

	length := end.Distance(start)
	if length == 0 {
		return nil, nil
	}
	return DeviceLinear{
		Start:  start,
		End:    end,
		Stops:  ResolveStops(g.Stops, length),
		Repeat: g.Repeat,
	}, nil
}

// angleEndpoints computes the gradient line through the frame center for an
// angle measured clockwise from "up". The line ends where the frame's
// midlines meet its edges: the half-vector z runs along the dominant axis
// selected by comparing the angle against atan(height/width), and its sign
// follows the gradient direction.
func angleEndpoints(radians float64, frame geom.Rect) (start, end geom.Point) {
	// Rotate 90 degrees so angle 0 points to the top, then normalize the
	// angle into [0, 2pi).
	rad := normalizeAngle(radians + math.Pi/2)

	w := frame.Width
	h := frame.Height
	c := math.Atan(h / w)

	var z geom.Point
	if rad >= 2*math.Pi-c || rad <= c || (rad >= math.Pi-c && rad <= math.Pi+c) {
		// The line exits through the left/right edges.
		z = geom.Pt(w/2, w*math.Sin(rad)/(2*math.Cos(rad)))
		if math.Cos(rad) > 0 {
			z = z.Neg()
		}
	} else {
		// The line exits through the top/bottom edges.
		z = geom.Pt(h*math.Cos(rad)/(2*math.Sin(rad)), h/2)
		if math.Sin(rad) > 0 {
			z = z.Neg()
		}
	}

	center := frame.Center()
	return center.Sub(z), center.Add(z)
}

// directionEndpoints maps the eight compass directions to frame-relative
// start and end points spanning the frame's edges or corners.
func directionEndpoints(d Direction, width, height float64) (start, end geom.Point) {
	midWidth := width / 2
	midHeight := height / 2
	switch d {
	case ToTop:
		return geom.Pt(midWidth, height), geom.Pt(midWidth, 0)
	case ToTopRight:
		return geom.Pt(0, height), geom.Pt(width, 0)
	case ToRight:
		return geom.Pt(0, midHeight), geom.Pt(width, midHeight)
	case ToBottomRight:
		return geom.Pt(0, 0), geom.Pt(width, height)
	case ToBottom:
		return geom.Pt(midWidth, 0), geom.Pt(midWidth, height)
	case ToBottomLeft:
		return geom.Pt(width, 0), geom.Pt(0, height)
	case ToLeft:
		return geom.Pt(width, midHeight), geom.Pt(0, midHeight)
	case ToTopLeft:
		return geom.Pt(width, height), geom.Pt(0, 0)
	default:
		panic("render: unknown gradient direction")
	}
}

func resolveRadial(r Radial, g Gradient, frame geom.Rect) (DeviceBrush, error) {
	if frame.IsEmpty() {
		return nil, nil
	}

	var radius float64
	scaleX, scaleY := 1.0, 1.0

	switch r.Sizing {
	case ToClosestSide:
		if frame.Width > frame.Height {
			scaleX = frame.Height / frame.Width
			radius = frame.Height / 2
		} else {
			scaleY = frame.Width / frame.Height
			radius = frame.Width / 2
		}
		if r.ForceCircle {
			scaleX, scaleY = 1.0, 1.0
		}
	default:
		return nil, ErrUnsupportedGradientSizing
	}

	return DeviceRadial{
		Center: frame.Center(),
		Radius: radius,
		ScaleX: scaleX,
		ScaleY: scaleY,
		Stops:  ResolveStops(g.Stops, radius*2),
		Repeat: g.Repeat,
	}, nil
}

package render

import (
	"math"

	"github.com/gogpu/tk/geom"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point geom.Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point geom.Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control geom.Point
	Point   geom.Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 geom.Point
	Control2 geom.Point
	Point    geom.Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path whose tight bounding rectangle is tracked
// incrementally as commands are appended. The tracked bounds cover every
// point reachable by the path, including the exact extrema of Bezier curves
// and arcs, not merely the control points.
type Path struct {
	elements []PathElement
	start    geom.Point // Starting point of current subpath
	current  geom.Point // Current point
	bounds   boundsTracker
}

// boundsTracker maintains the running min/max of all reachable path points.
type boundsTracker struct {
	min, max geom.Point
	tracked  bool
}

func (t *boundsTracker) add(p geom.Point) {
	if !t.tracked {
		t.min, t.max = p, p
		t.tracked = true
		return
	}
	t.min = t.min.Min(p)
	t.max = t.max.Max(p)
}

func (t *boundsTracker) rect() (geom.Rect, bool) {
	if !t.tracked {
		return geom.Rect{}, false
	}
	return geom.NewRect(t.min.X, t.min.Y, t.max.X-t.min.X, t.max.Y-t.min.Y), true
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.bounds.add(pt)
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.bounds.add(pt)
}

// QuadraticTo draws a quadratic Bezier curve from the current point.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := geom.Pt(cx, cy)
	pt := geom.Pt(x, y)
	p0 := p.current
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt

	p.bounds.add(p0)
	p.bounds.add(pt)

	// Fast path: a control point inside the chord's bounding box cannot
	// push the curve outside of it.
	lo := p0.Min(pt)
	hi := p0.Max(pt)
	if ctrl.X >= lo.X && ctrl.X <= hi.X && ctrl.Y >= lo.Y && ctrl.Y <= hi.Y {
		return
	}
	if v, ok := quadAxisExtremum(p0.X, ctrl.X, pt.X); ok {
		p.bounds.add(geom.Pt(v, p0.Y))
	}
	if v, ok := quadAxisExtremum(p0.Y, ctrl.Y, pt.Y); ok {
		p.bounds.add(geom.Pt(p0.X, v))
	}
}

// CubicTo draws a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := geom.Pt(c1x, c1y)
	ctrl2 := geom.Pt(c2x, c2y)
	pt := geom.Pt(x, y)
	p0 := p.current
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt

	p.bounds.add(p0)
	p.bounds.add(pt)

	if lo, hi, ok := cubicAxisExtrema(p0.X, ctrl1.X, ctrl2.X, pt.X); ok {
		p.bounds.add(geom.Pt(lo, p0.Y))
		p.bounds.add(geom.Pt(hi, p0.Y))
	}
	if lo, hi, ok := cubicAxisExtrema(p0.Y, ctrl1.Y, ctrl2.Y, pt.Y); ok {
		p.bounds.add(geom.Pt(p0.X, lo))
		p.bounds.add(geom.Pt(p0.X, hi))
	}
}

// Close closes the current subpath by drawing a line to the start point.
// Closing never changes the tracked bounds: the start point is already
// included.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rect adds an axis-aligned rectangle to the path.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians).
// The stored path elements approximate the arc with cubic segments; the
// tracked bounds use the exact circle extrema.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	lo, hi := arcExtrema(angle1, angle2)
	p.bounds.add(geom.Pt(cx+lo.X*r, cy+lo.Y*r))
	p.bounds.add(geom.Pt(cx+hi.X*r, cy+hi.Y*r))

	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into cubic segments of at most 90 degrees.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (<=90 degrees) as a cubic curve.
// Bounds are handled by Arc; the cubic recorder would only widen them.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.elements = append(p.elements, MoveTo{Point: geom.Pt(x1, y1)})
		p.start = geom.Pt(x1, y1)
	}
	p.elements = append(p.elements, CubicTo{
		Control1: geom.Pt(c1x, c1y),
		Control2: geom.Pt(c2x, c2y),
		Point:    geom.Pt(x2, y2),
	})
	p.current = geom.Pt(x2, y2)
}

// Bounds returns the tight bounding rectangle of all recorded commands.
// The second return value is false until at least one command has been
// recorded.
func (p *Path) Bounds() (geom.Rect, bool) {
	return p.bounds.rect()
}

// Clear removes all elements from the path and resets the tracked bounds.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = geom.Point{}
	p.current = geom.Point{}
	p.bounds = boundsTracker{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() geom.Point {
	return p.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.bounds = p.bounds
	return result
}

// boundsSnapshot captures the bounds tracker state for Context save/restore.
func (p *Path) boundsSnapshot() boundsTracker {
	return p.bounds
}

// restoreBounds restores a previously captured bounds tracker state.
func (p *Path) restoreBounds(t boundsTracker) {
	p.bounds = t
}

// quadAxisExtremum returns the interior extremum of a quadratic curve on one
// axis, if the derivative has a root. The parameter t = (p0-p1)/(p0-2p1+p2)
// is clamped to [0, 1] before evaluation.
func quadAxisExtremum(p0, p1, p2 float64) (float64, bool) {
	den := p0 - 2*p1 + p2
	if den == 0 {
		return 0, false
	}
	t := clamp01((p0 - p1) / den)
	s := 1 - t
	return s*s*p0 + 2*s*t*p1 + t*t*p2, true
}

// cubicAxisExtrema returns the interior extrema of a cubic curve on one axis.
// The derivative a*t^2 + 2b*t + c is solved via the b^2-ac discriminant;
// degenerate curves (a == 0) fall back to the linear root so no NaN can
// propagate into the bounds.
func cubicAxisExtrema(p0, p1, p2, p3 float64) (lo, hi float64, ok bool) {
	c := p1 - p0
	b := p0 - 2*p1 + p2
	a := -p0 + 3*p1 - 3*p2 + p3

	if a == 0 {
		if b == 0 {
			return 0, 0, false
		}
		t := clamp01(-c / (2 * b))
		v := evalCubic(p0, p1, p2, p3, t)
		return v, v, true
	}

	h := b*b - a*c
	if h <= 0 {
		return 0, 0, false
	}
	g := math.Sqrt(h)
	v1 := evalCubic(p0, p1, p2, p3, clamp01((-b-g)/a))
	v2 := evalCubic(p0, p1, p2, p3, clamp01((-b+g)/a))
	return math.Min(v1, v2), math.Max(v1, v2), true
}

func evalCubic(p0, p1, p2, p3, t float64) float64 {
	s := 1 - t
	return s*s*s*p0 + 3*s*s*t*p1 + 3*s*t*t*p2 + t*t*t*p3
}

// arcExtrema returns the unit-circle min and max points reached by an arc
// sweeping from angle1 to angle2. A cardinal extremum (0, 90, 180, 270
// degrees) is included only when it lies within the sweep; both sweep bounds
// are normalized into [0, 2pi) and the cardinals are tested in fixed order
// against [min, max] of the normalized pair.
func arcExtrema(angle1, angle2 float64) (lo, hi geom.Point) {
	a := geom.Pt(math.Cos(angle1), math.Sin(angle1))
	b := geom.Pt(math.Cos(angle2), math.Sin(angle2))
	lo = a.Min(b)
	hi = a.Max(b)

	n1 := normalizeAngle(angle1)
	n2 := normalizeAngle(angle2)
	minAngle := math.Min(n1, n2)
	maxAngle := math.Max(n1, n2)

	cardinals := [4]geom.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
	for i, pt := range cardinals {
		angle := float64(i) * (math.Pi / 2)
		if angle >= minAngle && angle <= maxAngle {
			lo = lo.Min(pt)
			hi = hi.Max(pt)
		}
	}
	return lo, hi
}

// normalizeAngle maps an angle into [0, 2pi).
func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

package render

import (
	"math"
	"sort"

	"github.com/gogpu/tk/geom"
)

// DrawOptions carries the per-call state a renderer needs beyond the brush.
type DrawOptions struct {
	// Alpha is the global alpha multiplier in [0, 1].
	Alpha float64

	// Clip restricts drawing to the given device rectangle when HaveClip
	// is set.
	Clip     geom.Rect
	HaveClip bool
}

// Renderer rasterizes paths onto a pixmap. The software renderer below is
// the default; alternative backends implement the same interface.
type Renderer interface {
	// Fill rasterizes the filled region of the path, sampling the brush
	// per pixel.
	Fill(pm *Pixmap, path *Path, brush DeviceBrush, opts DrawOptions) error

	// Stroke rasterizes the outline of the path with the given width.
	Stroke(pm *Pixmap, path *Path, brush DeviceBrush, width float64, opts DrawOptions) error
}

// SoftwareRenderer is a CPU scanline rasterizer operating directly on the
// pixmap's pixels with non-zero winding fills.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Curve flattening step counts. Fixed subdivision keeps the rasterizer
// simple and stays well below one device unit of error at UI scales.
const (
	quadSteps  = 16
	cubicSteps = 24
)

// Fill implements Renderer.
func (r *SoftwareRenderer) Fill(pm *Pixmap, path *Path, brush DeviceBrush, opts DrawOptions) error {
	if path.IsEmpty() || brush == nil || opts.Alpha <= 0 {
		return nil
	}
	fillPolygons(pm, flatten(path), brush, opts)
	return nil
}

// Stroke implements Renderer by expanding each flattened segment into a
// width-thick quad with round caps at every vertex. The quads and caps go
// through one combined winding fill, so their overlaps at joins cover each
// pixel exactly once.
func (r *SoftwareRenderer) Stroke(pm *Pixmap, path *Path, brush DeviceBrush, width float64, opts DrawOptions) error {
	if path.IsEmpty() || brush == nil || opts.Alpha <= 0 || width <= 0 {
		return nil
	}
	half := width / 2
	var outline [][]geom.Point
	for _, poly := range flatten(path) {
		for i := 0; i+1 < len(poly); i++ {
			a, b := poly[i], poly[i+1]
			d := b.Sub(a)
			length := d.Length()
			if length == 0 {
				continue
			}
			// Perpendicular offset of half the stroke width.
			n := geom.Pt(-d.Y/length*half, d.X/length*half)
			outline = append(outline, []geom.Point{
				a.Add(n), b.Add(n), b.Sub(n), a.Sub(n),
			})
		}
		for _, p := range poly {
			outline = append(outline, capPolygon(p, half))
		}
	}
	fillPolygons(pm, outline, brush, opts)
	return nil
}

// capSegments is the vertex count of the round join/cap polygon.
const capSegments = 16

// capPolygon approximates a circle of radius r around c, wound in the same
// direction as the stroke quads so overlapping windings never cancel.
func capPolygon(c geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, capSegments)
	for i := range pts {
		theta := -2 * math.Pi * float64(i) / capSegments
		pts[i] = geom.Pt(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
	}
	return pts
}

// flatten converts the path into polylines, one per subpath. Curves are
// subdivided with fixed step counts; arcs were already recorded as cubics.
func flatten(path *Path) [][]geom.Point {
	var polys [][]geom.Point
	var poly []geom.Point
	var start, current geom.Point

	flush := func() {
		if len(poly) > 1 {
			polys = append(polys, poly)
		}
		poly = nil
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			current = e.Point
			poly = append(poly, e.Point)
		case LineTo:
			poly = append(poly, e.Point)
			current = e.Point
		case QuadTo:
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				s := 1 - t
				pt := current.Mul(s * s).
					Add(e.Control.Mul(2 * s * t)).
					Add(e.Point.Mul(t * t))
				poly = append(poly, pt)
			}
			current = e.Point
		case CubicTo:
			for i := 1; i <= cubicSteps; i++ {
				t := float64(i) / cubicSteps
				s := 1 - t
				pt := current.Mul(s * s * s).
					Add(e.Control1.Mul(3 * s * s * t)).
					Add(e.Control2.Mul(3 * s * t * t)).
					Add(e.Point.Mul(t * t * t))
				poly = append(poly, pt)
			}
			current = e.Point
		case Close:
			if len(poly) > 0 {
				poly = append(poly, start)
				current = start
			}
		}
	}
	flush()
	return polys
}

// edgeCrossing is a scanline intersection with its winding direction.
type edgeCrossing struct {
	x   float64
	dir int
}

// fillPolygons runs a non-zero winding scanline fill over the polylines,
// sampling the brush at each covered pixel center. Open subpaths are
// closed implicitly by the wrap-around edge.
func fillPolygons(pm *Pixmap, polys [][]geom.Point, brush DeviceBrush, opts DrawOptions) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minY > maxY {
		return
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > pm.Height() {
		y1 = pm.Height()
	}
	if opts.HaveClip {
		if cy0 := int(math.Floor(opts.Clip.Y)); cy0 > y0 {
			y0 = cy0
		}
		if cy1 := int(math.Ceil(opts.Clip.MaxY())); cy1 < y1 {
			y1 = cy1
		}
	}

	var crossings []edgeCrossing
	for y := y0; y < y1; y++ {
		sy := float64(y) + 0.5
		crossings = crossings[:0]

		for _, poly := range polys {
			n := len(poly)
			for i := 0; i < n; i++ {
				a := poly[i]
				b := poly[(i+1)%n]
				if a.Y == b.Y {
					continue
				}
				lo, hi := a, b
				dir := 1
				if a.Y > b.Y {
					lo, hi = b, a
					dir = -1
				}
				if sy < lo.Y || sy >= hi.Y {
					continue
				}
				t := (sy - lo.Y) / (hi.Y - lo.Y)
				crossings = append(crossings, edgeCrossing{
					x:   lo.X + t*(hi.X-lo.X),
					dir: dir,
				})
			}
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool {
			return crossings[i].x < crossings[j].x
		})

		winding := 0
		for i := 0; i < len(crossings)-1; i++ {
			winding += crossings[i].dir
			if winding == 0 {
				continue
			}
			fillSpan(pm, y, crossings[i].x, crossings[i+1].x, brush, opts)
		}
	}
}

// fillSpan paints one horizontal span of a scanline.
func fillSpan(pm *Pixmap, y int, x0, x1 float64, brush DeviceBrush, opts DrawOptions) {
	if opts.HaveClip {
		x0 = math.Max(x0, opts.Clip.X)
		x1 = math.Min(x1, opts.Clip.MaxX())
	}
	ix0 := int(math.Floor(x0 + 0.5))
	ix1 := int(math.Ceil(x1 - 0.5))
	if ix0 < 0 {
		ix0 = 0
	}
	if ix1 > pm.Width() {
		ix1 = pm.Width()
	}
	sy := float64(y) + 0.5
	for x := ix0; x < ix1; x++ {
		c := brush.ColorAt(float64(x)+0.5, sy)
		if opts.Alpha < 1 {
			c.A *= opts.Alpha
		}
		pm.BlendPixel(x, y, c)
	}
}

package tk

import "github.com/gogpu/tk/geom"

// Visibility controls whether a widget is drawn and whether it occupies
// layout space.
type Visibility int

const (
	// Visible widgets are laid out and drawn.
	Visible Visibility = iota
	// Hidden widgets occupy layout space but are not drawn.
	Hidden
	// Collapsed widgets are skipped entirely; they measure to zero.
	Collapsed
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Collapsed:
		return "collapsed"
	}
	return "unknown"
}

// Alignment places a widget within the space its parent hands it.
type Alignment int

const (
	// Stretch expands the widget to fill the available space.
	Stretch Alignment = iota
	// Start aligns to the left or top edge.
	Start
	// Center centers the widget.
	Center
	// End aligns to the right or bottom edge.
	End
)

// Size returns the widget's extent along one axis given the available
// space. Stretch claims everything inside the margins; the other
// alignments keep the desired extent.
func (a Alignment) Size(available, desired, marginStart, marginEnd float64) float64 {
	if a == Stretch {
		s := available - marginStart - marginEnd
		if s < 0 {
			s = 0
		}
		return s
	}
	return desired
}

// Position returns the widget's offset along one axis within the
// available space, honoring margins.
func (a Alignment) Position(available, size, marginStart, marginEnd float64) float64 {
	switch a {
	case Center:
		return (available-size)/2 + marginStart - marginEnd
	case End:
		return available - size - marginEnd
	default:
		return marginStart
	}
}

// Thickness is a per-edge extent used for margins and padding.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform creates a thickness with the same extent on all edges.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the combined left and right extents.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the combined top and bottom extents.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Deflate shrinks the rectangle by the thickness on each edge.
func (t Thickness) Deflate(r geom.Rect) geom.Rect {
	return geom.NewRect(
		r.X+t.Left,
		r.Y+t.Top,
		r.Width-t.Horizontal(),
		r.Height-t.Vertical(),
	)
}

// Constraint bounds a widget's size. A positive Width or Height pins
// that axis; a zero Max means unbounded.
type Constraint struct {
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64
	Width     float64
	Height    float64
}

// FixedSize creates a constraint pinning both axes.
func FixedSize(w, h float64) Constraint {
	return Constraint{Width: w, Height: h}
}

// Perform clamps the size to the constraint.
func (c Constraint) Perform(s geom.Size) geom.Size {
	return geom.Sz(
		constrain(s.Width, c.MinWidth, c.MaxWidth, c.Width),
		constrain(s.Height, c.MinHeight, c.MaxHeight, c.Height),
	)
}

func constrain(v, min, max, fixed float64) float64 {
	if fixed > 0 {
		return fixed
	}
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	if v < 0 {
		v = 0
	}
	return v
}

package tk

import "github.com/gogpu/tk/geom"

// Orientation is the main axis of a StackLayout.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// StackLayout places children one after another along its orientation,
// separated by Spacing. The desired size is the children's sum along the
// main axis and their maximum across it.
type StackLayout struct {
	Orientation Orientation
	Spacing     float64
}

// NewStackLayout creates a stack layout with the given orientation.
func NewStackLayout(o Orientation) *StackLayout {
	return &StackLayout{Orientation: o}
}

// Measure implements the Layout interface.
func (l *StackLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	var main, cross float64
	visible := 0
	for _, child := range ctx.Tree.Children(e) {
		size := measureChild(ctx, child)
		if ctx.visibility(child) == Collapsed {
			continue
		}
		visible++
		if l.Orientation == Horizontal {
			main += size.Width
			cross = max(cross, size.Height)
		} else {
			main += size.Height
			cross = max(cross, size.Width)
		}
	}
	if visible > 1 {
		main += l.Spacing * float64(visible-1)
	}
	content := geom.Sz(cross, main)
	if l.Orientation == Horizontal {
		content = geom.Sz(main, cross)
	}
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface. Each child gets a slot of its
// desired extent along the main axis and the full stack extent across
// it, so cross-axis alignment still applies per child.
func (l *StackLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	offset := 0.0
	for _, child := range ctx.Tree.Children(e) {
		if ctx.visibility(child) == Collapsed {
			ctx.setBounds(child, geom.NewRect(bounds.X, bounds.Y, 0, 0))
			continue
		}
		desired := ctx.desired(child)
		var childSlot geom.Rect
		if l.Orientation == Horizontal {
			childSlot = geom.NewRect(bounds.X+offset, bounds.Y, desired.Width, bounds.Height)
			offset += desired.Width + l.Spacing
		} else {
			childSlot = geom.NewRect(bounds.X, bounds.Y+offset, bounds.Width, desired.Height)
			offset += desired.Height + l.Spacing
		}
		arrangeChild(ctx, child, childSlot)
	}
	return bounds.Size()
}

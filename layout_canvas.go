package tk

import "github.com/gogpu/tk/geom"

// CanvasLayout positions children absolutely. Each child's offset comes
// from its position component; its size comes from measurement. The
// canvas itself sizes to its constraint, or to the extent of its
// children when unbounded.
type CanvasLayout struct{}

// NewCanvasLayout creates a canvas layout.
func NewCanvasLayout() *CanvasLayout {
	return &CanvasLayout{}
}

// Measure implements the Layout interface.
func (l *CanvasLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	var content geom.Size
	for _, child := range ctx.Tree.Children(e) {
		size := measureChild(ctx, child)
		pos := GetOr(ctx.Store, child, ComponentPosition, geom.Point{})
		content = content.Max(geom.Sz(pos.X+size.Width, pos.Y+size.Height))
	}
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface.
func (l *CanvasLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	for _, child := range ctx.Tree.Children(e) {
		if ctx.visibility(child) == Collapsed {
			ctx.setBounds(child, geom.NewRect(bounds.X, bounds.Y, 0, 0))
			continue
		}
		pos := GetOr(ctx.Store, child, ComponentPosition, geom.Point{})
		desired := ctx.desired(child)
		childSlot := geom.NewRect(
			bounds.X+pos.X,
			bounds.Y+pos.Y,
			desired.Width,
			desired.Height,
		)
		arrangeChild(ctx, child, childSlot)
	}
	return bounds.Size()
}

package tk

import "github.com/gogpu/tk/geom"

// ScrollLayout gives its child unlimited space and shifts it by the
// node's scroll offset. The viewport itself sizes from its constraint,
// not from the child, so an oversized child overflows instead of
// growing the widget.
type ScrollLayout struct{}

// NewScrollLayout creates a scroll layout.
func NewScrollLayout() *ScrollLayout {
	return &ScrollLayout{}
}

// Measure implements the Layout interface.
func (l *ScrollLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	for _, child := range ctx.Tree.Children(e) {
		measureChild(ctx, child)
	}
	return finishMeasure(ctx, e, geom.Size{})
}

// Arrange implements the Layout interface. Children keep their desired
// size and are moved by the negated scroll offset, so offset (0, 20)
// reveals content 20 units down.
func (l *ScrollLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	offset := GetOr(ctx.Store, e, ComponentScroll, geom.Point{})
	for _, child := range ctx.Tree.Children(e) {
		if ctx.visibility(child) == Collapsed {
			ctx.setBounds(child, geom.NewRect(bounds.X, bounds.Y, 0, 0))
			continue
		}
		desired := ctx.desired(child)
		childSlot := geom.NewRect(
			bounds.X-offset.X,
			bounds.Y-offset.Y,
			desired.Width,
			desired.Height,
		)
		arrangeChild(ctx, child, childSlot)
	}
	return bounds.Size()
}

package tk

import "github.com/gogpu/tk/geom"

// FixedSizeLayout sizes a node from its own constraint, ignoring what
// its children want. Children are still measured and arranged inside
// the node's bounds. It is the usual root layout.
type FixedSizeLayout struct{}

// NewFixedSizeLayout creates a fixed-size layout.
func NewFixedSizeLayout() *FixedSizeLayout {
	return &FixedSizeLayout{}
}

// Measure implements the Layout interface.
func (l *FixedSizeLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	var content geom.Size
	for _, child := range ctx.Tree.Children(e) {
		content = content.Max(measureChild(ctx, child))
	}
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface.
func (l *FixedSizeLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	for _, child := range ctx.Tree.Children(e) {
		arrangeChild(ctx, child, bounds)
	}
	return bounds.Size()
}

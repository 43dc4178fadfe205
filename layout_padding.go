package tk

import "github.com/gogpu/tk/geom"

// PaddingLayout wraps its children with the node's padding: the node's
// desired size is the largest child plus padding, and children are
// arranged inside the padded content rectangle.
type PaddingLayout struct{}

// NewPaddingLayout creates a padding layout.
func NewPaddingLayout() *PaddingLayout {
	return &PaddingLayout{}
}

// Measure implements the Layout interface.
func (l *PaddingLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	var content geom.Size
	for _, child := range ctx.Tree.Children(e) {
		content = content.Max(measureChild(ctx, child))
	}
	padding := GetOr(ctx.Store, e, ComponentPadding, Thickness{})
	content = geom.Sz(
		content.Width+padding.Horizontal(),
		content.Height+padding.Vertical(),
	)
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface.
func (l *PaddingLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	padding := GetOr(ctx.Store, e, ComponentPadding, Thickness{})
	content := padding.Deflate(bounds)
	for _, child := range ctx.Tree.Children(e) {
		arrangeChild(ctx, child, content)
	}
	return bounds.Size()
}

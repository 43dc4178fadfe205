package tk

import "github.com/gogpu/tk/geom"

// finishMeasure clamps the content size to the node's constraint, adds
// the margin, and caches the result as the node's desired size.
func finishMeasure(ctx *LayoutContext, e Entity, content geom.Size) geom.Size {
	size := ctx.constraint(e).Perform(content)
	margin := ctx.margin(e)
	desired := geom.Sz(size.Width+margin.Horizontal(), size.Height+margin.Vertical())
	ctx.setDesired(e, desired)
	return desired
}

// collapseMeasure records a zero desired size for a collapsed node.
func collapseMeasure(ctx *LayoutContext, e Entity) geom.Size {
	ctx.setDesired(e, geom.Size{})
	return geom.Size{}
}

// placeWithin positions the node inside the slot its parent assigned,
// applying alignment and margin against the cached desired size, and
// writes the final bounds. The returned rectangle is the node's own
// bounds; strategies lay their children out inside it.
func placeWithin(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Rect {
	desired := ctx.desired(e)
	margin := ctx.margin(e)
	hAlign := GetOr(ctx.Store, e, ComponentHAlign, Stretch)
	vAlign := GetOr(ctx.Store, e, ComponentVAlign, Stretch)

	w := hAlign.Size(slot.Width, desired.Width-margin.Horizontal(), margin.Left, margin.Right)
	h := vAlign.Size(slot.Height, desired.Height-margin.Vertical(), margin.Top, margin.Bottom)
	x := slot.X + hAlign.Position(slot.Width, w, margin.Left, margin.Right)
	y := slot.Y + vAlign.Position(slot.Height, h, margin.Top, margin.Bottom)

	bounds := geom.NewRect(x, y, w, h)
	ctx.setBounds(e, bounds)
	return bounds
}

// arrangeChild dispatches the child's own layout strategy with the given
// slot. Collapsed children still receive zero bounds so stale geometry
// never leaks into rendering.
func arrangeChild(ctx *LayoutContext, child Entity, slot geom.Rect) geom.Size {
	if ctx.visibility(child) == Collapsed {
		ctx.setBounds(child, geom.NewRect(slot.X, slot.Y, 0, 0))
		return geom.Size{}
	}
	return ctx.layoutOf(child).Arrange(ctx, child, slot)
}

// measureChild dispatches the child's own layout strategy, short
// circuiting collapsed children.
func measureChild(ctx *LayoutContext, child Entity) geom.Size {
	if ctx.visibility(child) == Collapsed {
		return collapseMeasure(ctx, child)
	}
	return ctx.layoutOf(child).Measure(ctx, child)
}

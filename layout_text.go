package tk

import "github.com/gogpu/tk/geom"

// TextLayout sizes a node to its text component, measured through the
// render context in the node's font. Missing font components fall back
// to the theme's defaults.
type TextLayout struct{}

// NewTextLayout creates a text layout.
func NewTextLayout() *TextLayout {
	return &TextLayout{}
}

// Measure implements the Layout interface.
func (l *TextLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	content := geom.Size{}
	value := GetOr(ctx.Store, e, ComponentText, "")
	if value != "" && ctx.Render != nil {
		th := ctx.activeTheme()
		family := GetOr(ctx.Store, e, ComponentFontFamily, th.FontFamily())
		size := GetOr(ctx.Store, e, ComponentFontSize, th.FontSize())
		ctx.Render.SetFontFamily(family)
		ctx.Render.SetFontSize(size)
		content = ctx.Render.MeasureText(value)
	}
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface.
func (l *TextLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	return placeWithin(ctx, e, slot).Size()
}

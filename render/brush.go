package render

// Brush describes how a shape is filled or stroked.
// This is a sealed interface - only SolidBrush and GradientBrush implement
// it. Brushes are value types: cloned freely, no shared mutable state.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush paints an area with a single solid color.
type SolidBrush struct {
	Color Color
}

func (SolidBrush) brushMarker() {}

// IsTransparent reports whether the brush paints nothing.
func (b SolidBrush) IsTransparent() bool {
	return b.Color.IsTransparent()
}

// GradientBrush paints an area with a gradient defined relative to the
// bounds of the shape being painted.
type GradientBrush struct {
	Gradient Gradient
}

func (GradientBrush) brushMarker() {}

// Solid creates a SolidBrush from a color.
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithGradient creates a GradientBrush. The gradient is cloned so the brush
// owns its stops.
func WithGradient(g Gradient) GradientBrush {
	return GradientBrush{Gradient: g.Clone()}
}

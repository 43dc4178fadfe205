package render

// Paint is the drawing configuration snapshotted by Context.Save:
// fill and stroke brushes, line width, global alpha, and font settings.
type Paint struct {
	// FillBrush is used by Fill and FillRect.
	FillBrush Brush

	// StrokeBrush is used by Stroke and StrokeRect.
	StrokeBrush Brush

	// LineWidth is the stroke width in device units.
	LineWidth float64

	// Alpha is the global alpha multiplier in [0, 1].
	Alpha float64

	// FontFamily selects the registered font used for text operations.
	FontFamily string

	// FontSize is the font size in device units.
	FontSize float64
}

// DefaultPaint returns the initial paint configuration.
func DefaultPaint() Paint {
	return Paint{
		FillBrush:   Solid(Black),
		StrokeBrush: Solid(Black),
		LineWidth:   1.0,
		Alpha:       1.0,
		FontSize:    14.0,
	}
}

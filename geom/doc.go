// Package geom provides the small set of 2D geometric value types shared by
// the layout engine and the render context: points, sizes, and axis-aligned
// rectangles in float64 device coordinates.
//
// All operations are exact; no epsilon tolerance is applied except where a
// constructor documents clamping (negative rectangle dimensions clamp to zero).
package geom

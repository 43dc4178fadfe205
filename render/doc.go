// Package render is the 2D drawing layer of the toolkit: paths with
// incrementally tracked bounds, solid and gradient brushes, and a Context
// that paints onto a retained RGBA pixmap through a pluggable Renderer.
//
// Brushes describe paint declaratively. Before rasterization they are
// resolved against the geometry being painted: ResolveStops distributes
// CSS-style gradient color stops along the gradient axis, and
// ResolveBrush turns a Brush plus a target frame into a DeviceBrush that
// can be sampled per pixel.
//
// A minimal draw:
//
//	ctx := render.NewContext(200, 100)
//	ctx.SetFillBrush(render.SolidHex("#3a86ff"))
//	ctx.Rect(10, 10, 80, 40)
//	if err := ctx.Fill(); err != nil {
//		// gradient resolution errors surface here
//	}
package render

package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Color represents a color with components in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
)

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a hex color string.
// Supports "RGB", "RGBA", "RRGGBB", and "RRGGBBAA", with optional '#' prefix.
// Invalid strings return Black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint8 = 0, 0, 0, 255
	ok := true

	parse := func(s string) uint8 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			ok = false
		}
		return uint8(v)
	}
	dup := func(s string) string { return s + s }

	switch len(hex) {
	case 3:
		r, g, b = parse(dup(hex[0:1])), parse(dup(hex[1:2])), parse(dup(hex[2:3]))
	case 4:
		r, g, b, a = parse(dup(hex[0:1])), parse(dup(hex[1:2])), parse(dup(hex[2:3])), parse(dup(hex[3:4]))
	case 6:
		r, g, b = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
	case 8:
		r, g, b, a = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6]), parse(hex[6:8])
	default:
		ok = false
	}
	if !ok {
		return Black
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts a standard library color.Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// RGBA returns alpha-premultiplied 16-bit components.
	af := float64(a) / 0xffff
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: af,
	}
}

// Color converts to a standard library color.NRGBA.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// IsTransparent reports whether the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + t*(d.R-c.R),
		G: c.G + t*(d.G-c.G),
		B: c.B + t*(d.B-c.B),
		A: c.A + t*(d.A-c.A),
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

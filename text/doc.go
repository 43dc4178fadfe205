// Package text provides font loading, measurement, and glyph drawing for
// the toolkit. Fonts are registered by family name in a Collection; sized
// Faces are obtained from the collection and used to measure and draw
// strings.
//
// Measurement goes through a pluggable Shaper. The default BuiltinShaper
// uses golang.org/x/image/font advances, which is adequate for Latin,
// Cyrillic, Greek, and CJK text. The GoTextShaper provides HarfBuzz-level
// shaping through go-text/typesetting, including kerning, ligatures, and
// right-to-left runs:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
package text

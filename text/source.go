package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// FontSource holds the raw bytes and parsed form of a single font file.
// The parsed *sfnt.Font is read-only and safe for concurrent use; sized
// faces are created per Face.
type FontSource struct {
	family string
	data   []byte
	font   *sfnt.Font
}

// NewFontSource parses TTF or OTF data into a source for the given family.
func NewFontSource(family string, data []byte) (*FontSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q: %w", family, err)
	}
	return &FontSource{family: family, data: data, font: f}, nil
}

// Family returns the family name the source was registered under.
func (s *FontSource) Family() string {
	return s.family
}

// Data returns the raw font bytes. Shapers that need to re-parse the font
// with their own parser read from here.
func (s *FontSource) Data() []byte {
	return s.data
}

// Font returns the parsed font.
func (s *FontSource) Font() *sfnt.Font {
	return s.font
}

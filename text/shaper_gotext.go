package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper measures text with HarfBuzz shaping via go-text/typesetting.
// Unlike BuiltinShaper it applies kerning pairs, ligature substitution, and
// shapes right-to-left runs correctly.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// cached per source (font.Font is read-only and thread-safe); font.Face
// instances are created per call since they are not. HarfbuzzShaper
// instances carry mutable buffers and are pooled.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a shaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements the Shaper interface. The string is segmented into
// bidirectional runs and each run is shaped separately; the advances sum.
func (s *GoTextShaper) Advance(face *Face, text string) float64 {
	if face == nil || text == "" {
		return 0
	}
	goFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		// Unparseable by go-text; fall back to the builtin advances so
		// measurement still returns something usable.
		return face.builtinAdvance(text)
	}
	goFace := font.NewFace(goFont)

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	total := fixed.Int26_6(0)
	for _, seg := range SegmentRuns(text) {
		runes := []rune(seg.Text)
		dir := di.DirectionLTR
		if seg.Direction == DirectionRTL {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      goFace,
			Size:      fixed.Int26_6(face.Size() * 64),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})
		total += out.Advance
	}
	return float64(total) / 64
}

// getOrCreateFont returns a cached go-text font for the source, parsing
// and caching it on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}
	goFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goFace.Font
	return goFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

package text

import "sync"

// Shaper measures text for a face. Implementations provide different
// levels of shaping support:
//   - BuiltinShaper: golang.org/x/image/font advances. Good for Latin,
//     Cyrillic, Greek, and CJK.
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting, with
//     kerning, ligatures, and right-to-left support.
type Shaper interface {
	// Advance returns the horizontal advance of the string in pixels.
	Advance(face *Face, text string) float64
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Face.Advance.
// Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper measures with the face's own advance widths. No kerning
// or ligatures are applied.
type BuiltinShaper struct{}

// Advance implements the Shaper interface.
func (BuiltinShaper) Advance(face *Face, text string) float64 {
	if face == nil || text == "" {
		return 0
	}
	return face.builtinAdvance(text)
}

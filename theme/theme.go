// Package theme loads named brushes and font defaults from TOML files.
// Widgets look up paint by role name ("button.background") instead of
// hard-coding colors, so applications can restyle the whole tree by
// swapping the theme.
package theme

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/tk/internal/logx"
	"github.com/gogpu/tk/render"
)

//go:embed default.toml
var defaultTOML []byte

// FontDefaults are the fallback font settings widgets use when no
// per-widget font is set.
type FontDefaults struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
}

// themeFile is the on-disk TOML schema.
type themeFile struct {
	Fonts   FontDefaults      `toml:"fonts"`
	Brushes map[string]string `toml:"brushes"`
}

// Theme is an immutable set of named brushes plus font defaults.
type Theme struct {
	fonts   FontDefaults
	brushes map[string]render.Brush
}

// FromTOML parses theme data. Every brush expression is parsed eagerly
// so malformed themes fail at load time, not at paint time.
func FromTOML(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: parse: %w", err)
	}
	t := &Theme{
		fonts:   file.Fonts,
		brushes: make(map[string]render.Brush, len(file.Brushes)),
	}
	if t.fonts.Size <= 0 {
		t.fonts.Size = 14
	}
	for name, expr := range file.Brushes {
		b, err := render.ParseBrush(expr)
		if err != nil {
			return nil, fmt.Errorf("theme: brush %q: %w", name, err)
		}
		t.brushes[name] = b
	}
	return t, nil
}

// Load reads and parses a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return FromTOML(data)
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the built-in theme.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := FromTOML(defaultTOML)
		if err != nil {
			// The embedded theme is validated by tests; a parse failure
			// here is a build defect.
			panic(fmt.Sprintf("theme: embedded default theme: %v", err))
		}
		defaultTheme = t
	})
	return defaultTheme
}

// Brush returns the named brush.
func (t *Theme) Brush(name string) (render.Brush, bool) {
	b, ok := t.brushes[name]
	return b, ok
}

// BrushOr returns the named brush, or the fallback when the name is not
// part of the theme. Missing names are logged once per call at debug
// level to help track down typos.
func (t *Theme) BrushOr(name string, fallback render.Brush) render.Brush {
	if b, ok := t.brushes[name]; ok {
		return b
	}
	logx.Logger().Debug("theme: unknown brush", slog.String("name", name))
	return fallback
}

// Color returns the named brush's color. Gradient brushes report false.
func (t *Theme) Color(name string) (render.Color, bool) {
	b, ok := t.brushes[name]
	if !ok {
		return render.Color{}, false
	}
	solid, ok := b.(render.SolidBrush)
	if !ok {
		return render.Color{}, false
	}
	return solid.Color, true
}

// FontFamily returns the default font family.
func (t *Theme) FontFamily() string {
	return t.fonts.Family
}

// FontSize returns the default font size in pixels.
func (t *Theme) FontSize() float64 {
	return t.fonts.Size
}

// Names returns how many brushes the theme defines.
func (t *Theme) Names() int {
	return len(t.brushes)
}

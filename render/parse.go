package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBrush is returned when a brush expression cannot be parsed.
var ErrInvalidBrush = errors.New("render: invalid brush expression")

// namedColors are the color keywords accepted by ParseBrush and theme
// files.
var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"gray":        {R: 0.5, G: 0.5, B: 0.5, A: 1},
	"grey":        {R: 0.5, G: 0.5, B: 0.5, A: 1},
	"yellow":      {R: 1, G: 1, B: 0, A: 1},
	"cyan":        {R: 0, G: 1, B: 1, A: 1},
	"magenta":     {R: 1, G: 0, B: 1, A: 1},
	"orange":      {R: 1, G: 0.647, B: 0, A: 1},
	"purple":      {R: 0.5, G: 0, B: 0.5, A: 1},
}

// ParseBrush parses a CSS-like brush expression into a Brush. Supported
// forms:
//
//	#abc  #aabbcc  #aabbccdd
//	rgb(255, 0, 0)  rgba(255, 0, 0, 0.5)
//	named colors (black, white, red, ...)
//	linear-gradient(to right, red, blue 80%)
//	linear-gradient(45deg, #fff, #000 120px)
//	radial-gradient(circle, red, blue)
//	repeating-linear-gradient(...), repeating-radial-gradient(...)
func ParseBrush(s string) (Brush, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidBrush
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		return Solid(c), nil
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		c, err := parseRGBFunc(lower)
		if err != nil {
			return nil, err
		}
		return Solid(c), nil
	case strings.HasPrefix(lower, "linear-gradient("):
		return parseLinearGradient(lower, false)
	case strings.HasPrefix(lower, "repeating-linear-gradient("):
		return parseLinearGradient(lower, true)
	case strings.HasPrefix(lower, "radial-gradient("):
		return parseRadialGradient(lower, false)
	case strings.HasPrefix(lower, "repeating-radial-gradient("):
		return parseRadialGradient(lower, true)
	}
	if c, ok := namedColors[lower]; ok {
		return Solid(c), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
}

// ParseColor parses a color expression (hex, rgb()/rgba(), or a named
// color).
func ParseColor(s string) (Color, error) {
	b, err := ParseBrush(s)
	if err != nil {
		return Color{}, err
	}
	solid, ok := b.(SolidBrush)
	if !ok {
		return Color{}, fmt.Errorf("%w: %q is not a color", ErrInvalidBrush, s)
	}
	return solid.Color, nil
}

// parseHex validates the digits before delegating to Hex, which maps
// malformed input to black instead of reporting it.
func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidBrush, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidBrush, s)
		}
	}
	return Hex(s), nil
}

func parseRGBFunc(s string) (Color, error) {
	inner, err := insideParens(s)
	if err != nil {
		return Color{}, err
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
		}
		ch[i] = clamp01(v / 255)
	}
	alpha := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
		}
		alpha = clamp01(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parseLinearGradient(s string, repeat bool) (Brush, error) {
	inner, err := insideParens(s)
	if err != nil {
		return nil, err
	}
	args := splitTopLevel(inner)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
	}

	coords := LinearCoords(Directional{Direction: ToBottom})
	first := strings.TrimSpace(args[0])
	consumed := false
	if dir, ok := parseDirection(first); ok {
		coords = Directional{Direction: dir}
		consumed = true
	} else if rad, ok := parseAngle(first); ok {
		coords = Angle{Radians: rad}
		consumed = true
	}
	if consumed {
		args = args[1:]
	}

	stops, err := parseStops(args)
	if err != nil {
		return nil, err
	}
	return WithGradient(Gradient{
		Kind:   Linear{Coords: coords},
		Stops:  stops,
		Repeat: repeat,
	}), nil
}

func parseRadialGradient(s string, repeat bool) (Brush, error) {
	inner, err := insideParens(s)
	if err != nil {
		return nil, err
	}
	args := splitTopLevel(inner)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBrush, s)
	}

	kind := Radial{Sizing: ToClosestSide}
	consumed := false
	for _, word := range strings.Fields(strings.TrimSpace(args[0])) {
		switch word {
		case "circle":
			kind.ForceCircle = true
			consumed = true
		case "ellipse":
			consumed = true
		case "closest-side":
			kind.Sizing = ToClosestSide
			consumed = true
		case "farthest-side":
			kind.Sizing = ToFarthestSide
			consumed = true
		case "closest-corner":
			kind.Sizing = ToClosestCorner
			consumed = true
		case "farthest-corner":
			kind.Sizing = ToFarthestCorner
			consumed = true
		default:
			consumed = false
		}
		if !consumed {
			break
		}
	}
	if consumed {
		args = args[1:]
	}

	stops, err := parseStops(args)
	if err != nil {
		return nil, err
	}
	return WithGradient(Gradient{
		Kind:   kind,
		Stops:  stops,
		Repeat: repeat,
	}), nil
}

func parseDirection(s string) (Direction, bool) {
	switch strings.Join(strings.Fields(s), " ") {
	case "to top":
		return ToTop, true
	case "to top right":
		return ToTopRight, true
	case "to right":
		return ToRight, true
	case "to bottom right":
		return ToBottomRight, true
	case "to bottom":
		return ToBottom, true
	case "to bottom left":
		return ToBottomLeft, true
	case "to left":
		return ToLeft, true
	case "to top left":
		return ToTopLeft, true
	}
	return 0, false
}

func parseAngle(s string) (float64, bool) {
	switch {
	case strings.HasSuffix(s, "deg"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
		if err != nil {
			return 0, false
		}
		return v * math.Pi / 180, true
	case strings.HasSuffix(s, "rad"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "rad"), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case strings.HasSuffix(s, "turn"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "turn"), 64)
		if err != nil {
			return 0, false
		}
		return v * 2 * math.Pi, true
	}
	return 0, false
}

// parseStops parses "color [position]" entries. Positions may be
// percentages (30%), pixel lengths (12px), or bare fractions (0.3);
// omitted positions stay Auto for the stop resolver to distribute.
func parseStops(args []string) ([]GradientStop, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: gradient needs at least one stop", ErrInvalidBrush)
	}
	stops := make([]GradientStop, 0, len(args))
	for _, arg := range args {
		fields := strings.Fields(strings.TrimSpace(arg))
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("%w: bad gradient stop %q", ErrInvalidBrush, arg)
		}
		col, err := ParseColor(fields[0])
		if err != nil {
			return nil, err
		}
		pos := AutoPosition()
		if len(fields) == 2 {
			pos, err = parseStopPosition(fields[1])
			if err != nil {
				return nil, err
			}
		}
		stops = append(stops, GradientStop{Position: pos, Color: col})
	}
	return stops, nil
}

func parseStopPosition(s string) (StopPosition, error) {
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return StopPosition{}, fmt.Errorf("%w: bad stop position %q", ErrInvalidBrush, s)
		}
		return Fraction(v / 100), nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return StopPosition{}, fmt.Errorf("%w: bad stop position %q", ErrInvalidBrush, s)
		}
		return Absolute(v), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return StopPosition{}, fmt.Errorf("%w: bad stop position %q", ErrInvalidBrush, s)
	}
	return Fraction(v), nil
}

// insideParens returns the text between the first "(" and the final ")".
func insideParens(s string) (string, error) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return "", fmt.Errorf("%w: %q", ErrInvalidBrush, s)
	}
	return s[open+1 : end], nil
}

// splitTopLevel splits on commas outside parentheses, so rgba() colors
// inside gradients stay intact.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" || len(parts) == 0 {
		parts = append(parts, s[start:])
	}
	return parts
}

package render

// ResolvedStop is a gradient stop with its position resolved to an absolute
// fraction of the gradient axis.
type ResolvedStop struct {
	Position float64 // in [0, 1]
	Color    Color
}

// ResolveStops resolves every stop to an absolute fractional position along
// the gradient axis, following CSS linear-gradient() semantics. length is
// the gradient axis length in the same unit as Absolute positions.
//
// Explicit positions are clamped to [0, 1] and floored at the previous
// resolved position, so the output is always non-decreasing. Runs of Auto
// stops are distributed at equal increments between the previous resolved
// position (0 if none) and the next explicit stop (1 if none); a leading
// Auto stop lands exactly at the lower bound and a trailing Auto stop lands
// exactly at 1.
//
// The output has the same length as the input. A gradient with zero stops is
// a configuration error and panics.
func ResolveStops(stops []GradientStop, length float64) []ResolvedStop {
	if len(stops) == 0 {
		panic("render: gradient with no color stops")
	}

	out := make([]ResolvedStop, 0, len(stops))
	prev := 0.0
	havePrev := false

	emit := func(pos float64, c Color) {
		if havePrev && pos < prev {
			pos = prev
		}
		out = append(out, ResolvedStop{Position: pos, Color: c})
		prev = pos
		havePrev = true
	}

	i := 0
	for i < len(stops) {
		if !stops[i].Position.IsAuto() {
			emit(clamp01(stops[i].Position.fraction(length)), stops[i].Color)
			i++
			continue
		}

		// Scan forward for the run of Auto stops and its anchor.
		j := i
		for j < len(stops) && stops[j].Position.IsAuto() {
			j++
		}
		n := j - i
		from := prev
		to := 1.0
		haveAnchor := j < len(stops)
		if haveAnchor {
			to = clamp01(stops[j].Position.fraction(length))
			if to < from {
				to = from
			}
		}

		hadPrev := havePrev
		for k := 0; k < n; k++ {
			var pos float64
			switch {
			case !hadPrev && !haveAnchor:
				// The run spans the whole axis: endpoints pinned
				// at 0 and 1.
				if n == 1 {
					pos = from
				} else {
					pos = from + (to-from)*float64(k)/float64(n-1)
				}
			case !hadPrev:
				// Leading run: the first Auto stop lands at 0.
				pos = from + (to-from)*float64(k)/float64(n)
			case !haveAnchor:
				// Trailing run: the last Auto stop lands at 1.
				pos = from + (to-from)*float64(k+1)/float64(n)
			default:
				pos = from + (to-from)*float64(k+1)/float64(n+1)
			}
			emit(pos, stops[i+k].Color)
		}
		i = j
	}
	return out
}

// colorAtOffset returns the interpolated color of a resolved ramp at t.
// repeat selects between repeating and padded extension beyond [0, 1].
func colorAtOffset(stops []ResolvedStop, t float64, repeat bool) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	if repeat {
		whole := t
		t -= float64(int(t))
		if t < 0 {
			t++
		}
		// Exact positive multiples of the period sample the end of the
		// ramp, so a repeating gradient agrees with the padded one at
		// the axis end.
		if t == 0 && whole > 0 {
			t = 1
		}
	} else {
		t = clamp01(t)
	}

	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}

	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Position {
			s0, s1 := stops[i-1], stops[i]
			if s1.Position == s0.Position {
				return s0.Color
			}
			local := (t - s0.Position) / (s1.Position - s0.Position)
			return s0.Color.Lerp(s1.Color, local)
		}
	}
	return last.Color
}

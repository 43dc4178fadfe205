package tk

import "github.com/gogpu/tk/geom"

// TrackKind selects how a grid row or column is sized.
type TrackKind int

const (
	// AutoTrack sizes to the largest child in the track.
	AutoTrack TrackKind = iota
	// StretchTrack shares the leftover space equally with the other
	// stretch tracks.
	StretchTrack
	// FixedTrack has an explicit extent.
	FixedTrack
)

// GridTrack describes one row or column.
type GridTrack struct {
	Kind TrackKind
	Size float64 // used by FixedTrack
}

// Auto creates an auto-sized track.
func Auto() GridTrack {
	return GridTrack{Kind: AutoTrack}
}

// StretchT creates a stretch track.
func StretchT() GridTrack {
	return GridTrack{Kind: StretchTrack}
}

// Fixed creates a fixed-extent track.
func Fixed(size float64) GridTrack {
	return GridTrack{Kind: FixedTrack, Size: size}
}

// GridLayout places children in cells addressed by their grid_column and
// grid_row components. Children without a cell land in (0, 0). A grid
// without declared tracks behaves as a single stretch cell.
type GridLayout struct {
	Columns []GridTrack
	Rows    []GridTrack
}

// NewGridLayout creates a grid with the given tracks.
func NewGridLayout(columns, rows []GridTrack) *GridLayout {
	return &GridLayout{Columns: columns, Rows: rows}
}

// Measure implements the Layout interface.
func (l *GridLayout) Measure(ctx *LayoutContext, e Entity) geom.Size {
	if ctx.visibility(e) == Collapsed {
		return collapseMeasure(ctx, e)
	}
	for _, child := range ctx.Tree.Children(e) {
		measureChild(ctx, child)
	}
	cols := l.trackExtents(ctx, e, l.Columns, true, 0)
	rows := l.trackExtents(ctx, e, l.Rows, false, 0)
	content := geom.Sz(sum(cols), sum(rows))
	return finishMeasure(ctx, e, content)
}

// Arrange implements the Layout interface.
func (l *GridLayout) Arrange(ctx *LayoutContext, e Entity, slot geom.Rect) geom.Size {
	bounds := placeWithin(ctx, e, slot)
	cols := l.trackExtents(ctx, e, l.Columns, true, bounds.Width)
	rows := l.trackExtents(ctx, e, l.Rows, false, bounds.Height)

	colOffsets := offsets(cols)
	rowOffsets := offsets(rows)

	for _, child := range ctx.Tree.Children(e) {
		col := clampIndex(GetOr(ctx.Store, child, ComponentGridColumn, 0), len(cols))
		row := clampIndex(GetOr(ctx.Store, child, ComponentGridRow, 0), len(rows))
		cell := geom.NewRect(
			bounds.X+colOffsets[col],
			bounds.Y+rowOffsets[row],
			cols[col],
			rows[row],
		)
		arrangeChild(ctx, child, cell)
	}
	return bounds.Size()
}

// trackExtents computes the extent of each track. During measure the
// available extent is zero and stretch tracks size like auto tracks;
// during arrange the leftover space is split across them.
func (l *GridLayout) trackExtents(ctx *LayoutContext, e Entity, tracks []GridTrack, columns bool, available float64) []float64 {
	if len(tracks) == 0 {
		tracks = []GridTrack{StretchT()}
	}
	extents := make([]float64, len(tracks))

	// Content extents for auto (and, at measure time, stretch) tracks.
	for _, child := range ctx.Tree.Children(e) {
		var idx int
		var want float64
		desired := ctx.desired(child)
		if columns {
			idx = clampIndex(GetOr(ctx.Store, child, ComponentGridColumn, 0), len(tracks))
			want = desired.Width
		} else {
			idx = clampIndex(GetOr(ctx.Store, child, ComponentGridRow, 0), len(tracks))
			want = desired.Height
		}
		if tracks[idx].Kind != FixedTrack {
			extents[idx] = max(extents[idx], want)
		}
	}
	for i, t := range tracks {
		if t.Kind == FixedTrack {
			extents[i] = t.Size
		}
	}

	if available <= 0 {
		return extents
	}

	// Split the leftover space across stretch tracks.
	stretch := 0
	used := 0.0
	for i, t := range tracks {
		if t.Kind == StretchTrack {
			stretch++
			continue
		}
		used += extents[i]
	}
	if stretch == 0 {
		return extents
	}
	share := (available - used) / float64(stretch)
	if share < 0 {
		share = 0
	}
	for i, t := range tracks {
		if t.Kind == StretchTrack {
			extents[i] = share
		}
	}
	return extents
}

func sum(vs []float64) float64 {
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total
}

func offsets(extents []float64) []float64 {
	out := make([]float64, len(extents))
	acc := 0.0
	for i, v := range extents {
		out[i] = acc
		acc += v
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

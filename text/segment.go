package text

import "golang.org/x/text/unicode/bidi"

// Direction is the visual order of a text run.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// Segment is a contiguous run of text with a single direction.
type Segment struct {
	Text      string
	Direction Direction
}

// SegmentRuns splits the string into bidirectional runs in logical order.
// Strings without right-to-left content come back as a single LTR segment.
func SegmentRuns(text string) []Segment {
	if text == "" {
		return nil
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return []Segment{{Text: text, Direction: DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Segment{{Text: text, Direction: DirectionLTR}}
	}
	segs := make([]Segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		segs = append(segs, Segment{Text: run.String(), Direction: dir})
	}
	return segs
}

package geom

import "testing"

func TestNewRectClampsNegativeDims(t *testing.T) {
	r := NewRect(5, 5, -10, -3)
	if r.Width != 0 || r.Height != 0 {
		t.Fatalf("rect = %+v, want zero dims", r)
	}
	if r.X != 5 || r.Y != 5 {
		t.Fatalf("rect = %+v, position must survive clamping", r)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), NewRect(0, 0, 25, 25)},
		{"contained", NewRect(0, 0, 30, 30), NewRect(5, 5, 5, 5), NewRect(0, 0, 30, 30)},
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(0, 0, 15, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Fatalf("union = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	if got := a.Intersect(b); got != NewRect(5, 5, 5, 5) {
		t.Fatalf("intersect = %+v", got)
	}
	c := NewRect(20, 20, 5, 5)
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Fatalf("disjoint intersect = %+v, want empty", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(5, 5)) {
		t.Fatal("interior points not contained")
	}
	if r.Contains(Pt(10, 10)) {
		t.Fatal("max corner must be exclusive")
	}
	if r.Contains(Pt(-1, 5)) {
		t.Fatal("outside point contained")
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Fatalf("length = %v, want 5", p.Length())
	}
	if got := p.Add(Pt(1, 1)).Sub(Pt(1, 1)); got != p {
		t.Fatalf("add/sub roundtrip = %+v", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.5); got != Pt(5, 10) {
		t.Fatalf("lerp = %+v", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Fatalf("distance = %v, want 5", got)
	}
}

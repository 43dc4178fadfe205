package text

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testCollection(t *testing.T) *Collection {
	t.Helper()
	c := NewCollection()
	if err := c.Register("Go", goregular.TTF); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return c
}

func TestCollectionRegisterAndFace(t *testing.T) {
	c := testCollection(t)

	face, err := c.Face("Go", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face.Size() != 16 {
		t.Fatalf("size = %v, want 16", face.Size())
	}
	if got := c.Families(); len(got) != 1 || got[0] != "Go" {
		t.Fatalf("families = %v, want [Go]", got)
	}
}

func TestCollectionUnknownFamily(t *testing.T) {
	c := NewCollection()
	_, err := c.Face("Nope", 12)
	if !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("err = %v, want ErrUnknownFamily", err)
	}
}

func TestCollectionBadData(t *testing.T) {
	c := NewCollection()
	if err := c.Register("Bad", []byte("not a font")); err == nil {
		t.Fatal("no error for invalid font data")
	}
}

func TestFaceMetrics(t *testing.T) {
	c := testCollection(t)
	face, err := c.Face("Go", 20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height <= 0 {
		t.Fatalf("metrics = %+v, want all positive", m)
	}
	if m.Height < m.Ascent {
		t.Fatalf("line height %v below ascent %v", m.Height, m.Ascent)
	}
}

func TestFaceMeasure(t *testing.T) {
	c := testCollection(t)
	face, err := c.Face("Go", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	w, h := face.Measure("hello")
	if w != face.Advance("hello") {
		t.Fatalf("width %v, want advance %v", w, face.Advance("hello"))
	}
	m := face.Metrics()
	if h != m.Ascent+m.Descent {
		t.Fatalf("height %v, want %v", h, m.Ascent+m.Descent)
	}
}

func TestFaceAdvance(t *testing.T) {
	c := testCollection(t)
	face, err := c.Face("Go", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	short := face.Advance("hi")
	long := face.Advance("hello, world")
	if short <= 0 {
		t.Fatalf("advance = %v, want positive", short)
	}
	if long <= short {
		t.Fatalf("longer string advance %v not beyond %v", long, short)
	}
	if got := face.Advance(""); got != 0 {
		t.Fatalf("empty string advance = %v, want 0", got)
	}
}

func TestGoTextShaperAdvance(t *testing.T) {
	c := testCollection(t)
	face, err := c.Face("Go", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	shaper := NewGoTextShaper()
	got := shaper.Advance(face, "hello")
	if got <= 0 {
		t.Fatalf("advance = %v, want positive", got)
	}

	// Shaped and builtin advances agree to within a couple of pixels
	// for plain Latin text.
	builtin := BuiltinShaper{}.Advance(face, "hello")
	if diff := got - builtin; diff > 3 || diff < -3 {
		t.Fatalf("shaped %v vs builtin %v differ by %v", got, builtin, diff)
	}
}

func TestSetShaper(t *testing.T) {
	custom := NewGoTextShaper()
	SetShaper(custom)
	if GetShaper() != Shaper(custom) {
		t.Fatal("global shaper not set")
	}
	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Fatalf("nil did not reset to builtin, got %T", GetShaper())
	}
}

func TestSegmentRuns(t *testing.T) {
	segs := SegmentRuns("hello")
	if len(segs) != 1 || segs[0].Direction != DirectionLTR {
		t.Fatalf("segments = %+v, want single LTR run", segs)
	}

	// Latin followed by Hebrew yields at least one RTL run.
	segs = SegmentRuns("abc שלום")
	var sawRTL bool
	for _, s := range segs {
		if s.Direction == DirectionRTL {
			sawRTL = true
		}
	}
	if !sawRTL {
		t.Fatalf("segments = %+v, want an RTL run", segs)
	}

	if got := SegmentRuns(""); got != nil {
		t.Fatalf("empty string segments = %+v, want nil", got)
	}
}

func TestFaceDraw(t *testing.T) {
	c := testCollection(t)
	face, err := c.Face("Go", 24)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 100, 40))
	face.Draw(dst, "Hi", 2, 28, color.Black)

	var touched bool
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			touched = true
			break
		}
	}
	if !touched {
		t.Fatal("Draw left the image blank")
	}
}

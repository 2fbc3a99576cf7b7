package layout

import (
	"testing"

	"github.com/pdftty/pdftty/model"
)

// frag builds a raw fragment for tests. Hint order is assigned by the
// caller's ordinal position.
func frag(x, y, w, h float64, text string, hint int) model.RawFragment {
	return model.RawFragment{
		BBox:      model.NewBBox(x, y, w, h),
		Text:      text,
		HintOrder: hint,
	}
}

func TestGroupIntoBandsSingleLine(t *testing.T) {
	frags := []model.RawFragment{
		frag(10, 10, 30, 10, "one", 0),
		frag(50, 10, 30, 10, "two", 1),
		frag(90, 10, 30, 10, "three", 2),
	}

	bands := groupIntoBands(frags, DefaultConfig().Bands)
	if len(bands) != 1 {
		t.Fatalf("expected 1 band, got %d", len(bands))
	}
	if len(bands[0].fragments) != 3 {
		t.Errorf("expected 3 fragments in band, got %d", len(bands[0].fragments))
	}
}

func TestGroupIntoBandsBaselineJitter(t *testing.T) {
	// Centers at 15 and 17 with height 10: tolerance 5, still one line.
	frags := []model.RawFragment{
		frag(10, 10, 30, 10, "steady", 0),
		frag(50, 12, 30, 10, "jittered", 1),
	}

	bands := groupIntoBands(frags, DefaultConfig().Bands)
	if len(bands) != 1 {
		t.Fatalf("expected jittered fragments to share a band, got %d bands", len(bands))
	}
}

func TestGroupIntoBandsSeparateLines(t *testing.T) {
	frags := []model.RawFragment{
		frag(10, 10, 30, 10, "first", 0),
		frag(10, 30, 30, 10, "second", 1),
		frag(10, 50, 30, 10, "third", 2),
	}

	bands := groupIntoBands(frags, DefaultConfig().Bands)
	if len(bands) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].bbox.Top() <= bands[i-1].bbox.Top() {
			t.Errorf("bands not in vertical order at index %d", i)
		}
	}
}

func TestGroupIntoBandsSmallFragmentTolerance(t *testing.T) {
	// A superscript half the line height: tolerance shrinks to the smaller
	// fragment, keeping it off a line whose center is too far away.
	frags := []model.RawFragment{
		frag(10, 10, 30, 10, "body", 0),
		frag(50, 2, 8, 5, "2", 1),
	}

	bands := groupIntoBands(frags, DefaultConfig().Bands)
	if len(bands) != 2 {
		t.Fatalf("expected superscript in its own band, got %d bands", len(bands))
	}
}

func TestGroupIntoBandsEmpty(t *testing.T) {
	if bands := groupIntoBands(nil, DefaultConfig().Bands); bands != nil {
		t.Errorf("expected nil bands for empty input, got %v", bands)
	}
}

func TestMedianCharWidth(t *testing.T) {
	frags := []model.RawFragment{
		frag(0, 0, 40, 10, "abcd", 0),  // 10 per rune
		frag(0, 0, 30, 10, "abcde", 1), // 6 per rune
		frag(0, 0, 16, 10, "ab", 2),    // 8 per rune
	}

	got := medianCharWidth(frags)
	if got != 8 {
		t.Errorf("expected median char width 8, got %v", got)
	}
}

func TestMedianCharWidthSkipsEmpty(t *testing.T) {
	frags := []model.RawFragment{
		frag(0, 0, 0, 10, "zero-width", 0),
		frag(0, 0, 12, 10, "abc", 1),
	}

	if got := medianCharWidth(frags); got != 4 {
		t.Errorf("expected median char width 4, got %v", got)
	}
}

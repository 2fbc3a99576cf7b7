package model

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBBox_Union(t *testing.T) {
	a := NewBBox(10, 10, 40, 10)
	b := NewBBox(100, 30, 40, 10)

	u := a.Union(b)

	if !almostEqual(u.X, 10) || !almostEqual(u.Y, 10) {
		t.Errorf("unexpected union origin: (%f, %f)", u.X, u.Y)
	}
	if !almostEqual(u.Right(), 140) || !almostEqual(u.Bottom(), 40) {
		t.Errorf("unexpected union extent: right=%f bottom=%f", u.Right(), u.Bottom())
	}
}

func TestBBox_NegativeDimensionsClamped(t *testing.T) {
	b := NewBBox(5, 5, -3, -1)
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("expected zero dimensions, got %fx%f", b.Width, b.Height)
	}
}

func TestBBox_ClampTo(t *testing.T) {
	tests := []struct {
		name       string
		box        BBox
		wantX      float64
		wantY      float64
		wantRight  float64
		wantBottom float64
	}{
		{
			name:       "inside is untouched",
			box:        NewBBox(10, 10, 40, 10),
			wantX:      10, wantY: 10, wantRight: 50, wantBottom: 20,
		},
		{
			name:       "overflow right is trimmed",
			box:        NewBBox(180, 10, 60, 10),
			wantX:      180, wantY: 10, wantRight: 200, wantBottom: 20,
		},
		{
			name:       "negative origin is pulled in",
			box:        NewBBox(-5, -5, 20, 20),
			wantX:      0, wantY: 0, wantRight: 15, wantBottom: 15,
		},
		{
			name:       "fully outside collapses to the edge",
			box:        NewBBox(300, 100, 10, 10),
			wantX:      200, wantY: 50, wantRight: 200, wantBottom: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.ClampTo(200, 50)
			if !almostEqual(got.X, tt.wantX) || !almostEqual(got.Y, tt.wantY) ||
				!almostEqual(got.Right(), tt.wantRight) || !almostEqual(got.Bottom(), tt.wantBottom) {
				t.Errorf("ClampTo = {%f %f %f %f}, want x=%f y=%f right=%f bottom=%f",
					got.X, got.Y, got.Width, got.Height,
					tt.wantX, tt.wantY, tt.wantRight, tt.wantBottom)
			}
		})
	}
}

func TestBBox_HorizontalOverlap(t *testing.T) {
	a := NewBBox(10, 0, 40, 10)
	b := NewBBox(30, 100, 40, 10) // vertical position is irrelevant

	if got := a.HorizontalOverlap(b); !almostEqual(got, 20) {
		t.Errorf("expected overlap 20, got %f", got)
	}

	c := NewBBox(100, 0, 40, 10)
	if got := a.HorizontalOverlap(c); got != 0 {
		t.Errorf("expected no overlap, got %f", got)
	}
}

func TestPage_AddFragmentClampsToPage(t *testing.T) {
	p := NewPage(0, 200, 50)
	p.AddFragment(NewBBox(190, 10, 40, 10), "overflow")

	if len(p.Fragments) != 1 {
		t.Fatalf("expected fragment to be kept, got %d fragments", len(p.Fragments))
	}
	if got := p.Fragments[0].BBox.Right(); !almostEqual(got, 200) {
		t.Errorf("expected clamped right edge 200, got %f", got)
	}
}

func TestPage_HintOrderAssignment(t *testing.T) {
	p := NewPage(0, 200, 50)
	p.AddFragment(NewBBox(10, 10, 40, 10), "first")
	p.AddFragment(NewBBox(100, 10, 40, 10), "second")

	for i, f := range p.Fragments {
		if f.HintOrder != i {
			t.Errorf("fragment %d: hint order %d", i, f.HintOrder)
		}
	}
}

func TestPage_SetLinesReleasesFragments(t *testing.T) {
	p := NewPage(0, 200, 50)
	p.AddFragment(NewBBox(10, 10, 40, 10), "word")

	if p.Resolved() {
		t.Fatal("page should not be resolved before SetLines")
	}

	p.SetLines([]ReconstructedLine{{ReadingRank: 0}})

	if !p.Resolved() {
		t.Error("page should be resolved after SetLines")
	}
	if p.Fragments != nil {
		t.Error("fragments should be released after resolution")
	}
}

func TestReconstructedLine_Text(t *testing.T) {
	line := ReconstructedLine{
		Words: []Word{
			{Text: "hello"},
			{Text: "world"},
		},
	}
	if got := line.Text(); got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestDocument_GetPage(t *testing.T) {
	d := NewDocument()
	d.AddPage(NewPage(0, 612, 792))
	d.AddPage(NewPage(1, 612, 792))

	if d.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", d.PageCount())
	}
	if p := d.GetPage(1); p == nil || p.Index != 0 {
		t.Error("GetPage(1) should return the first page")
	}
	if p := d.GetPage(0); p != nil {
		t.Error("GetPage(0) should be nil")
	}
	if p := d.GetPage(3); p != nil {
		t.Error("GetPage(3) should be nil")
	}
}

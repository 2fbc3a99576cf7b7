package model

import "strings"

// RawFragment is a single word-level text unit as read from the positioned
// text description, before any reading-order inference. HintOrder records the
// fragment's position in the description's document order; it is a hint only,
// never authoritative reading order.
type RawFragment struct {
	BBox      BBox
	Text      string
	HintOrder int
}

// Word is a text unit owned by a reconstructed line. Baseline is the Y
// coordinate of the word's baseline (bottom edge in top-left coordinates).
type Word struct {
	BBox     BBox
	Text     string
	Baseline float64
}

// ReconstructedLine is one typographic line recovered from a page's
// fragments. Words are ordered left to right; ReadingRank strictly increases
// over a page's final line sequence.
type ReconstructedLine struct {
	BBox        BBox
	Words       []Word
	ReadingRank int
}

// Text materializes the line's content with a single space between words.
// Spacing proportional to the underlying gaps is the grid mapper's concern.
func (l *ReconstructedLine) Text() string {
	var sb strings.Builder
	for i, w := range l.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// Page represents a single page of the document. Fragments hold the parser's
// output until the resolver consumes them; after SetLines the page owns
// ReconstructedLines instead and the raw fragments are released.
type Page struct {
	Index     int     // 0-based page index
	Width     float64 // Page width in description units
	Height    float64 // Page height in description units
	Fragments []RawFragment
	Lines     []ReconstructedLine
}

// NewPage creates a page with the given dimensions.
func NewPage(index int, width, height float64) *Page {
	return &Page{
		Index:  index,
		Width:  width,
		Height: height,
	}
}

// AddFragment clamps the fragment's box to the page bounds and appends it,
// assigning its hint order.
func (p *Page) AddFragment(bbox BBox, text string) {
	p.Fragments = append(p.Fragments, RawFragment{
		BBox:      bbox.ClampTo(p.Width, p.Height),
		Text:      text,
		HintOrder: len(p.Fragments),
	})
}

// SetLines installs the resolved line sequence and releases the raw
// fragments. Fragments are a transient parse artifact and are not retained
// once resolution completes.
func (p *Page) SetLines(lines []ReconstructedLine) {
	p.Lines = lines
	p.Fragments = nil
}

// Resolved reports whether reading-order resolution has run for this page.
func (p *Page) Resolved() bool {
	return p.Fragments == nil
}

// Document owns the ordered sequence of pages for one viewed file.
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page to the document.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by 1-indexed number, or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// FragmentCount returns the number of raw fragments across all unresolved
// pages. Once every page is resolved this drops to zero.
func (d *Document) FragmentCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Fragments)
	}
	return n
}

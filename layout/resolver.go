package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/pdftty/pdftty/model"
)

// Resolver turns a page's raw fragments into reading-ordered lines.
// Resolvers are stateless and safe for concurrent use across pages.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with the default configuration.
func NewResolver() *Resolver {
	return &Resolver{config: DefaultConfig()}
}

// NewResolverWithConfig creates a resolver with custom configuration.
func NewResolverWithConfig(config Config) *Resolver {
	return &Resolver{config: config}
}

// Resolve produces the page's reconstructed lines with strictly increasing
// reading ranks, along with any recoverable warnings. Fragment boxes are
// clamped into the page bounds first, so callers that bypass the parser's
// clamping still satisfy the geometry invariant. An empty fragment set
// yields an empty sequence, not an error.
func (r *Resolver) Resolve(fragments []model.RawFragment, pageWidth, pageHeight float64) ([]model.ReconstructedLine, []Warning) {
	if len(fragments) == 0 {
		return nil, nil
	}

	fragments = clampFragments(fragments, pageWidth, pageHeight)

	if degenerate(fragments) {
		return r.hintOrderFallback(fragments)
	}

	// Preliminary bands mix columns; they only inform boundary detection.
	// Once boundaries are known, fragments are re-banded per column group so
	// a line band never crosses a column.
	prelim := groupIntoBands(fragments, r.config.Bands)
	gaps := detectBoundaries(fragments, prelim, r.config.Columns)

	var bands []band
	if len(gaps) == 0 {
		bands = prelim
	} else {
		width := contentWidth(fragments)
		for col, group := range bucketFragments(fragments, gaps) {
			for _, b := range groupIntoBands(group, r.config.Bands) {
				b.column = col
				if col != spanningColumn && width > 0 &&
					b.bbox.Width >= r.config.Columns.SpanningThreshold*width {
					b.column = spanningColumn
				}
				bands = append(bands, b)
			}
		}
	}

	ordered := orderBands(bands)

	var warnings []Warning
	lines := make([]model.ReconstructedLine, 0, len(ordered))
	for rank, b := range ordered {
		line, w := r.buildLine(b, rank)
		lines = append(lines, line)
		warnings = append(warnings, w...)
	}

	return lines, warnings
}

// clampFragments trims fragment boxes that extend past the page edges.
// Non-positive page dimensions leave the fragments untouched.
func clampFragments(fragments []model.RawFragment, pageWidth, pageHeight float64) []model.RawFragment {
	if pageWidth <= 0 || pageHeight <= 0 {
		return fragments
	}
	clamped := make([]model.RawFragment, len(fragments))
	copy(clamped, fragments)
	for i := range clamped {
		clamped[i].BBox = clamped[i].BBox.ClampTo(pageWidth, pageHeight)
	}
	return clamped
}

// degenerate reports whether every fragment sits at the same position, in
// which case spatial clustering has nothing to work with.
func degenerate(fragments []model.RawFragment) bool {
	if len(fragments) < 2 {
		return false
	}
	first := fragments[0].BBox.Center()
	for _, f := range fragments[1:] {
		c := f.BBox.Center()
		if c.X != first.X || c.Y != first.Y {
			return false
		}
	}
	return true
}

// hintOrderFallback orders fragments by the description's document order.
// This is a defined degenerate case, not a failure.
func (r *Resolver) hintOrderFallback(fragments []model.RawFragment) ([]model.ReconstructedLine, []Warning) {
	sorted := make([]model.RawFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HintOrder < sorted[j].HintOrder
	})

	lines := make([]model.ReconstructedLine, 0, len(sorted))
	for rank, f := range sorted {
		lines = append(lines, model.ReconstructedLine{
			BBox:        f.BBox,
			Words:       []model.Word{fragmentWord(f)},
			ReadingRank: rank,
		})
	}

	return lines, []Warning{{
		Kind:   WarnDegenerateClustering,
		Detail: fmt.Sprintf("%d fragments at identical position, using hint order", len(fragments)),
	}}
}

// orderBands arranges bands into final reading order. Column groups read
// left to right, bands top to bottom within each group. A spanning band
// interrupts column order: everything above it across all columns is read
// first, then the spanning band, then column reading resumes below it.
func orderBands(bands []band) []band {
	var spanning []band
	columns := make(map[int][]band)

	for _, b := range bands {
		if b.column == spanningColumn {
			spanning = append(spanning, b)
		} else {
			columns[b.column] = append(columns[b.column], b)
		}
	}

	byPosition := func(bs []band) {
		sort.SliceStable(bs, func(i, j int) bool {
			if bs[i].bbox.Top() != bs[j].bbox.Top() {
				return bs[i].bbox.Top() < bs[j].bbox.Top()
			}
			return bs[i].bbox.Left() < bs[j].bbox.Left()
		})
	}

	byPosition(spanning)
	colIndexes := make([]int, 0, len(columns))
	for idx := range columns {
		byPosition(columns[idx])
		colIndexes = append(colIndexes, idx)
	}
	sort.Ints(colIndexes)

	cursors := make(map[int]int, len(columns))
	ordered := make([]band, 0, len(bands))

	// Each spanning band cuts the page at its top edge; a final sentinel
	// cut flushes the remaining column content.
	for i := 0; i <= len(spanning); i++ {
		cut := math.Inf(1)
		if i < len(spanning) {
			cut = spanning[i].bbox.Top()
		}

		for _, idx := range colIndexes {
			col := columns[idx]
			for cursors[idx] < len(col) && col[cursors[idx]].bbox.Center().Y < cut {
				ordered = append(ordered, col[cursors[idx]])
				cursors[idx]++
			}
		}

		if i < len(spanning) {
			ordered = append(ordered, spanning[i])
		}
	}

	return ordered
}

// buildLine materializes one band into a reconstructed line: words sorted
// left to right, overlapping duplicates dropped, sub-word chunks glued.
func (r *Resolver) buildLine(b band, rank int) (model.ReconstructedLine, []Warning) {
	frags := make([]model.RawFragment, len(b.fragments))
	copy(frags, b.fragments)
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].BBox.Left() < frags[j].BBox.Left()
	})

	frags, warnings := r.dropOverlaps(frags)
	words := r.glueWords(frags)

	return model.ReconstructedLine{
		BBox:        b.bbox,
		Words:       words,
		ReadingRank: rank,
	}, warnings
}

// dropOverlaps removes extraction artifacts where two words occupy the same
// horizontal range. The word with the wider bbox wins; the drop is recorded
// as a warning, never an error.
func (r *Resolver) dropOverlaps(frags []model.RawFragment) ([]model.RawFragment, []Warning) {
	if len(frags) < 2 {
		return frags, nil
	}

	var warnings []Warning
	kept := frags[:1]

	for _, f := range frags[1:] {
		last := &kept[len(kept)-1]
		overlap := last.BBox.HorizontalOverlap(f.BBox)
		narrower := math.Min(last.BBox.Width, f.BBox.Width)

		if narrower > 0 && overlap/narrower >= r.config.Bands.OverlapDropRatio {
			dropped := f
			if f.BBox.Width > last.BBox.Width {
				dropped = *last
				*last = f
			}
			warnings = append(warnings, Warning{
				Kind:   WarnWordDropped,
				Detail: fmt.Sprintf("dropped %q overlapping %q", dropped.Text, last.Text),
			})
			continue
		}
		kept = append(kept, f)
	}

	return kept, warnings
}

// glueWords converts fragments to words, merging adjacent fragments whose
// horizontal gap is too small to be a word boundary (sub-word chunks emitted
// separately by the extractor).
func (r *Resolver) glueWords(frags []model.RawFragment) []model.Word {
	if len(frags) == 0 {
		return nil
	}

	words := []model.Word{fragmentWord(frags[0])}

	for _, f := range frags[1:] {
		last := &words[len(words)-1]
		glueGap := r.config.Bands.WordGlueFactor * math.Max(last.BBox.Height, f.BBox.Height)
		gap := f.BBox.Left() - last.BBox.Right()

		if gap <= glueGap {
			last.Text += f.Text
			last.BBox = last.BBox.Union(f.BBox)
			last.Baseline = math.Max(last.Baseline, f.BBox.Bottom())
		} else {
			words = append(words, fragmentWord(f))
		}
	}

	return words
}

// fragmentWord converts a raw fragment into a word, deriving the baseline
// from the fragment's bottom edge.
func fragmentWord(f model.RawFragment) model.Word {
	return model.Word{
		BBox:     f.BBox,
		Text:     f.Text,
		Baseline: f.BBox.Bottom(),
	}
}

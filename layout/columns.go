package layout

import (
	"math"
	"sort"

	"github.com/pdftty/pdftty/model"
)

// gap is a detected vertical whitespace channel separating column groups.
type gap struct {
	left, right float64
}

// center returns the X coordinate of the column boundary inside the gap.
func (g gap) center() float64 {
	return (g.left + g.right) / 2
}

// width returns the horizontal extent of the gap.
func (g gap) width() float64 {
	return g.right - g.left
}

// detectBoundaries finds the sustained whitespace channels that separate
// column groups. It walks the x-intervals between fragment edges and keeps
// the intervals left open by most of the text height; full-width content
// (a heading above two columns) blocks only its own band height and does
// not defeat the boundary. A gap qualifies when it is wider than the
// threshold derived from the median character width, so ordinary word
// spacing never registers.
func detectBoundaries(fragments []model.RawFragment, bands []band, cfg ColumnConfig) []gap {
	// A single band cannot establish a sustained gap; an aligned hole in
	// one line is just word spacing.
	if len(bands) < 2 {
		return nil
	}

	totalHeight := 0.0
	for _, b := range bands {
		totalHeight += b.bbox.Height
	}
	if totalHeight <= 0 {
		return nil
	}

	threshold := math.Max(cfg.MinGapWidth, cfg.GapWidthFactor*medianCharWidth(fragments))
	xs := breakpoints(fragments)

	var gaps []gap
	open := false
	var current gap

	for i := 0; i < len(xs)-1; i++ {
		interval := gap{left: xs[i], right: xs[i+1]}
		if interval.width() <= 0 {
			continue
		}
		if openFraction(bands, interval, totalHeight) >= cfg.MinGapHeightRatio {
			if open {
				current.right = interval.right
			} else {
				current = interval
				open = true
			}
			continue
		}
		if open {
			gaps = appendQualified(gaps, current, threshold, fragments)
			open = false
		}
	}
	if open {
		gaps = appendQualified(gaps, current, threshold, fragments)
	}

	if cfg.MaxColumns > 0 && len(gaps) > cfg.MaxColumns-1 {
		gaps = gaps[:cfg.MaxColumns-1]
	}

	return gaps
}

// appendQualified keeps the candidate gap only when it clears the width
// threshold and has column content strictly on both sides. An open channel
// at a page margin is not a boundary.
func appendQualified(gaps []gap, g gap, threshold float64, fragments []model.RawFragment) []gap {
	if g.width() < threshold {
		return gaps
	}

	leftContent, rightContent := false, false
	for _, f := range fragments {
		if f.BBox.Right() <= g.left {
			leftContent = true
		}
		if f.BBox.Left() >= g.right {
			rightContent = true
		}
	}
	if leftContent && rightContent {
		gaps = append(gaps, g)
	}
	return gaps
}

// breakpoints returns the sorted, de-duplicated left and right edges of all
// fragments. Between two consecutive breakpoints the set of covering
// fragments is constant.
func breakpoints(fragments []model.RawFragment) []float64 {
	xs := make([]float64, 0, 2*len(fragments))
	for _, f := range fragments {
		xs = append(xs, f.BBox.Left(), f.BBox.Right())
	}
	sort.Float64s(xs)

	uniq := xs[:0]
	for _, x := range xs {
		if len(uniq) == 0 || x > uniq[len(uniq)-1] {
			uniq = append(uniq, x)
		}
	}
	return uniq
}

// openFraction measures how much of the summed band height leaves the
// interval uncovered. A band blocks the interval when any of its fragments
// overlaps it horizontally.
func openFraction(bands []band, interval gap, totalHeight float64) float64 {
	blocked := 0.0
	for _, b := range bands {
		for _, f := range b.fragments {
			if f.BBox.Left() < interval.right && f.BBox.Right() > interval.left {
				blocked += b.bbox.Height
				break
			}
		}
	}
	return (totalHeight - blocked) / totalHeight
}

// bucketFragments partitions fragments into column groups keyed by column
// index, left to right. Fragments straddling a boundary land in the
// spanningColumn group and are read as full-width interrupts.
func bucketFragments(fragments []model.RawFragment, gaps []gap) map[int][]model.RawFragment {
	buckets := make(map[int][]model.RawFragment)
	for _, f := range fragments {
		col := fragmentColumn(f.BBox, gaps)
		buckets[col] = append(buckets[col], f)
	}
	return buckets
}

// fragmentColumn decides the column group for a single fragment bbox.
func fragmentColumn(bbox model.BBox, gaps []gap) int {
	for _, g := range gaps {
		boundary := g.center()
		if bbox.Left() < boundary && bbox.Right() > boundary {
			return spanningColumn
		}
	}

	center := bbox.Center().X
	column := 0
	for _, g := range gaps {
		if center > g.center() {
			column++
		}
	}
	return column
}

// contentWidth returns the horizontal extent of the page's text content.
func contentWidth(fragments []model.RawFragment) float64 {
	if len(fragments) == 0 {
		return 0
	}
	left := math.Inf(1)
	right := math.Inf(-1)
	for _, f := range fragments {
		left = math.Min(left, f.BBox.Left())
		right = math.Max(right, f.BBox.Right())
	}
	return right - left
}

package layout

import (
	"math"
	"sort"

	"github.com/pdftty/pdftty/model"
)

// band is a horizontal cluster of fragments judged to lie on the same
// typographic line. column is the band's column group index after column
// assignment, or spanningColumn for full-width bands.
type band struct {
	bbox      model.BBox
	fragments []model.RawFragment
	column    int
}

// spanningColumn marks a band that straddles column boundaries and is read
// as its own full-width unit.
const spanningColumn = -1

// groupIntoBands clusters fragments into line bands by vertical position.
// Two fragments share a band iff the distance between their vertical centers
// is within the tolerance derived from the smaller fragment's height.
func groupIntoBands(fragments []model.RawFragment, cfg BandConfig) []band {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.RawFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Center().Y < sorted[j].BBox.Center().Y
	})

	var bands []band
	current := band{
		bbox:      sorted[0].BBox,
		fragments: []model.RawFragment{sorted[0]},
	}

	for _, frag := range sorted[1:] {
		refY := averageCenterY(current.fragments)
		tolerance := cfg.VerticalToleranceFactor *
			math.Min(frag.BBox.Height, minFragmentHeight(current.fragments))

		if math.Abs(frag.BBox.Center().Y-refY) <= tolerance {
			current.fragments = append(current.fragments, frag)
			current.bbox = current.bbox.Union(frag.BBox)
		} else {
			bands = append(bands, current)
			current = band{
				bbox:      frag.BBox,
				fragments: []model.RawFragment{frag},
			}
		}
	}
	bands = append(bands, current)

	return bands
}

// averageCenterY returns the mean vertical center of the fragments.
func averageCenterY(fragments []model.RawFragment) float64 {
	total := 0.0
	for _, f := range fragments {
		total += f.BBox.Center().Y
	}
	return total / float64(len(fragments))
}

// minFragmentHeight returns the smallest fragment height in the band.
func minFragmentHeight(fragments []model.RawFragment) float64 {
	min := fragments[0].BBox.Height
	for _, f := range fragments[1:] {
		if f.BBox.Height < min {
			min = f.BBox.Height
		}
	}
	return min
}

// medianCharWidth estimates the typical character width across fragments by
// taking the median of per-fragment width over rune count. Fragments with no
// width contribute nothing.
func medianCharWidth(fragments []model.RawFragment) float64 {
	widths := make([]float64, 0, len(fragments))
	for _, f := range fragments {
		n := len([]rune(f.Text))
		if n == 0 || f.BBox.Width <= 0 {
			continue
		}
		widths = append(widths, f.BBox.Width/float64(n))
	}
	if len(widths) == 0 {
		return 0
	}

	sort.Float64s(widths)
	return widths[len(widths)/2]
}

package grid

import (
	"math"

	"github.com/pdftty/pdftty/model"
)

// MapperConfig holds configuration for page-to-grid coordinate mapping.
type MapperConfig struct {
	// AspectRatio is the height of a terminal cell over its width. Vertical
	// scale is divided by it so page proportions survive the translation to
	// cells. Default: 2.0.
	AspectRatio float64

	// SeparatorCells is the minimum number of blank cells inserted between
	// two words that map to overlapping column ranges on the same row.
	// Default: 1.
	SeparatorCells int
}

// DefaultMapperConfig returns the documented default configuration.
func DefaultMapperConfig() MapperConfig {
	return MapperConfig{
		AspectRatio:    2.0,
		SeparatorCells: 1,
	}
}

// Mapper translates resolved pages onto character grids. Mappers are
// stateless and safe for concurrent use.
type Mapper struct {
	config MapperConfig
}

// NewMapper creates a mapper with the default configuration.
func NewMapper() *Mapper {
	return &Mapper{config: DefaultMapperConfig()}
}

// NewMapperWithConfig creates a mapper with custom configuration.
func NewMapperWithConfig(config MapperConfig) *Mapper {
	return &Mapper{config: config}
}

// Map renders the page's resolved lines onto a fresh rows x cols grid.
// Mapping never fails: degenerate dimensions yield an empty grid, words
// past the right edge truncate, and colliding words are pushed apart by
// blank separator cells.
func (m *Mapper) Map(page *model.Page, rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	if page == nil || g.Rows == 0 || g.Cols == 0 ||
		page.Width <= 0 || page.Height <= 0 {
		return g
	}

	sx, sy := m.scales(page, rows, cols)

	// nextFree tracks, per row, the first column a new word may occupy
	// without touching already placed content.
	nextFree := make(map[int]int)

	for i := range page.Lines {
		line := &page.Lines[i]
		for _, word := range line.Words {
			m.placeWord(g, word, sx, sy, nextFree)
		}
	}

	return g
}

// scales computes the page-unit-to-cell scale factors: a uniform scale that
// fits the page inside the grid, with the vertical axis compressed by the
// cell aspect ratio.
func (m *Mapper) scales(page *model.Page, rows, cols int) (sx, sy float64) {
	aspect := m.config.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}

	sx = float64(cols) / page.Width
	fitY := float64(rows) / page.Height
	if sx/aspect > fitY {
		sx = fitY * aspect
	}
	sy = sx / aspect
	return sx, sy
}

// placeWord writes one word onto the grid, clamping its anchor into range
// and truncating at the right edge without wrapping. The row comes from
// the word's vertical center, the column from its left edge (words start
// where they start on the page; centering would shift long words left),
// both floored to cell coordinates.
func (m *Mapper) placeWord(g *Grid, word model.Word, sx, sy float64, nextFree map[int]int) {
	row := clamp(int(math.Floor(word.BBox.Center().Y*sy)), 0, g.Rows-1)
	col := clamp(int(math.Floor(word.BBox.Left()*sx)), 0, g.Cols-1)

	if free, ok := nextFree[row]; ok && col < free+m.config.SeparatorCells {
		col = free + m.config.SeparatorCells
	}

	clipped := false
	first := true
	for _, r := range word.Text {
		w := runeWidth(r)
		if col+w > g.Cols {
			clipped = true
			break
		}
		g.Set(row, col, Cell{Rune: r, FragmentStart: first})
		first = false
		col += w
	}

	if clipped {
		g.ClippedWords++
	}
	if !first {
		nextFree[row] = col
	}
}

// clamp constrains v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

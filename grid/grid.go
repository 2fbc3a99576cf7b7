package grid

import (
	"strings"

	"golang.org/x/text/width"
)

// CellPos addresses a single cell by row and column, both 0-based.
type CellPos struct {
	Row, Col int
}

// Cell is one character cell. FragmentStart marks the first cell of a
// placed word, which display layers can use for cursor alignment.
type Cell struct {
	Rune          rune
	FragmentStart bool
}

// Grid is a fixed-size character grid. Cells are stored sparsely; absent
// cells render as blanks. ClippedWords counts words that lost characters to
// the right edge during mapping.
type Grid struct {
	Rows, Cols   int
	ClippedWords int

	cells map[CellPos]Cell
}

// NewGrid creates an empty grid. Non-positive dimensions are clamped to
// zero, yielding a grid that accepts no content.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make(map[CellPos]Cell),
	}
}

// Set places a cell, silently ignoring out-of-range positions.
func (g *Grid) Set(row, col int, c Cell) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return
	}
	g.cells[CellPos{Row: row, Col: col}] = c
}

// At returns the cell at the position and whether one has been placed.
func (g *Grid) At(row, col int) (Cell, bool) {
	c, ok := g.cells[CellPos{Row: row, Col: col}]
	return c, ok
}

// Row renders one row as a string, with blanks for empty cells and
// trailing blanks trimmed. A wide rune consumes the following column.
func (g *Grid) Row(row int) string {
	var sb strings.Builder
	for col := 0; col < g.Cols; col++ {
		c, ok := g.At(row, col)
		if !ok {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Rune)
		if runeWidth(c.Rune) == 2 {
			col++
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Render materializes the whole grid, rows joined by newlines.
func (g *Grid) Render() string {
	rows := make([]string, g.Rows)
	for row := 0; row < g.Rows; row++ {
		rows[row] = g.Row(row)
	}
	return strings.Join(rows, "\n")
}

// runeWidth returns the number of terminal columns the rune occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// MessageGrid builds a diagnostic grid with the message centered, one
// message line per grid row around the vertical middle. Display layers use
// it to keep the viewer alive on fatal load errors.
func MessageGrid(rows, cols int, msg string) *Grid {
	g := NewGrid(rows, cols)
	lines := strings.Split(msg, "\n")

	startRow := (rows - len(lines)) / 2
	if startRow < 0 {
		startRow = 0
	}

	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > cols {
			runes = runes[:cols]
		}
		col := (cols - len(runes)) / 2
		for _, r := range runes {
			g.Set(startRow+i, col, Cell{Rune: r})
			col++
		}
	}

	return g
}

// Package grid maps reconstructed page lines onto a fixed-size character
// grid for terminal display.
//
// The mapper scales page coordinates to cell coordinates with a uniform
// scale corrected for the terminal cell aspect (cells are roughly twice as
// tall as wide), so a square region of the page stays visually square on
// screen. Placement is infallible: coordinates outside the page box clamp,
// words running past the right edge truncate, and overlapping words on a
// row are separated by at least one blank cell. The grid never wraps text.
//
// Grids are disposable view artifacts. Each (page, rows, cols) combination
// produces a fresh grid; callers re-map on every resize rather than mutate
// an existing grid.
package grid

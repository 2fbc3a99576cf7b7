package model

import "math"

// Point represents a 2D point in page coordinates (top-left origin).
type Point struct {
	X, Y float64
}

// BBox represents a bounding box in page coordinate units. The origin is the
// top-left corner of the page: Y increases downward.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates. Negative width or height
// is clamped to zero to preserve the non-negativity invariant.
func NewBBox(x, y, width, height float64) BBox {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point.
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Intersects checks if two bounding boxes intersect.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Union returns the smallest bounding box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// HorizontalOverlap returns the length of the horizontal range shared by the
// two boxes, or 0 when they do not overlap on the x-axis.
func (b BBox) HorizontalOverlap(other BBox) float64 {
	left := math.Max(b.Left(), other.Left())
	right := math.Min(b.Right(), other.Right())
	if right <= left {
		return 0
	}
	return right - left
}

// ClampTo constrains the box to lie within [0, width] x [0, height]. Boxes
// that extend past a page edge are trimmed, never dropped.
func (b BBox) ClampTo(width, height float64) BBox {
	x := math.Max(0, math.Min(b.X, width))
	y := math.Max(0, math.Min(b.Y, height))
	right := math.Max(x, math.Min(b.Right(), width))
	bottom := math.Max(y, math.Min(b.Bottom(), height))

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// IsEmpty returns true if the bounding box has zero area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

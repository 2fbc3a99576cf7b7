// Package model provides the intermediate representation for positioned
// document text.
//
// This package defines the data structures the rest of the pipeline operates
// on. The parser produces a [Document] of [Page] values holding raw
// [RawFragment] slices; the layout resolver consumes those fragments and
// replaces them with ordered [ReconstructedLine] values; the grid mapper
// consumes the lines.
//
// # Coordinate convention
//
// All geometry uses a top-left origin: X grows rightward, Y grows downward,
// matching the ALTO description emitted by the extractor. Parsers for other
// description formats must normalize to this convention before constructing
// fragments.
//
// # Ownership and lifecycle
//
// A [Document] is built once per viewed file and rebuilt wholesale on reload.
// Fragments are a transient by-product of parsing: once a page's lines have
// been resolved, [Page.SetLines] drops the fragment slice. Pages are treated
// as immutable after resolution completes.
//
// # Geometry
//
//   - [BBox] - bounding box with union, intersection, and clamp operations
//   - [Point] - 2D point
package model

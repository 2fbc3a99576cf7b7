// Package alto parses the positioned-text description produced by the
// external extractor into the in-memory document model.
//
// The description is an ALTO XML tree of pages, text blocks, lines, and
// word-level String nodes. The parser walks it with a streaming decoder and
// keeps only what the layout engine needs: page dimensions and one
// [model.RawFragment] per word, carrying text content and a bounding box.
//
// The schema is treated as versioned but loosely validated. Unknown elements
// and attributes are ignored so newer extractor versions keep working.
// Geometry attributes that are missing or non-numeric default to zero rather
// than aborting the page; a single corrupt fragment never invalidates the
// document. Only structural failures are fatal: broken XML, a page with no
// usable dimensions, an unsupported character encoding, or a document where
// no page yields any fragment at all.
//
// Fragment order mirrors the description's document order. That order is
// recorded as a hint on each fragment and is not trusted as reading order;
// the layout package derives the authoritative sequence.
package alto

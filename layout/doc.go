// Package layout reconstructs reading order from a page's positioned text
// fragments.
//
// The extractor emits fragments in an arbitrary document order. This package
// turns that flat set into an ordered sequence of reconstructed lines in
// three passes:
//
//   - banding: fragments whose vertical centers fall within a tolerance of
//     each other cluster into horizontal bands (one band per typographic line)
//   - column detection: sustained vertical whitespace gaps in the bands'
//     horizontal projection become column boundaries; bands that straddle a
//     boundary are treated as full-width interrupts
//   - ordering: columns read left to right, bands top to bottom within a
//     column, with full-width bands interrupting column order at their
//     vertical position
//
// # Usage
//
//	resolver := layout.NewResolver()
//	lines, warnings := resolver.Resolve(page.Fragments, page.Width, page.Height)
//	page.SetLines(lines)
//
// Resolve is a pure function of its inputs: resolving the same fragment set
// twice yields identical lines and ranks, and independent pages can be
// resolved concurrently.
//
// # Configuration
//
// Clustering and gap thresholds are configuration values, not constants:
//
//	config := layout.DefaultConfig()
//	config.Columns.GapWidthFactor = 3.0
//	resolver := layout.NewResolverWithConfig(config)
//
// # Degenerate input
//
// Degenerate pages never fail. An empty fragment set resolves to an empty
// line sequence; a page whose fragments cannot be clustered spatially falls
// back to the description's hint order and records a [Warning].
package layout

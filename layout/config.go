package layout

// BandConfig holds configuration for clustering fragments into line bands.
type BandConfig struct {
	// VerticalToleranceFactor scales the smaller fragment height to get the
	// maximum center-to-center distance for two fragments to share a band.
	// Extracted baselines jitter between adjacent words, so this is a
	// tolerance band rather than exact equality. Default: 0.5.
	VerticalToleranceFactor float64

	// WordGlueFactor scales fragment height to get the maximum horizontal
	// gap at which two adjacent fragments are sub-word chunks of the same
	// word and merge without a separating space. Default: 0.1.
	WordGlueFactor float64

	// OverlapDropRatio is the minimum mutual horizontal overlap, as a
	// fraction of the narrower fragment, at which two fragments on a band
	// are considered duplicates of each other. The wider one is kept.
	// Default: 0.6.
	OverlapDropRatio float64
}

// ColumnConfig holds configuration for column boundary detection.
type ColumnConfig struct {
	// GapWidthFactor scales the median character width to get the minimum
	// horizontal whitespace gap that can separate columns. Default: 2.5.
	GapWidthFactor float64

	// MinGapWidth is an absolute floor for the gap threshold, guarding
	// against degenerate median estimates on sparse pages. Default: 6.0
	// page units.
	MinGapWidth float64

	// MinGapHeightRatio is the fraction of the page's text height a gap must
	// leave unobstructed to count as a column boundary. A gap only as tall
	// as a single line is ordinary word spacing, not a boundary. Default:
	// 0.5.
	MinGapHeightRatio float64

	// MaxColumns caps the number of detected columns. Default: 6.
	MaxColumns int

	// SpanningThreshold is the minimum band width, as a fraction of the
	// content width, for a band to be treated as full-width regardless of
	// boundary crossings. Default: 0.7.
	SpanningThreshold float64
}

// Config bundles the resolver's tunables.
type Config struct {
	Bands   BandConfig
	Columns ColumnConfig
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		Bands: BandConfig{
			VerticalToleranceFactor: 0.5,
			WordGlueFactor:          0.1,
			OverlapDropRatio:        0.6,
		},
		Columns: ColumnConfig{
			GapWidthFactor:    2.5,
			MinGapWidth:       6.0,
			MinGapHeightRatio: 0.5,
			MaxColumns:        6,
			SpanningThreshold: 0.7,
		},
	}
}

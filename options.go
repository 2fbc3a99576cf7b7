package pdftty

import (
	"github.com/pdftty/pdftty/extract"
	"github.com/pdftty/pdftty/grid"
	"github.com/pdftty/pdftty/layout"
	"github.com/pdftty/pdftty/logger"
)

// options holds session configuration.
type options struct {
	extractConfig *extract.Config
	layoutConfig  layout.Config
	mapperConfig  grid.MapperConfig
	log           logger.Logger
	dumpPath      string
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		extractConfig: extract.NewDefaultConfig(),
		layoutConfig:  layout.DefaultConfig(),
		mapperConfig:  grid.DefaultMapperConfig(),
		log:           logger.Discard(),
	}
}

// Option configures a session at Open time.
type Option func(*options)

// WithExtractConfig replaces the extraction configuration.
func WithExtractConfig(cfg *extract.Config) Option {
	return func(o *options) {
		o.extractConfig = cfg
	}
}

// WithPageRange bounds extraction to the 1-based page range [first, last].
// Zero leaves the corresponding side unbounded.
func WithPageRange(first, last int) Option {
	return func(o *options) {
		o.extractConfig.FirstPage = first
		o.extractConfig.LastPage = last
	}
}

// WithLayoutConfig replaces the reading-order resolver configuration.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(o *options) {
		o.layoutConfig = cfg
	}
}

// WithMapperConfig replaces the grid mapper configuration.
func WithMapperConfig(cfg grid.MapperConfig) Option {
	return func(o *options) {
		o.mapperConfig = cfg
	}
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
		o.extractConfig.Logger = log
	}
}

// WithDumpDescription writes the raw extractor output to path on every
// load, for debugging malformed descriptions.
func WithDumpDescription(path string) Option {
	return func(o *options) {
		o.dumpPath = path
	}
}

package extract

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pdftty/pdftty/logger"
)

// Config controls how the external pdfalto extractor is invoked.
type Config struct {
	// PdfaltoPath is the pdfalto binary name or path, resolved through
	// PATH when not absolute.
	PdfaltoPath string `validate:"required"`

	// FirstPage and LastPage bound the extracted page range, 1-based.
	// Zero means unbounded on that side.
	FirstPage int `validate:"min=0"`
	LastPage  int `validate:"min=0"`

	// Timeout bounds a single extractor run.
	Timeout time.Duration `validate:"required,min=1"`

	// KeepArtifacts leaves the temp directory with the raw extractor
	// output in place for debugging.
	KeepArtifacts bool

	Logger logger.Logger
}

// NewDefaultConfig returns the default extraction configuration.
func NewDefaultConfig() *Config {
	return &Config{
		PdfaltoPath: "pdfalto",
		FirstPage:   0,
		LastPage:    0,
		Timeout:     30 * time.Second,
	}
}

// Validate checks the config for structural validity.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.LastPage > 0 && cfg.FirstPage > cfg.LastPage {
		return fmt.Errorf("invalid page range: first %d after last %d", cfg.FirstPage, cfg.LastPage)
	}
	return nil
}

// Package extract runs the external pdfalto extractor and returns the raw
// positioned-text description it produces. PDF decoding itself never
// happens in-process; this package's job is process invocation, artifact
// scoping, and failure classification.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/pdftty/pdftty/logger"
)

// Extractor invokes pdfalto with a scoped temp directory per run.
type Extractor struct {
	config *Config
	log    logger.Logger
}

// New creates an extractor, validating the config first.
func New(cfg *Config) (*Extractor, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("extract config: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Extractor{config: cfg, log: log}, nil
}

// Run converts the PDF at pdfPath and returns the raw description bytes.
// All intermediate artifacts live in a per-run temp directory that is
// removed on every path out of this function unless KeepArtifacts is set.
func (e *Extractor) Run(ctx context.Context, pdfPath string) ([]byte, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, &ConversionError{Path: pdfPath, Err: err}
	}

	dir, err := os.MkdirTemp("", "pdftty-extract-*")
	if err != nil {
		return nil, &ConversionError{Path: pdfPath, Err: err}
	}
	if e.config.KeepArtifacts {
		e.log.Info("keeping extraction artifacts", "dir", dir)
	} else {
		defer os.RemoveAll(dir)
	}

	outPath := filepath.Join(dir, "out.xml")
	args := e.buildArgs(pdfPath, outPath)

	runCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, e.config.PdfaltoPath, args...)
	cmd.Stderr = &stderr

	e.log.Debug("running extractor", "cmd", e.config.PdfaltoPath, "args", args)
	if err := cmd.Run(); err != nil {
		if ctxErr := runCtx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &ConversionError{
			Path:   pdfPath,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, &ConversionError{Path: pdfPath, Stderr: stderr.String(), Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ConversionError{
			Path: pdfPath,
			Err:  errors.New("extractor produced no output"),
		}
	}

	e.log.Debug("extraction complete", "bytes", len(data))
	return data, nil
}

// buildArgs assembles the pdfalto argument list: text-only reading-order
// output, optional page range, then input and output paths.
func (e *Extractor) buildArgs(pdfPath, outPath string) []string {
	args := []string{"-readingOrder", "-noImage", "-noLineNumbers"}
	if e.config.FirstPage > 0 {
		args = append(args, "-f", strconv.Itoa(e.config.FirstPage))
	}
	if e.config.LastPage > 0 {
		args = append(args, "-l", strconv.Itoa(e.config.LastPage))
	}
	return append(args, pdfPath, outPath)
}

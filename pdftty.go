// Package pdftty renders a PDF's text content on a terminal character grid
// while preserving the document's visual layout. Extraction is delegated to
// the external pdfalto tool; the pipeline in this module is positioned-text
// parsing, reading-order resolution, and grid mapping.
//
// Basic usage:
//
//	session := pdftty.Open("document.pdf")
//	if err := session.Load(ctx); err != nil {
//	    // handle error
//	}
//	g := session.Grid(1, rows, cols)
//	fmt.Println(g.Render())
//
// With options:
//
//	session := pdftty.Open("report.pdf",
//	    pdftty.WithPageRange(2, 5),
//	    pdftty.WithLogger(log),
//	)
//
// Paths ending in .xml are read as raw ALTO descriptions without invoking
// the extractor, which is how the bundled sample document works.
package pdftty

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pdftty/pdftty/alto"
	"github.com/pdftty/pdftty/extract"
	"github.com/pdftty/pdftty/grid"
	"github.com/pdftty/pdftty/layout"
	"github.com/pdftty/pdftty/logger"
	"github.com/pdftty/pdftty/model"
)

// Session ties the pipeline together for one viewed file. A session is
// reloadable: each Load runs the full pipeline under a new generation, and
// a load that finishes after a newer one started is discarded.
type Session struct {
	path string
	opts options

	generation atomic.Uint64

	mu       sync.Mutex
	doc      *model.Document
	warnings []layout.Warning
}

// Open creates a session for the file at path. Nothing is read until Load.
func Open(path string, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{path: path, opts: o}
}

// Path returns the viewed file's path.
func (s *Session) Path() string {
	return s.path
}

// Load runs extraction, parsing, and per-page reading-order resolution.
// Pages resolve in parallel; the resolver is pure, so pages are
// independent. The resulting document replaces the session's current one
// unless a newer Load has started in the meantime.
func (s *Session) Load(ctx context.Context) error {
	gen := s.generation.Add(1)
	log := s.opts.log

	data, err := s.fetchDescription(ctx)
	if err != nil {
		return err
	}

	if s.opts.dumpPath != "" {
		if werr := os.WriteFile(s.opts.dumpPath, data, 0o644); werr != nil {
			log.Warn("failed to dump raw description", "path", s.opts.dumpPath, "error", werr)
		} else {
			log.Info("dumped raw description", "path", s.opts.dumpPath, "bytes", len(data))
		}
	}

	doc, err := alto.Parse(data)
	if err != nil {
		return err
	}

	resolver := layout.NewResolverWithConfig(s.opts.layoutConfig)
	pageWarnings := make([][]layout.Warning, len(doc.Pages))

	g, gctx := errgroup.WithContext(ctx)
	for i, page := range doc.Pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines, warns := resolver.Resolve(page.Fragments, page.Width, page.Height)
			page.SetLines(lines)
			pageWarnings[i] = warns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var warnings []layout.Warning
	for _, w := range pageWarnings {
		warnings = append(warnings, w...)
	}

	if s.generation.Load() != gen {
		log.Debug("discarding stale load", "generation", gen)
		return nil
	}

	s.mu.Lock()
	s.doc = doc
	s.warnings = warnings
	s.mu.Unlock()

	log.Info("document loaded",
		"path", s.path, "pages", doc.PageCount(), "warnings", len(warnings))
	return nil
}

// fetchDescription obtains the raw positioned-text description, either by
// reading an ALTO file directly or by running the extractor.
func (s *Session) fetchDescription(ctx context.Context) ([]byte, error) {
	if s.path == SamplePath {
		return SampleDescription(), nil
	}
	if strings.EqualFold(filepath.Ext(s.path), ".xml") {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("reading description %s: %w", s.path, err)
		}
		return data, nil
	}

	e, err := extract.New(s.opts.extractConfig)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, s.path)
}

// Document returns the currently loaded document, or nil before the first
// successful Load.
func (s *Session) Document() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// PageCount returns the loaded document's page count, 0 when unloaded.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return 0
	}
	return s.doc.PageCount()
}

// Warnings returns the layout warnings collected across all pages of the
// last successful Load.
func (s *Session) Warnings() []layout.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings
}

// Grid maps the given 1-indexed page onto a fresh rows x cols grid. Grids
// are disposable view artifacts recomputed on every call; nothing is
// cached. Out-of-range pages and unloaded sessions yield a diagnostic
// grid rather than an error.
func (s *Session) Grid(pageNum, rows, cols int) *grid.Grid {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()

	if doc == nil {
		return grid.MessageGrid(rows, cols, "no document loaded")
	}
	page := doc.GetPage(pageNum)
	if page == nil {
		return grid.MessageGrid(rows, cols, fmt.Sprintf("no page %d", pageNum))
	}
	return grid.NewMapperWithConfig(s.opts.mapperConfig).Map(page, rows, cols)
}

// Logger returns the session's logger.
func (s *Session) Logger() logger.Logger {
	return s.opts.log
}

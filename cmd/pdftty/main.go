// Command pdftty views a PDF's text layout in the terminal. With no
// argument it opens a bundled sample document, so the binary runs
// standalone without pdfalto installed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdftty/pdftty"
	"github.com/pdftty/pdftty/alto"
	"github.com/pdftty/pdftty/extract"
	"github.com/pdftty/pdftty/grid"
	"github.com/pdftty/pdftty/internal/tui"
	"github.com/pdftty/pdftty/layout"
	"github.com/pdftty/pdftty/logger"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitConversion = 2
	exitParse      = 3
	exitInternal   = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd, f := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pdftty:", err)

		var convErr *extract.ConversionError
		if errors.As(err, &convErr) {
			return exitConversion
		}
		var parseErr *alto.ParseError
		if errors.As(err, &parseErr) {
			return exitParse
		}
		// Errors raised before the command body runs are usage errors
		// (unknown flags, too many arguments); anything else is an
		// unclassified runtime failure.
		if f.ran {
			return exitInternal
		}
		return exitUsage
	}
	return exitOK
}

type flags struct {
	firstPage     int
	lastPage      int
	pdfaltoPath   string
	keepArtifacts bool
	dumpAlto      string
	logLevel      string
	aspectRatio   float64
	maxColumns    int
	printPage     int

	ran bool
}

func newRootCmd() (*cobra.Command, *flags) {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "pdftty [file]",
		Short: "View a PDF's text layout in the terminal",
		Long: "pdftty renders a PDF's text content on a character grid while\n" +
			"preserving the document's visual layout: columns, headings, and\n" +
			"spacing survive the translation to cells.\n\n" +
			"Files ending in .xml are read as raw ALTO descriptions. With no\n" +
			"argument a bundled sample document opens.\n\n" +
			"Exit codes: 0 success, 1 usage error, 2 extraction failure,\n" +
			"3 malformed description, 4 other runtime failure.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			f.ran = true
			path := pdftty.SamplePath
			if len(args) == 1 {
				path = args[0]
			}
			return view(path, f)
		},
	}

	cmd.Flags().IntVarP(&f.firstPage, "first", "f", 0, "first page to extract (1-based)")
	cmd.Flags().IntVarP(&f.lastPage, "last", "l", 0, "last page to extract (1-based)")
	cmd.Flags().StringVar(&f.pdfaltoPath, "pdfalto", "pdfalto", "path to the pdfalto binary")
	cmd.Flags().BoolVar(&f.keepArtifacts, "keep-artifacts", false, "keep the extraction temp directory")
	cmd.Flags().StringVar(&f.dumpAlto, "dump-alto", "", "write the raw extractor output to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log to stderr at this level (debug|info|warn|error)")
	cmd.Flags().Float64Var(&f.aspectRatio, "aspect", 2.0, "terminal cell height over width")
	cmd.Flags().IntVar(&f.maxColumns, "max-columns", 6, "maximum detected column count")
	cmd.Flags().IntVar(&f.printPage, "print", 0, "render this page once to stdout and exit")

	return cmd, f
}

func view(path string, f *flags) error {
	log := logger.Discard()
	if f.logLevel != "" {
		cfg := logger.DefaultConfig()
		cfg.Level = logger.Level(f.logLevel)
		log = logger.New(cfg)
	}

	session := pdftty.Open(path, sessionOptions(f, log)...)

	if f.printPage > 0 {
		return printOnce(session, f.printPage)
	}
	return tui.Run(session, log)
}

func sessionOptions(f *flags, log logger.Logger) []pdftty.Option {
	extractCfg := extract.NewDefaultConfig()
	extractCfg.PdfaltoPath = f.pdfaltoPath
	extractCfg.FirstPage = f.firstPage
	extractCfg.LastPage = f.lastPage
	extractCfg.KeepArtifacts = f.keepArtifacts

	layoutCfg := layout.DefaultConfig()
	layoutCfg.Columns.MaxColumns = f.maxColumns

	mapperCfg := grid.DefaultMapperConfig()
	mapperCfg.AspectRatio = f.aspectRatio

	opts := []pdftty.Option{
		pdftty.WithExtractConfig(extractCfg),
		pdftty.WithLayoutConfig(layoutCfg),
		pdftty.WithMapperConfig(mapperCfg),
		pdftty.WithLogger(log),
	}
	if f.dumpAlto != "" {
		opts = append(opts, pdftty.WithDumpDescription(f.dumpAlto))
	}
	return opts
}

// printOnce loads the document and writes one page's grid to stdout,
// sized to the terminal when stdout is one.
func printOnce(session *pdftty.Session, page int) error {
	if err := session.Load(context.Background()); err != nil {
		return err
	}

	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}

	g := session.Grid(page, rows, cols)
	fmt.Println(g.Render())
	if g.ClippedWords > 0 {
		fmt.Fprintf(os.Stderr, "pdftty: %d words clipped at the right edge\n", g.ClippedWords)
	}
	return nil
}

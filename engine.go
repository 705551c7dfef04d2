package outline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/outline/layout"
	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/tables"
)

// ErrNoPages is returned for a nil document or one without pages
var ErrNoPages = errors.New("outline: document has no pages")

// Config holds engine configuration
type Config struct {
	// Workers is the maximum number of pages processed concurrently.
	// Default: GOMAXPROCS
	Workers int

	// ParallelThreshold is the page count below which pages are processed
	// one at a time. Default: 10
	ParallelThreshold int

	// TitlePages is the number of leading pages searched for the title.
	// Default: 3
	TitlePages int

	// Font configures font hierarchy analysis
	Font layout.FontConfig

	// StructureDetector finds tables from page geometry. Nil disables
	// structural table detection.
	StructureDetector tables.StructureDetector

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 10,
		TitlePages:        3,
		Font:              layout.DefaultFontConfig(),
	}
}

func (c *Config) defaults() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TitlePages < 1 {
		c.TitlePages = DefaultConfig().TitlePages
	}
	if c.Font == (layout.FontConfig{}) {
		c.Font = layout.DefaultFontConfig()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}

// Result is the full output of an analysis
type Result struct {
	// Outline is the title and validated heading list
	Outline *model.Outline

	// Hierarchy is the font hierarchy derived in the first pass
	Hierarchy model.FontHierarchy

	// DocumentType is the coarse genre of the document
	DocumentType model.DocumentType

	// Pages is the number of pages whose headings were extracted
	Pages int

	// Warnings are absorbed, non-fatal problems
	Warnings []Warning
}

// Engine builds outlines. It holds no per-document state: one Engine may
// serve any number of documents, concurrently.
type Engine struct {
	config   Config
	fonts    *layout.FontAnalyzer
	types    *layout.TypeClassifier
	titles   *layout.TitleExtractor
	headings *layout.HeadingExtractor
	logger   *slog.Logger
}

// NewEngine creates an engine with default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(config Config) *Engine {
	config.defaults()

	detector := tables.NewDetectorWithConfig(tables.DefaultConfig(), config.StructureDetector)

	titleConfig := layout.DefaultTitleConfig()
	titleConfig.Pages = config.TitlePages

	return &Engine{
		config:   config,
		fonts:    layout.NewFontAnalyzerWithConfig(config.Font),
		types:    layout.NewTypeClassifier(),
		titles:   layout.NewTitleExtractorWithConfig(titleConfig, detector),
		headings: layout.NewHeadingExtractorWithComponents(detector, nil, nil),
		logger:   config.Logger,
	}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Extract returns the outline of doc. See Analyze.
func (e *Engine) Extract(ctx context.Context, doc *model.Document) (*model.Outline, error) {
	result, err := e.Analyze(ctx, doc)
	if result == nil {
		return nil, err
	}
	return result.Outline, err
}

// Analyze builds the outline of doc together with the analysis behind it.
//
// If ctx is cancelled while pages are being processed, no further pages are
// started; the headings of completed pages are validated and returned with
// ctx.Err(). A nil or empty document returns ErrNoPages.
func (e *Engine) Analyze(ctx context.Context, doc *model.Document) (*Result, error) {
	if doc.PageCount() == 0 {
		return nil, ErrNoPages
	}

	workers := e.workers(doc.PageCount())

	hierarchy, err := e.fonts.Analyze(ctx, doc, workers)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("font hierarchy",
		"title", hierarchy.Title,
		"h1", hierarchy.H1,
		"h2", hierarchy.H2,
		"h3", hierarchy.H3,
		"body", hierarchy.Body,
	)

	docType := e.types.Classify(doc)
	title := e.titles.Extract(doc, hierarchy)
	e.logger.Debug("document classified", "type", docType, "title", title)

	pages, err := e.extractPages(ctx, doc, hierarchy, title, workers)

	result := &Result{
		Hierarchy:    hierarchy,
		DocumentType: docType,
	}

	var headings []model.Heading
	for _, ph := range pages {
		if ph == nil {
			continue
		}
		result.Pages++
		headings = append(headings, ph.Headings...)
		if ph.StructureErr != nil {
			e.logger.Debug("structural table detection failed", "page", ph.Page, "error", ph.StructureErr)
			result.Warnings = append(result.Warnings, Warning{Page: ph.Page, Message: ph.StructureErr.Error()})
		}
		e.logger.Debug("page processed", "page", ph.Page, "headings", len(ph.Headings), "toc", ph.TOC, "tables", ph.Tables)
	}

	result.Outline = &model.Outline{
		Title:    title,
		Headings: layout.ValidateHierarchy(headings),
	}
	return result, err
}

// workers returns the concurrency for a document of n pages
func (e *Engine) workers(n int) int {
	if n < e.config.ParallelThreshold {
		return 1
	}
	return min(e.config.Workers, n)
}

// extractPages runs the per-page pass. The returned slice is in page order;
// pages that were not processed are nil.
func (e *Engine) extractPages(ctx context.Context, doc *model.Document, h model.FontHierarchy, title string, workers int) ([]*layout.PageHeadings, error) {
	results := make([]*layout.PageHeadings, len(doc.Pages))

	extract := func(i int) {
		ph := e.headings.ExtractPage(doc.Pages[i], i+1, h, title)
		results[i] = &ph
	}

	if workers <= 1 {
		for i := range doc.Pages {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			extract(i)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range doc.Pages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			extract(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

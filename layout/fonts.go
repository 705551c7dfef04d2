package layout

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

// FontConfig holds configuration for font hierarchy analysis
type FontConfig struct {
	// Tier ratios relative to body size, used when a tier has no evidence.
	// Default: Title=1.5, H1=1.3, H2=1.15, H3=1.1
	TitleRatio float64
	H1Ratio    float64
	H2Ratio    float64
	H3Ratio    float64

	// MinBlockLen is the block text length (runes) a block must exceed to be
	// counted. Default: 3
	MinBlockLen int

	// MaxSamples is the number of text samples kept per font. Default: 3
	MaxSamples int

	// SampleLen truncates each sample (runes). Default: 50
	SampleLen int
}

// DefaultFontConfig returns sensible default configuration
func DefaultFontConfig() FontConfig {
	return FontConfig{
		TitleRatio:  1.5,
		H1Ratio:     1.3,
		H2Ratio:     1.15,
		H3Ratio:     1.1,
		MinBlockLen: 3,
		MaxSamples:  3,
		SampleLen:   50,
	}
}

// FontKey identifies a font by size and name
type FontKey struct {
	Size float64
	Name string
}

// FontStat is the tally for one font across a document
type FontStat struct {
	Key     FontKey
	Count   int          // spans printed in this font
	Chars   int          // runes printed in this font
	Pages   map[int]bool // 0-based page positions
	Bold    bool
	Samples []string
}

// OnPage reports whether the font was seen on the given 0-based page
func (s *FontStat) OnPage(i int) bool {
	return s.Pages[i]
}

// FontStats tallies fonts in first-seen order. Tallies of separate pages
// can be merged; merging pages in document order gives the same result as
// tallying them one after another.
type FontStats struct {
	order []FontKey
	stats map[FontKey]*FontStat
}

// NewFontStats creates an empty tally
func NewFontStats() *FontStats {
	return &FontStats{stats: make(map[FontKey]*FontStat)}
}

// Len returns the number of distinct fonts
func (fs *FontStats) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.order)
}

// Stats returns the tallies in first-seen order
func (fs *FontStats) Stats() []*FontStat {
	if fs == nil {
		return nil
	}
	out := make([]*FontStat, len(fs.order))
	for i, k := range fs.order {
		out[i] = fs.stats[k]
	}
	return out
}

// Get returns the tally for a key
func (fs *FontStats) Get(key FontKey) (*FontStat, bool) {
	if fs == nil {
		return nil, false
	}
	s, ok := fs.stats[key]
	return s, ok
}

func (fs *FontStats) entry(key FontKey) *FontStat {
	s, ok := fs.stats[key]
	if !ok {
		s = &FontStat{Key: key, Pages: make(map[int]bool)}
		fs.stats[key] = s
		fs.order = append(fs.order, key)
	}
	return s
}

// Merge folds other into fs
func (fs *FontStats) Merge(other *FontStats, maxSamples int) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		src := other.stats[k]
		dst := fs.entry(k)
		dst.Count += src.Count
		dst.Chars += src.Chars
		for p := range src.Pages {
			dst.Pages[p] = true
		}
		dst.Bold = dst.Bold || src.Bold
		for _, sample := range src.Samples {
			if len(dst.Samples) >= maxSamples {
				break
			}
			dst.Samples = append(dst.Samples, sample)
		}
	}
}

// FontAnalyzer derives a document's font hierarchy from span statistics
type FontAnalyzer struct {
	config FontConfig
}

// NewFontAnalyzer creates a font analyzer with default configuration
func NewFontAnalyzer() *FontAnalyzer {
	return &FontAnalyzer{config: DefaultFontConfig()}
}

// NewFontAnalyzerWithConfig creates a font analyzer with custom configuration
func NewFontAnalyzerWithConfig(config FontConfig) *FontAnalyzer {
	return &FontAnalyzer{config: config}
}

// Tally counts the fonts of one page. pageIndex is the page's 0-based
// position in the document.
func (a *FontAnalyzer) Tally(page *model.Page, pageIndex int) *FontStats {
	fs := NewFontStats()
	for _, b := range page.TextBlocks() {
		blockText := b.Text()
		if text.Len(blockText) <= a.config.MinBlockLen {
			continue
		}
		sample := text.Truncate(blockText, a.config.SampleLen)
		for _, line := range b.Lines {
			for _, span := range line.Spans {
				s := fs.entry(FontKey{Size: span.FontSize, Name: span.FontName})
				s.Count++
				s.Chars += text.Len(span.Text)
				s.Pages[pageIndex] = true
				s.Bold = s.Bold || span.Bold
				if len(s.Samples) < a.config.MaxSamples {
					s.Samples = append(s.Samples, sample)
				}
			}
		}
	}
	return fs
}

// Collect tallies every page of the document. With workers > 1 pages are
// tallied concurrently and merged in page order.
func (a *FontAnalyzer) Collect(ctx context.Context, doc *model.Document, workers int) (*FontStats, error) {
	var pages []*model.Page
	if doc != nil {
		pages = doc.Pages
	}

	tallies := make([]*FontStats, len(pages))
	if workers <= 1 {
		for i, p := range pages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tallies[i] = a.Tally(p, i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, p := range pages {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				tallies[i] = a.Tally(p, i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	stats := NewFontStats()
	for _, t := range tallies {
		stats.Merge(t, a.config.MaxSamples)
	}
	return stats, nil
}

// Analyze tallies the document and derives its hierarchy
func (a *FontAnalyzer) Analyze(ctx context.Context, doc *model.Document, workers int) (model.FontHierarchy, error) {
	stats, err := a.Collect(ctx, doc, workers)
	if err != nil {
		return model.FontHierarchy{}, err
	}
	return a.Hierarchy(stats), nil
}

// Hierarchy derives the tier thresholds from a tally. The most printed font
// is body text. Larger fonts are assigned to tiers from the largest down:
// the title must appear on one of the first two pages, and each heading tier
// must clear both an absolute floor and a multiple of body size. Tiers
// without a qualifying font fall back to a multiple of body size.
func (a *FontAnalyzer) Hierarchy(stats *FontStats) model.FontHierarchy {
	all := stats.Stats()
	if len(all) == 0 {
		return model.DefaultFontHierarchy()
	}

	body := all[0]
	for _, s := range all[1:] {
		if s.Chars > body.Chars {
			body = s
		}
	}
	bodySize := body.Key.Size

	sorted := make([]*FontStat, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Size > sorted[j].Key.Size
	})

	var significant []*FontStat
	for _, s := range sorted {
		if s.Count >= 1 && s.Key.Size > bodySize*1.1 {
			significant = append(significant, s)
		}
	}

	h := model.FontHierarchy{Body: bodySize}

	for _, s := range significant {
		if (s.OnPage(0) || s.OnPage(1)) && s.Key.Size >= bodySize*1.5 {
			h.Title = s.Key.Size
			h.Derived[model.TierTitle] = true
			break
		}
	}

	remaining := significant[:0:0]
	for _, s := range significant {
		if h.Derived[model.TierTitle] && s.Key.Size == h.Title {
			continue
		}
		remaining = append(remaining, s)
	}

	for _, s := range remaining {
		if s.Key.Size >= max(15.0, bodySize*1.4) {
			h.H1 = s.Key.Size
			h.Derived[model.TierH1] = true
			break
		}
	}
	for _, s := range remaining {
		if h.Derived[model.TierH1] && s.Key.Size == h.H1 {
			continue
		}
		if s.Key.Size >= max(12.0, bodySize*1.2) {
			h.H2 = s.Key.Size
			h.Derived[model.TierH2] = true
			break
		}
	}
	for _, s := range remaining {
		if h.Derived[model.TierH1] && s.Key.Size == h.H1 {
			continue
		}
		if h.Derived[model.TierH2] && s.Key.Size == h.H2 {
			continue
		}
		if s.Key.Size >= max(11.0, bodySize*1.1) {
			h.H3 = s.Key.Size
			h.Derived[model.TierH3] = true
			break
		}
	}

	if !h.Derived[model.TierTitle] {
		h.Title = bodySize * a.config.TitleRatio
	}
	if !h.Derived[model.TierH1] {
		h.H1 = bodySize * a.config.H1Ratio
	}
	if !h.Derived[model.TierH2] {
		h.H2 = bodySize * a.config.H2Ratio
	}
	if !h.Derived[model.TierH3] {
		h.H3 = bodySize * a.config.H3Ratio
	}
	return h
}

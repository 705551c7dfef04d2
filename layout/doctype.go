package layout

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

// TypeConfig holds configuration for document type classification
type TypeConfig struct {
	// SamplePages is the number of leading pages examined. Default: 3
	SamplePages int

	// CenterTolerance is the fraction of page width within which a block's
	// center counts as centered. Default: 0.15
	CenterTolerance float64

	// ShortLen is the length (runes) below which a block is short. Default: 50
	ShortLen int
}

// DefaultTypeConfig returns sensible default configuration
func DefaultTypeConfig() TypeConfig {
	return TypeConfig{
		SamplePages:     3,
		CenterTolerance: 0.15,
		ShortLen:        50,
	}
}

var numberedSection = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)

// StructureStats summarises the layout of a document's leading pages
type StructureStats struct {
	Pages       int // pages sampled
	Blocks      int // text blocks, including empty ones
	Short       int
	Centered    int
	Numbered    int
	FontVariety int // distinct sizes rounded to 0.1pt
}

// AvgBlocksPerPage returns the mean number of text blocks per sampled page
func (s StructureStats) AvgBlocksPerPage() float64 {
	if s.Pages == 0 {
		return 0
	}
	return float64(s.Blocks) / float64(s.Pages)
}

// HasNumberedSections reports whether at least three blocks open with a section number
func (s StructureStats) HasNumberedSections() bool { return s.Numbered >= 3 }

// HasManyShortLines reports whether most blocks are short
func (s StructureStats) HasManyShortLines() bool {
	return float64(s.Short) > float64(s.Blocks)*0.6
}

// HasCenteredText reports whether a good share of blocks are centered
func (s StructureStats) HasCenteredText() bool {
	return float64(s.Centered) > float64(s.Blocks)*0.3
}

// TypeClassifier assigns a coarse genre to a document
type TypeClassifier struct {
	config TypeConfig
}

// NewTypeClassifier creates a classifier with default configuration
func NewTypeClassifier() *TypeClassifier {
	return &TypeClassifier{config: DefaultTypeConfig()}
}

// NewTypeClassifierWithConfig creates a classifier with custom configuration
func NewTypeClassifierWithConfig(config TypeConfig) *TypeClassifier {
	return &TypeClassifier{config: config}
}

// Stats samples the leading pages of the document
func (c *TypeClassifier) Stats(doc *model.Document) StructureStats {
	var s StructureStats
	sizes := make(map[float64]bool)

	n := min(c.config.SamplePages, doc.PageCount())
	for i := 0; i < n; i++ {
		page := doc.Pages[i]
		if page == nil {
			continue
		}
		s.Pages++
		blocks := page.TextBlocks()
		s.Blocks += len(blocks)

		for _, b := range blocks {
			blockText := strings.TrimSpace(b.Text())
			if blockText == "" {
				continue
			}
			center := (b.BBox.X0 + b.BBox.X1) / 2
			if math.Abs(center-page.Width/2) < page.Width*c.config.CenterTolerance {
				s.Centered++
			}
			if text.Len(blockText) < c.config.ShortLen {
				s.Short++
			}
			if numberedSection.MatchString(blockText) {
				s.Numbered++
			}
			for _, line := range b.Lines {
				for _, span := range line.Spans {
					sizes[math.Round(span.FontSize*10)/10] = true
				}
			}
		}
	}
	s.FontVariety = len(sizes)
	return s
}

// Classify returns the document type
func (c *TypeClassifier) Classify(doc *model.Document) model.DocumentType {
	return ClassifyStats(c.Stats(doc))
}

// ClassifyStats maps structure statistics to a document type. The first
// matching rule wins: invitation, academic, form, report, general.
func ClassifyStats(s StructureStats) model.DocumentType {
	avg := s.AvgBlocksPerPage()
	switch {
	case s.HasManyShortLines() && s.HasCenteredText() && s.FontVariety >= 4:
		return model.DocumentInvitation
	case s.HasNumberedSections() && avg > 10 && !s.HasManyShortLines():
		return model.DocumentAcademic
	case s.HasManyShortLines() && s.FontVariety <= 3 && avg > 15:
		return model.DocumentForm
	case s.HasNumberedSections():
		return model.DocumentReport
	}
	return model.DocumentGeneral
}

package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/tables"
	"github.com/tsawler/outline/text"
)

// UntitledDocument is returned when no title can be found
const UntitledDocument = "Untitled Document"

// TitleConfig holds configuration for title extraction
type TitleConfig struct {
	// Pages is the number of leading pages searched. Default: 3
	Pages int

	// MaxLen is the longest block (runes) considered as a title. Default: 300
	MaxLen int

	// MinScore is the score a block needs to become a candidate. Default: 3
	MinScore int

	// TopFraction is the share of page height counted as the top. Default: 0.4
	TopFraction float64

	// MinFallbackLen and MaxFallbackLen bound the page-one fallback block.
	// Default: 10 and 200
	MinFallbackLen int
	MaxFallbackLen int
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		Pages:          3,
		MaxLen:         300,
		MinScore:       3,
		TopFraction:    0.4,
		MinFallbackLen: 10,
		MaxFallbackLen: 200,
	}
}

var (
	titleRequestPrefix = regexp.MustCompile(`(?i)^(RFP|Request|Proposal):`)
	titleSectionStart  = regexp.MustCompile(`(?i)^(Summary|Background|Introduction)`)
	titleNumbered      = regexp.MustCompile(`^\d+\.`)
	titleBoostPrefix   = regexp.MustCompile(`(?i)^(RFP|Request|Proposal|Report|Plan|Strategy)`)
)

// titleKeywords mark a combined multi-block title as complete
var titleKeywords = []string{"Library", "Proposal", "Plan"}

// titleBlock is a block considered during title extraction
type titleBlock struct {
	text     string
	fontSize float64
	bold     bool
	bbox     model.Rect
	page     int // 0-based
	score    int
}

// TitleExtractor picks the document title from the leading pages
type TitleExtractor struct {
	config TitleConfig
	tables *tables.Detector
}

// NewTitleExtractor creates a title extractor with default configuration
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{config: DefaultTitleConfig(), tables: tables.NewDetector()}
}

// NewTitleExtractorWithConfig creates a title extractor with custom
// configuration. A nil table detector uses the default one.
func NewTitleExtractorWithConfig(config TitleConfig, detector *tables.Detector) *TitleExtractor {
	if detector == nil {
		detector = tables.NewDetector()
	}
	return &TitleExtractor{config: config, tables: detector}
}

// Extract returns the document title. Page one is first checked for a
// large-font title spread over several blocks. Otherwise every block on the
// leading pages is scored and the best candidate wins. When nothing scores
// high enough the first reasonably sized block on page one is used, and as
// a last resort UntitledDocument.
func (e *TitleExtractor) Extract(doc *model.Document, h model.FontHierarchy) string {
	n := min(e.config.Pages, doc.PageCount())

	var candidates []titleBlock
	for i := 0; i < n; i++ {
		page := doc.Pages[i]
		if page == nil {
			continue
		}
		regions := e.tables.Detect(page)

		if i == 0 {
			if title, ok := e.multiBlockTitle(page, regions, h); ok {
				return title
			}
		}

		for _, b := range page.TextBlocks() {
			t := strings.TrimSpace(b.Text())
			if t == "" || text.Len(t) > e.config.MaxLen {
				continue
			}
			if regions.CoversBlock(b) || tables.IsTableOrFormContent(t) {
				continue
			}
			c := titleBlock{
				text:     t,
				fontSize: b.FontSize(),
				bold:     b.IsBold(),
				bbox:     b.BBox,
				page:     i,
			}
			c.score = e.score(c, page.Height, h.Body)
			if c.score >= e.config.MinScore {
				candidates = append(candidates, c)
			}
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.score != b.score {
				return a.score > b.score
			}
			if a.page != b.page {
				return a.page < b.page
			}
			return a.fontSize > b.fontSize
		})
		return candidates[0].text
	}

	if doc.PageCount() > 0 && doc.Pages[0] != nil {
		if title, ok := e.firstPageFallback(doc.Pages[0]); ok {
			return title
		}
	}
	return UntitledDocument
}

// score rates a block as a title candidate
func (e *TitleExtractor) score(c titleBlock, pageHeight, body float64) int {
	score := 0
	switch {
	case c.fontSize >= body*1.8:
		score += 4
	case c.fontSize >= body*1.4:
		score += 2
	case c.fontSize >= body*1.2:
		score++
	}
	if c.bold {
		score++
	}
	switch c.page {
	case 0:
		score += 3
	case 1:
		score++
	}
	switch n := text.Len(c.text); {
	case n > 150:
		score -= 2
	case n > 100:
		score--
	}
	if c.bbox.Y0 < pageHeight*e.config.TopFraction {
		score++
	}
	if titleBoostPrefix.MatchString(c.text) {
		score += 2
	}
	return score
}

// multiBlockTitle looks at the large-font blocks of page one from top to
// bottom. A "Request:"/"Proposal:"/"RFP:" line may be joined with up to two
// following lines; otherwise a long single block naming a library, proposal,
// plan or request is taken.
func (e *TitleExtractor) multiBlockTitle(page *model.Page, regions *tables.Regions, h model.FontHierarchy) (string, bool) {
	var blocks []titleBlock
	for _, b := range page.TextBlocks() {
		t := strings.TrimSpace(b.Text())
		if t == "" || text.Len(t) < 5 {
			continue
		}
		if regions.CoversBlock(b) || tables.IsTableOrFormContent(t) {
			continue
		}
		size := b.FontSize()
		if size >= h.Body*1.5 {
			blocks = append(blocks, titleBlock{text: t, fontSize: size, bbox: b.BBox})
		}
	}
	if len(blocks) == 0 {
		return "", false
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].bbox.Y0 < blocks[j].bbox.Y0
	})

	if len(blocks) >= 2 && titleRequestPrefix.MatchString(blocks[0].text) {
		parts := []string{blocks[0].text}
		for i := 1; i < min(3, len(blocks)); i++ {
			next := blocks[i].text
			if text.Len(next) <= 10 || titleSectionStart.MatchString(next) || titleNumbered.MatchString(next) {
				continue
			}
			parts = append(parts, next)
			combined := strings.Join(parts, " ")
			if text.Len(combined) > 50 && containsAny(combined, titleKeywords...) {
				return strings.TrimSpace(combined), true
			}
		}
	}

	for _, b := range blocks {
		if text.Len(b.text) > 30 && containsAny(b.text, "Library", "Proposal", "Plan", "Request") {
			return b.text, true
		}
	}
	return "", false
}

// firstPageFallback returns the first page-one block of a plausible title length
func (e *TitleExtractor) firstPageFallback(page *model.Page) (string, bool) {
	regions := e.tables.Detect(page)
	for _, b := range page.TextBlocks() {
		if regions.CoversBlock(b) {
			continue
		}
		t := strings.TrimSpace(b.Text())
		n := text.Len(t)
		if t != "" && n >= e.config.MinFallbackLen && n <= e.config.MaxFallbackLen && !tables.IsTableOrFormContent(t) {
			return t, true
		}
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

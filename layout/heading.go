package layout

import (
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/tables"
	"github.com/tsawler/outline/text"
)

// PageHeadings is the heading extraction result for one page
type PageHeadings struct {
	// Page is the 1-based page number
	Page int

	// Headings in block order
	Headings []model.Heading

	// TOC is set when the page was handled as a table of contents
	TOC bool

	// Tables is the number of table and form regions found on the page
	Tables int

	// StructureErr is an absorbed structural table detector failure
	StructureErr error
}

// HeadingExtractor finds the headings on a page
type HeadingExtractor struct {
	tables     *tables.Detector
	toc        *TOCDetector
	classifier *LevelClassifier
}

// NewHeadingExtractor creates a heading extractor with default components
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{
		tables:     tables.NewDetector(),
		toc:        NewTOCDetector(),
		classifier: NewLevelClassifier(),
	}
}

// NewHeadingExtractorWithComponents creates a heading extractor from the
// given components. Nil components are replaced by defaults.
func NewHeadingExtractorWithComponents(detector *tables.Detector, toc *TOCDetector, classifier *LevelClassifier) *HeadingExtractor {
	e := NewHeadingExtractor()
	if detector != nil {
		e.tables = detector
	}
	if toc != nil {
		e.toc = toc
	}
	if classifier != nil {
		e.classifier = classifier
	}
	return e
}

// ExtractPage returns the headings of one page. pageNum is the 1-based page
// number recorded on each heading. A table-of-contents page contributes at
// most its "Contents" heading. On other pages a block is skipped when it is
// empty, lies in a table or form region, reads as form content or a contents
// line, or repeats the document title; the rest are classified.
//
// ExtractPage reads only the page and its arguments, so pages may be
// processed concurrently.
func (e *HeadingExtractor) ExtractPage(page *model.Page, pageNum int, h model.FontHierarchy, title string) PageHeadings {
	result := PageHeadings{Page: pageNum}
	if page == nil {
		return result
	}

	if e.toc.IsTOCPage(page) {
		result.TOC = true
		if heading, ok := e.toc.Heading(page, pageNum); ok {
			result.Headings = append(result.Headings, heading)
		}
		return result
	}

	blocks := page.TextBlocks()
	if len(blocks) == 0 {
		return result
	}

	regions := e.tables.Detect(page)
	result.Tables = regions.Len()
	result.StructureErr = regions.StructureErr

	for _, b := range blocks {
		t := strings.TrimSpace(b.Text())
		if t == "" {
			continue
		}
		if regions.CoversBlock(b) {
			continue
		}
		if tables.IsTableOrFormContent(t) || IsTOCEntry(t) {
			continue
		}
		if title != "" && text.EqualFold(t, title) {
			continue
		}

		level := e.classifier.Classify(t, b.FontSize(), b.IsBold(), h)
		if level == model.LevelNone {
			continue
		}
		result.Headings = append(result.Headings, model.Heading{
			Level: level,
			Text:  t,
			Page:  pageNum,
		})
	}
	return result
}

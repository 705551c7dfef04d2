package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

var (
	tocNumberedEntry = regexp.MustCompile(`^(\d+\.|\d+\.\d+\.?|Chapter\s+\d+:?)\s+.+\s+\d+\s*$`)
	tocInlineEntries = regexp.MustCompile(`\d+\.\d+\s+[^0-9]+\s+\d+\s+\d+\.\d+`)
	tocPageRef       = regexp.MustCompile(`^.+\s+\d{1,3}\s*$`)
	tocTitle         = regexp.MustCompile(`(?i)^(Table of Contents|Contents|TOC)$`)
)

// TOCDetector recognises table-of-contents pages and entries
type TOCDetector struct {
	// MinEntries is the number of entry blocks that makes a page a TOC page
	MinEntries int
}

// NewTOCDetector creates a TOC detector with default settings
func NewTOCDetector() *TOCDetector {
	return &TOCDetector{MinEntries: 3}
}

// IsTOCEntry reports whether text looks like a contents line: a section
// number or chapter label followed by a page number, several numbered
// entries run together, or a longer line ending in a 1-3 digit page number.
func IsTOCEntry(s string) bool {
	trimmed := strings.TrimSpace(s)
	if tocNumberedEntry.MatchString(trimmed) {
		return true
	}
	if tocInlineEntries.MatchString(s) {
		return true
	}
	return tocPageRef.MatchString(trimmed) && text.Len(trimmed) > 10
}

// IsTOCPage reports whether the page is a table of contents
func (d *TOCDetector) IsTOCPage(page *model.Page) bool {
	if strings.Contains(strings.ToUpper(page.Text()), "TABLE OF CONTENTS") {
		return true
	}
	entries := 0
	for _, b := range page.TextBlocks() {
		if IsTOCEntry(b.Text()) {
			entries++
		}
	}
	return entries >= d.MinEntries
}

// Heading returns the heading a TOC page contributes: the first block that
// reads exactly "Table of Contents", "Contents" or "TOC", as an H1 on the
// preceding page. ok is false when no block qualifies.
func (d *TOCDetector) Heading(page *model.Page, pageNum int) (h model.Heading, ok bool) {
	for _, b := range page.TextBlocks() {
		t := strings.TrimSpace(b.Text())
		if tocTitle.MatchString(t) {
			return model.Heading{Level: model.H1, Text: t, Page: pageNum - 1}, true
		}
	}
	return model.Heading{}, false
}

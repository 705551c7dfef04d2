package tables

import (
	"regexp"
	"strings"
	"unicode"
)

// tableHeaderPatterns match header rows and serial-number grids anywhere in a block
var tableHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)S\.?No\.?\s+(Name|Description|Item)`),
	regexp.MustCompile(`(?i)(Name|Item|Description)\s+(Age|Quantity|Amount)`),
	regexp.MustCompile(`(?i)\d+\.\s+\d+\.\s+\d+\.`),
	regexp.MustCompile(`(?i)(Name|Age|Relationship)\s+(Name|Age|Relationship)`),
	regexp.MustCompile(`(?i)S\.?No\.?\s+Name\s+Age\s+Relationship`),
}

var serialRow = regexp.MustCompile(`^\d+\.\s*\d+\.\s*\d+\.\s*\d+`)

// formPatterns match form labels, signature lines and bare number cells
var formPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.\s*(Name|Designation|PAY|Whether|Home Town|Amount)`),
	regexp.MustCompile(`(?i)^S\.?No\.?\s+(Name|Age|Relationship)`),
	regexp.MustCompile(`^\d+\.\s+\d+\.\s*$`),
	regexp.MustCompile(`^\d+\.\s+\d+\.\s+\d+\.\s*$`),
	regexp.MustCompile(`^\d+\.\s+\d+\.\s+\d+\.\s+\d+`),
	regexp.MustCompile(`(?i)^(Date|Signature)`),
	regexp.MustCompile(`(?i)^Rs\.\s*$`),
	regexp.MustCompile(`^\d+\s+\d+\s+\d+\s*$`),
	regexp.MustCompile(`^\d+\s*\d+\s*\d+\s*$`),
}

var (
	bareNumber     = regexp.MustCompile(`^\d+\.?\s*$`)
	numberedLetter = regexp.MustCompile(`^\d+\.\s*[A-Z]\.?\s*$`)
	dottedDigits   = regexp.MustCompile(`^[\d.\s]{2,10}$`)
	numberedShort  = regexp.MustCompile(`^\d+\.\s*(.{0,50})?$`)
)

// IsTableStructure reports whether a block's text looks like a table header
// or a serial-number row
func IsTableStructure(text string) bool {
	for _, re := range tableHeaderPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return serialRow.MatchString(strings.TrimSpace(text))
}

// IsTableOrFormContent reports whether text is form or table furniture:
// bare numbers, numbered form labels, signature and date lines, currency
// cells and serial-number rows.
func IsTableOrFormContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if bareNumber.MatchString(trimmed) {
		return true
	}
	for _, re := range formPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	if len(trimmed) > 0 && len(trimmed) <= 2 && isDigits(trimmed) {
		return true
	}
	if numberedLetter.MatchString(trimmed) {
		return true
	}
	return dottedDigits.MatchString(trimmed) && strings.Contains(text, ".")
}

// isNumberedFormItem reports whether text is a short "<n>. <label>" item
func isNumberedFormItem(text string) bool {
	trimmed := strings.TrimSpace(text)
	return numberedShort.MatchString(trimmed) && !IsTableOrFormContent(trimmed)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

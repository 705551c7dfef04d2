// Package text provides the text cleanup helpers shared by the decoders and
// the outline classifiers: Unicode normalization, spacing repair, rune-based
// lengths and case-insensitive comparison.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// spacingRule is one rewrite applied by Normalize
type spacingRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// spacingRules repair words glued together by the decoder and collapse
// whitespace. They run in order.
var spacingRules = []spacingRule{
	{regexp.MustCompile(`([a-z])([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`([A-Z])([A-Z][a-z])`), "$1 $2"},
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`^\s+|\s+$`), ""},
	{regexp.MustCompile(`([.!?])\s*([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`\s*([!?:;])\s*`), "$1 "},
}

// Normalize converts extracted text to NFC and repairs its spacing: a space
// is inserted at lower-to-upper case transitions and after sentence and
// clause punctuation, and runs of whitespace collapse to one space.
func Normalize(s string) string {
	result := norm.NFC.String(s)
	for _, rule := range spacingRules {
		result = rule.pattern.ReplaceAllString(result, rule.replacement)
	}
	return strings.TrimSpace(result)
}

// Join concatenates raw span texts and normalizes the result
func Join(parts []string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
	}
	return Normalize(sb.String())
}

// Fold returns the trimmed, case-folded form of s for caseless comparison
func Fold(s string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// EqualFold reports whether a and b are equal after trimming and case folding
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Len returns the length of s in runes
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

package patterns

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/outline/text"
)

// Heading length limits, in runes
const (
	MinHeadingLen = 3
	MaxHeadingLen = 150
)

// nonHeading lists text shapes that are never headings
var nonHeading = []*regexp.Regexp{
	// Full sentences built around a modal or auxiliary verb
	regexp.MustCompile(`(?i)^[A-Z][a-z]+.*[a-z]+\s+(will|are|is|have|has|can|should|must|would|could)\s+.+\.$`),
	// Instructions
	regexp.MustCompile(`(?i)^(Please|Click|Visit|Fill|Complete|Submit|Download|Upload|Print|Sign)\s+`),
	// Dates
	regexp.MustCompile(`(?i)^(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d+,?\s+\d{4}`),
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	// Boilerplate
	regexp.MustCompile(`(?i)^(Version|Copyright|©)\s+`),
	// Street addresses
	regexp.MustCompile(`(?i)\d+.*\b(Street|St|Avenue|Ave|Drive|Dr|Road|Rd|Lane|Ln|Boulevard|Blvd)\b`),
	// Emails and links
	regexp.MustCompile(`(?i)@.*\.(com|org|net|edu|gov)`),
	regexp.MustCompile(`(?i)(http|www\.|\.com|\.org)`),
	// Long digit runs (phone numbers, ids, postal codes)
	regexp.MustCompile(`^\d{5,}`),
}

// IsPlausibleHeading reports whether text could be a heading at all: it
// must be 3-150 runes long and match none of the non-heading shapes.
func IsPlausibleHeading(s string) bool {
	n := text.Len(s)
	if n > MaxHeadingLen || n < MinHeadingLen {
		return false
	}
	for _, re := range nonHeading {
		if re.MatchString(s) {
			return false
		}
	}
	return !RepeatsLeadingPhrase(s)
}

// RepeatsLeadingPhrase reports whether s opens with a phrase of at least
// three characters that is immediately repeated after whitespace, as in
// "Overview Overview of results". The comparison ignores case.
func RepeatsLeadingPhrase(s string) bool {
	runes := []rune(s)
	for n := MinHeadingLen; n < len(runes); n++ {
		if runes[n-1] == '\n' {
			break
		}
		phrase := string(runes[:n])
		for k := n; k < len(runes) && unicode.IsSpace(runes[k]); k++ {
			rest := runes[k+1:]
			if len(rest) >= n && strings.EqualFold(string(rest[:n]), phrase) {
				return true
			}
		}
	}
	return false
}

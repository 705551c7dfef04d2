package patterns

import (
	"regexp"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

// Rule maps a text matcher to the heading level it implies. MaxLen, when
// non-zero, restricts the rule to texts shorter than MaxLen runes.
type Rule struct {
	Name    string
	Matcher *regexp.Regexp
	Level   model.Level
	MaxLen  int
}

// Matches reports whether the rule applies to text
func (r Rule) Matches(s string) bool {
	if r.Matcher == nil || !r.Matcher.MatchString(s) {
		return false
	}
	return r.MaxLen == 0 || text.Len(s) < r.MaxLen
}

// RuleSet is an ordered list of rules; earlier rules win
type RuleSet []Rule

// Match returns the level of the first matching rule
func (rs RuleSet) Match(s string) (model.Level, bool) {
	for _, r := range rs {
		if r.Matches(s) {
			return r.Level, true
		}
	}
	return model.LevelNone, false
}

// Numbering patterns. A single number may carry a trailing dot; deeper
// numbers are dot-separated.
var (
	NumberedH1 = regexp.MustCompile(`^(\d+\.?)\s+(.+)$`)
	NumberedH2 = regexp.MustCompile(`^(\d+\.\d+\.?)\s+(.+)$`)
	NumberedH3 = regexp.MustCompile(`^(\d+\.\d+\.\d+\.?)\s+(.+)$`)
	Chapter    = regexp.MustCompile(`(?i)^(Chapter|Section)\s+(\d+|[IVX]+)`)
)

// Keyword and form patterns
var (
	KeywordH1   = regexp.MustCompile(`(?i)^(Introduction|Conclusion|Abstract|References|Appendix)`)
	KeywordH2   = regexp.MustCompile(`(?i)^(Background|Methodology|Results|Discussion|Related Work|Summary)`)
	KeywordH3   = regexp.MustCompile(`(?i)^(Timeline|Milestones|Approach)`)
	QuestionH3  = regexp.MustCompile(`(?i)^(What|How|Why|Where|When).*\?`)
	ColonEnded  = regexp.MustCompile(`^.+:$`)
	MajorPrefix = regexp.MustCompile(`(?i)^(Chapter|Section|Part|Appendix)`)
)

// Prefix patterns used by the font-size fallback
var (
	DottedPrefix3 = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	DottedPrefix2 = regexp.MustCompile(`^\d+\.\d+`)
	DottedPrefix1 = regexp.MustCompile(`^\d+\.`)
	SectionPrefix = regexp.MustCompile(`(?i)^(Appendix|Chapter|Section|Part)\s+[A-Z0-9]`)
	NumberedTitle = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
)

// DefaultRules returns the heading rules in priority order
func DefaultRules() RuleSet {
	return RuleSet{
		{Name: "numbered_h1", Matcher: NumberedH1, Level: model.H1},
		{Name: "numbered_h2", Matcher: NumberedH2, Level: model.H2},
		{Name: "numbered_h3", Matcher: NumberedH3, Level: model.H3},
		{Name: "chapter", Matcher: Chapter, Level: model.H1},
		{Name: "keyword_h1", Matcher: KeywordH1, Level: model.H1},
		{Name: "keyword_h2", Matcher: KeywordH2, Level: model.H2},
		{Name: "keyword_h3", Matcher: KeywordH3, Level: model.H3},
		{Name: "question_h3", Matcher: QuestionH3, Level: model.H3},
		{Name: "colon_ended", Matcher: ColonEnded, Level: model.H3, MaxLen: 50},
	}
}

// PrefixLevel infers a level from a leading dotted number ("1.", "1.2",
// "1.2.3") or a Chapter/Section/Part/Appendix label.
func PrefixLevel(s string) (model.Level, bool) {
	switch {
	case DottedPrefix3.MatchString(s):
		return model.H3, true
	case DottedPrefix2.MatchString(s):
		return model.H2, true
	case DottedPrefix1.MatchString(s):
		return model.H1, true
	case SectionPrefix.MatchString(s):
		return model.H1, true
	}
	return model.LevelNone, false
}

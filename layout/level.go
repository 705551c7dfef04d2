package layout

import (
	"math"
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/patterns"
	"github.com/tsawler/outline/text"
)

// LevelConfig holds configuration for heading level classification
type LevelConfig struct {
	// Rules are the text-pattern rules, tried in order before font size
	Rules patterns.RuleSet

	// Tolerance is the band (points) around the H2 and H3 thresholds
	// within which a size still counts. Default: 0.8
	Tolerance float64
}

// DefaultLevelConfig returns sensible default configuration
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Rules:     patterns.DefaultRules(),
		Tolerance: 0.8,
	}
}

// LevelClassifier assigns a heading level to a block of text
type LevelClassifier struct {
	config LevelConfig
}

// NewLevelClassifier creates a classifier with default configuration
func NewLevelClassifier() *LevelClassifier {
	return &LevelClassifier{config: DefaultLevelConfig()}
}

// NewLevelClassifierWithConfig creates a classifier with custom configuration
func NewLevelClassifierWithConfig(config LevelConfig) *LevelClassifier {
	return &LevelClassifier{config: config}
}

// Classify returns the heading level of s, or model.LevelNone for body
// text. Implausible texts are rejected outright; then the pattern rules are
// tried in order, then the font size against the hierarchy, and finally a
// leading section number.
func (c *LevelClassifier) Classify(s string, fontSize float64, bold bool, h model.FontHierarchy) model.Level {
	if !patterns.IsPlausibleHeading(s) {
		return model.LevelNone
	}
	if level, ok := c.config.Rules.Match(s); ok {
		return level
	}
	if level, ok := c.byFontSize(s, fontSize, bold, h); ok {
		return level
	}
	if level, ok := patterns.PrefixLevel(s); ok {
		return level
	}
	return model.LevelNone
}

// byFontSize classifies by font size. Only the first size band that applies
// is considered; if the text is too long for that band ok is false.
func (c *LevelClassifier) byFontSize(s string, size float64, bold bool, h model.FontHierarchy) (model.Level, bool) {
	n := text.Len(s)
	tol := c.config.Tolerance

	switch {
	case size >= 16:
		if n < 100 {
			return model.H1, true
		}
	case size >= 13:
		if n < 60 {
			if looksMajor(s, n) {
				return model.H1, true
			}
			return model.H2, true
		}
	case size >= 12 || math.Abs(size-h.H2) <= tol:
		// Every text short enough for this band is an H2.
		if n < 60 {
			return model.H2, true
		}
	case size >= h.H3 || math.Abs(size-h.H3) <= tol:
		if n < 50 {
			return model.H3, true
		}
	case bold && size > h.Body*1.05:
		if n < 40 {
			return model.H3, true
		}
	}
	return model.LevelNone, false
}

// looksMajor reports whether a mid-sized heading reads as a top-level one
func looksMajor(s string, n int) bool {
	switch {
	case patterns.MajorPrefix.MatchString(s):
		return true
	case strings.HasSuffix(s, "Library"), strings.HasSuffix(s, "Strategy"):
		return true
	case strings.Contains(s, "Digital Library"), strings.Contains(s, "Road Map"):
		return true
	}
	return n > 40 && !strings.HasSuffix(s, ":")
}

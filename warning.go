package outline

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem met while building an outline: a page the
// decoder could not read, or a structural table detector failure. Page is
// 1-based; zero means the whole document.
type Warning struct {
	Page    int
	Message string
}

// String returns a human-readable form of the warning
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Package render writes outlines in human- and machine-readable forms: the
// canonical JSON document, an indented text table of contents, a Markdown
// list and an HTML navigation tree.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/outline/model"
)

// Format selects an output representation
type Format int

const (
	// FormatJSON writes the canonical {"title", "outline"} document
	FormatJSON Format = iota
	// FormatText writes an indented table of contents
	FormatText
	// FormatMarkdown writes a nested Markdown list
	FormatMarkdown
	// FormatHTML writes a nested <ul> inside a <nav> element
	FormatHTML
)

// String returns the name used on the command line
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat converts a format name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return FormatJSON, fmt.Errorf("render: unknown format %q", s)
}

// Render writes o to w in the given format
func Render(w io.Writer, o *model.Outline, f Format) error {
	if o == nil {
		o = &model.Outline{}
	}
	switch f {
	case FormatJSON:
		return JSON(w, o)
	case FormatText:
		return Text(w, o)
	case FormatMarkdown:
		return Markdown(w, o)
	case FormatHTML:
		return HTML(w, o)
	default:
		return fmt.Errorf("render: unknown format %d", int(f))
	}
}

// JSON writes the outline document with two-space indentation
func JSON(w io.Writer, o *model.Outline) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

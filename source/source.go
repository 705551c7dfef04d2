// Package source decodes input files into the page layout model consumed by
// the outline engine.
//
// Two inputs are supported:
//   - PDF files, read through their embedded text layer. Glyphs are grouped
//     into spans, lines and blocks by position.
//   - Layout JSON, the page dump produced by PyMuPDF's get_text("dict") with
//     a page width and height added to each page.
//
// Open picks the decoder from the file content, falling back to the
// extension.
package source

import (
	"errors"
	"fmt"

	"github.com/tsawler/outline/format"
	"github.com/tsawler/outline/model"
)

// ErrUnsupportedFormat is returned when a file is neither PDF nor layout JSON
var ErrUnsupportedFormat = errors.New("source: unsupported input format")

// PageError records a page that could not be decoded. The page is kept in
// the document with no blocks so that later page numbers stay correct.
type PageError struct {
	Page int // 1-indexed
	Err  error
}

// Error implements the error interface
func (e PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

// Unwrap returns the underlying error
func (e PageError) Unwrap() error {
	return e.Err
}

// Open decodes the file at path. Pages that fail to decode are returned as
// PageErrors alongside the document; a file that cannot be opened at all is
// an error.
func Open(path string) (*model.Document, []PageError, error) {
	kind, err := format.DetectFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("source: %w", err)
	}

	switch kind {
	case format.PDF:
		return OpenPDF(path)
	case format.LayoutJSON:
		doc, err := OpenJSON(path)
		return doc, nil, err
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

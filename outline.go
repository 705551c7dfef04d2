// Package outline infers the outline of a document, its title and a
// depth-consistent list of H1-H4 headings, from the text layout produced by
// a PDF decoder.
//
// Basic usage:
//
//	o, warnings, err := outline.Open("report.pdf").Outline(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outline.FormatWarnings(warnings))
//	}
//	fmt.Println(o.Title)
//
// With options:
//
//	o, _, err := outline.Open("report.pdf").
//	    Workers(4).
//	    DetectTables().
//	    Outline(ctx)
//
// For an in-memory document, use the [Engine] directly:
//
//	engine := outline.NewEngine()
//	o, err := engine.Extract(ctx, doc)
//
// The engine works in two passes. The first pass tallies span fonts across
// the whole document to derive a font hierarchy (title, H1, H2, H3 and body
// sizes) and picks the title from the leading pages. The second pass
// classifies the blocks of each page independently, in parallel for larger
// documents, and the resulting headings are clamped so that depth never
// increases by more than one level at a time.
package outline

import (
	"github.com/tsawler/outline/model"
)

// Open returns an Extractor for the document at filename. The file is read
// by a terminal operation such as Outline.
//
// Example:
//
//	o, warnings, err := outline.Open("document.pdf").Outline(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument returns an Extractor for an already decoded document.
//
// Example:
//
//	o, _, err := outline.FromDocument(doc).Outline(ctx)
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	o := outline.Must(outline.NewEngine().Extract(ctx, doc))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline() and panics if the
// error is non-nil. It discards warnings.
//
// Example:
//
//	o := outline.MustOutline(outline.Open("document.pdf").Outline(ctx))
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

package outline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/tables"
)

// Extractor provides a fluent interface for building an outline from a file
// or a decoded document. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: a file to decode, or an already decoded document
	filename string
	doc      *model.Document

	options ExtractOptions
}

// clone creates a copy of the Extractor.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
	}
}

// Workers sets the maximum number of pages processed concurrently.
//
// Example:
//
//	o, _, err := outline.Open("doc.pdf").Workers(4).Outline(ctx)
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// ParallelThreshold sets the page count from which pages are processed
// concurrently.
func (e *Extractor) ParallelThreshold(n int) *Extractor {
	newExt := e.clone()
	newExt.options.parallelThreshold = n
	return newExt
}

// TitlePages sets how many leading pages are searched for the title.
func (e *Extractor) TitlePages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.titlePages = n
	return newExt
}

// DetectTables enables structural table detection with the geometric
// detector, so headings inside grids of aligned blocks are ignored.
//
// Example:
//
//	o, _, err := outline.Open("form.pdf").DetectTables().Outline(ctx)
func (e *Extractor) DetectTables() *Extractor {
	return e.StructureDetector(tables.NewGeometricDetector())
}

// StructureDetector sets the structural table detector. Nil disables it.
func (e *Extractor) StructureDetector(d tables.StructureDetector) *Extractor {
	newExt := e.clone()
	newExt.options.structure = d
	return newExt
}

// Logger sets the logger that receives debug records.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// Document returns the decoded document. Pages the decoder could not read
// are reported as warnings.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.doc != nil {
		return e.doc, nil, nil
	}
	if e.filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}
	return LoadDocument(e.filename)
}

// Analyze decodes the document and returns the full analysis. Decoder
// warnings come first in the result's warnings.
func (e *Extractor) Analyze(ctx context.Context) (*Result, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, err
	}

	result, err := NewEngineWithConfig(e.options.config()).Analyze(ctx, doc)
	if result != nil {
		result.Warnings = append(warnings, result.Warnings...)
	}
	return result, err
}

// Outline decodes the document and returns its outline, along with any
// non-fatal warnings.
//
// Example:
//
//	o, warnings, err := outline.Open("report.pdf").Outline(ctx)
func (e *Extractor) Outline(ctx context.Context) (*model.Outline, []Warning, error) {
	result, err := e.Analyze(ctx)
	if result == nil {
		return nil, nil, err
	}
	return result.Outline, result.Warnings, err
}

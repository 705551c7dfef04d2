// integration.go connects the decoders in package source to the engine
package outline

import (
	"context"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/source"
)

// LoadDocument decodes the file at path into a Document. The format is
// detected from the file itself; PDF pages that cannot be read are skipped
// and reported as warnings.
//
// Example:
//
//	doc, warnings, err := outline.LoadDocument("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages, %d skipped\n", doc.PageCount(), len(warnings))
func LoadDocument(path string) (*model.Document, []Warning, error) {
	doc, skipped, err := source.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, s := range skipped {
		warnings = append(warnings, Warning{Page: s.Page, Message: s.Err.Error()})
	}
	return doc, warnings, nil
}

// AnalyzeFile decodes the file at path and analyzes it with the given
// configuration.
func AnalyzeFile(ctx context.Context, path string, config Config) (*Result, error) {
	doc, warnings, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	result, err := NewEngineWithConfig(config).Analyze(ctx, doc)
	if result != nil {
		result.Warnings = append(warnings, result.Warnings...)
	}
	return result, err
}

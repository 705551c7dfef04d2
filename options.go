package outline

import (
	"log/slog"

	"github.com/tsawler/outline/tables"
)

// ExtractOptions holds configuration for the fluent Extractor
type ExtractOptions struct {
	workers           int // 0 means the engine default
	parallelThreshold int // 0 means the engine default
	titlePages        int // 0 means the engine default
	structure         tables.StructureDetector
	logger            *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// config builds the engine configuration for these options
func (o ExtractOptions) config() Config {
	cfg := DefaultConfig()
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.parallelThreshold > 0 {
		cfg.ParallelThreshold = o.parallelThreshold
	}
	if o.titlePages > 0 {
		cfg.TitlePages = o.titlePages
	}
	cfg.StructureDetector = o.structure
	cfg.Logger = o.logger
	return cfg
}

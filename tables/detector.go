package tables

import (
	"fmt"

	"github.com/tsawler/outline/model"
)

// StructureDetector finds tables from page geometry. It stands in for the
// table finder of a page-layout library and is optional.
type StructureDetector interface {
	// DetectTables returns the bounding boxes of tables on the page
	DetectTables(page *model.Page) ([]model.Rect, error)

	// Name returns the detector name
	Name() string
}

// Config holds detector configuration
type Config struct {
	// MinFormItems is the minimum run of numbered blocks treated as a form
	MinFormItems int

	// Confidence assigned to each kind of region
	TextTableConfidence     float64
	DetectedTableConfidence float64
	FormConfidence          float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinFormItems:            8,
		TextTableConfidence:     0.8,
		DetectedTableConfidence: 0.9,
		FormConfidence:          0.7,
	}
}

// Detector finds the table and form regions of a page
type Detector struct {
	config    Config
	structure StructureDetector
}

// NewDetector creates a detector with default configuration and no
// structural detector
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration. The
// structure detector may be nil.
func NewDetectorWithConfig(config Config, structure StructureDetector) *Detector {
	return &Detector{config: config, structure: structure}
}

// Config returns the detector configuration
func (d *Detector) Config() Config {
	return d.config
}

// Detect collects the text tables, structural tables and form region of a
// page. It never fails: a structural detector error is kept on the result
// as StructureErr and the page is treated as having no structural tables.
func (d *Detector) Detect(page *model.Page) *Regions {
	blocks := page.TextBlocks()

	var areas []model.TableArea
	for _, b := range blocks {
		if IsTableStructure(b.Text()) {
			areas = append(areas, model.TableArea{
				BBox:       b.BBox,
				Kind:       model.TextTable,
				Confidence: d.config.TextTableConfidence,
			})
		}
	}

	detected, ok, err := d.structuralTables(page)
	if ok {
		areas = append(areas, detected...)
	}

	areas = append(areas, d.DetectForms(blocks)...)

	regions := NewRegions(areas)
	regions.StructureErr = err
	return regions
}

// structuralTables runs the optional structure detector. ok is false when
// no detector is configured or it failed; err carries the failure.
func (d *Detector) structuralTables(page *model.Page) (areas []model.TableArea, ok bool, err error) {
	if d.structure == nil {
		return nil, false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			areas, ok = nil, false
			err = fmt.Errorf("tables: %s detector panicked: %v", d.structure.Name(), r)
		}
	}()

	rects, err := d.structure.DetectTables(page)
	if err != nil {
		return nil, false, fmt.Errorf("tables: %s detector: %w", d.structure.Name(), err)
	}

	areas = make([]model.TableArea, 0, len(rects))
	for _, r := range rects {
		if !r.IsValid() {
			continue
		}
		areas = append(areas, model.TableArea{
			BBox:       r,
			Kind:       model.DetectedTable,
			Confidence: d.config.DetectedTableConfidence,
		})
	}
	return areas, true, nil
}

// DetectForms reports every contiguous run of at least MinFormItems short
// numbered blocks ("1. Name", "2. Address", ...) as a form region covering
// the run's bounding union.
func (d *Detector) DetectForms(blocks []*model.Block) []model.TableArea {
	var areas []model.TableArea
	var run []model.Rect

	flush := func() {
		if len(run) >= d.config.MinFormItems {
			areas = append(areas, model.TableArea{
				BBox:       model.UnionAll(run),
				Kind:       model.FormStructure,
				Confidence: d.config.FormConfidence,
			})
		}
		run = run[:0]
	}

	for _, b := range blocks {
		if isNumberedFormItem(b.Text()) {
			run = append(run, b.BBox)
			continue
		}
		flush()
	}
	flush()

	return areas
}

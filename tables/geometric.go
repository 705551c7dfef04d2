package tables

import (
	"math"
	"sort"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

// GeometricConfig holds configuration for the geometric detector
type GeometricConfig struct {
	// MinRows is the minimum number of multi-cell rows
	MinRows int

	// MinCols is the minimum number of cells per row
	MinCols int

	// AlignmentTolerance is the distance (points) within which edges align
	AlignmentTolerance float64

	// ClusterGap is the vertical gap (points) that separates two clusters
	ClusterGap float64

	// MinConfidence is the minimum confidence to report a table
	MinConfidence float64

	// MaxCellLen is the longest block text (runes) treated as a cell
	MaxCellLen int
}

// DefaultGeometricConfig returns default configuration
func DefaultGeometricConfig() GeometricConfig {
	return GeometricConfig{
		MinRows:            3,
		MinCols:            2,
		AlignmentTolerance: 3.0,
		ClusterGap:         50.0,
		MinConfidence:      0.6,
		MaxCellLen:         40,
	}
}

// GeometricDetector finds tables from the arrangement of short blocks: rows
// of side-by-side cells whose left edges line up in columns. It implements
// StructureDetector.
type GeometricDetector struct {
	config GeometricConfig
}

// NewGeometricDetector creates a geometric detector with default configuration
func NewGeometricDetector() *GeometricDetector {
	return &GeometricDetector{config: DefaultGeometricConfig()}
}

// NewGeometricDetectorWithConfig creates a geometric detector with custom configuration
func NewGeometricDetectorWithConfig(config GeometricConfig) *GeometricDetector {
	return &GeometricDetector{config: config}
}

// Name returns the detector's identifier ("geometric").
func (d *GeometricDetector) Name() string {
	return "geometric"
}

// DetectTables returns the bounding box of every table found on the page
func (d *GeometricDetector) DetectTables(page *model.Page) ([]model.Rect, error) {
	cells := d.cells(page)
	if len(cells) < d.config.MinRows*d.config.MinCols {
		return nil, nil
	}

	var tables []model.Rect
	for _, cluster := range d.clusterCells(cells) {
		if bbox, ok := d.detectInCluster(cluster); ok {
			tables = append(tables, bbox)
		}
	}
	return tables, nil
}

// cells collects the short text blocks of a page sorted top to bottom,
// then left to right
func (d *GeometricDetector) cells(page *model.Page) []model.Rect {
	var cells []model.Rect
	for _, b := range page.TextBlocks() {
		n := text.Len(b.Text())
		if n == 0 || n > d.config.MaxCellLen {
			continue
		}
		cells = append(cells, b.BBox)
	}
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].Y0 != cells[j].Y0 {
			return cells[i].Y0 < cells[j].Y0
		}
		return cells[i].X0 < cells[j].X0
	})
	return cells
}

// clusterCells groups cells that are vertically close. A gap larger than
// ClusterGap starts a new cluster.
func (d *GeometricDetector) clusterCells(cells []model.Rect) [][]model.Rect {
	if len(cells) == 0 {
		return nil
	}

	var clusters [][]model.Rect
	current := []model.Rect{cells[0]}
	bottom := cells[0].Y1

	for _, c := range cells[1:] {
		if c.Y0-bottom > d.config.ClusterGap {
			clusters = append(clusters, current)
			current = []model.Rect{c}
			bottom = c.Y1
			continue
		}
		current = append(current, c)
		bottom = math.Max(bottom, c.Y1)
	}
	return append(clusters, current)
}

// detectInCluster looks for a grid of rows and columns inside one cluster
func (d *GeometricDetector) detectInCluster(cluster []model.Rect) (model.Rect, bool) {
	rows := d.tableRows(cluster)
	if len(rows) < d.config.MinRows {
		return model.Rect{}, false
	}

	var lefts []float64
	var tableCells []model.Rect
	for _, row := range rows {
		for _, c := range row {
			lefts = append(lefts, c.X0)
			tableCells = append(tableCells, c)
		}
	}
	sort.Float64s(lefts)
	cols := clusterValues(lefts, d.config.AlignmentTolerance)
	if len(cols) < d.config.MinCols {
		return model.Rect{}, false
	}

	confidence := 0.4*d.alignmentQuality(tableCells, cols) +
		0.3*occupancy(len(tableCells), len(rows), len(cols)) +
		0.3*rowRegularity(rows)
	if confidence < d.config.MinConfidence {
		return model.Rect{}, false
	}

	return model.UnionAll(tableCells), true
}

// tableRows splits a cluster into rows by top edge and keeps the rows that
// hold at least MinCols cells
func (d *GeometricDetector) tableRows(cluster []model.Rect) [][]model.Rect {
	var rows [][]model.Rect
	var row []model.Rect
	anchor := 0.0

	flush := func() {
		if len(row) >= d.config.MinCols {
			rows = append(rows, row)
		}
		row = nil
	}

	for _, c := range cluster {
		if len(row) > 0 && math.Abs(c.Y0-anchor) > d.config.AlignmentTolerance {
			flush()
		}
		if len(row) == 0 {
			anchor = c.Y0
		}
		row = append(row, c)
	}
	flush()
	return rows
}

// alignmentQuality is the fraction of cells whose left edge sits on a column
func (d *GeometricDetector) alignmentQuality(cells []model.Rect, cols []float64) float64 {
	if len(cells) == 0 {
		return 0
	}
	aligned := 0
	for _, c := range cells {
		for _, x := range cols {
			if math.Abs(c.X0-x) <= d.config.AlignmentTolerance {
				aligned++
				break
			}
		}
	}
	return float64(aligned) / float64(len(cells))
}

// occupancy is the fraction of grid slots that hold a cell
func occupancy(cells, rows, cols int) float64 {
	slots := rows * cols
	if slots == 0 {
		return 0
	}
	return math.Min(1, float64(cells)/float64(slots))
}

// rowRegularity scores the spacing between rows: evenly spaced rows score 1.
// The score is one minus the coefficient of variation of the gaps.
func rowRegularity(rows [][]model.Rect) float64 {
	if len(rows) < 3 {
		return 1
	}
	gaps := make([]float64, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		gaps = append(gaps, rows[i][0].Y0-rows[i-1][0].Y0)
	}
	m := mean(gaps)
	if m <= 0 {
		return 0
	}
	cv := math.Sqrt(variance(gaps)) / m
	return math.Max(0, 1-cv)
}

// clusterValues clusters sorted values within the given tolerance, averaging
// values that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}
	for i := 1; i < len(values); i++ {
		last := clustered[len(clustered)-1]
		if values[i]-last > tolerance {
			clustered = append(clustered, values[i])
		} else {
			clustered[len(clustered)-1] = (last + values[i]) / 2
		}
	}
	return clustered
}

// mean computes the arithmetic mean of a slice of float64 values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance computes the population variance of a slice of float64 values.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

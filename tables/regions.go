package tables

import (
	"github.com/tidwall/rtree"

	"github.com/tsawler/outline/model"
)

// Regions is the set of table areas found on one page, indexed for
// overlap queries
type Regions struct {
	areas []model.TableArea
	tree  rtree.RTreeG[int]

	// StructureErr records a structural detector failure that was absorbed
	StructureErr error
}

// NewRegions indexes the given areas
func NewRegions(areas []model.TableArea) *Regions {
	r := &Regions{areas: areas}
	for i, a := range areas {
		r.tree.Insert(
			[2]float64{a.BBox.X0, a.BBox.Y0},
			[2]float64{a.BBox.X1, a.BBox.Y1},
			i,
		)
	}
	return r
}

// Areas returns the indexed areas
func (r *Regions) Areas() []model.TableArea {
	if r == nil {
		return nil
	}
	return r.areas
}

// Len returns the number of areas
func (r *Regions) Len() int {
	if r == nil {
		return 0
	}
	return len(r.areas)
}

// Covers reports whether bbox overlaps any area. Touching edges do not count.
func (r *Regions) Covers(bbox model.Rect) bool {
	if r == nil || len(r.areas) == 0 {
		return false
	}
	found := false
	r.tree.Search(
		[2]float64{bbox.X0, bbox.Y0},
		[2]float64{bbox.X1, bbox.Y1},
		func(_, _ [2]float64, i int) bool {
			if r.areas[i].BBox.Overlaps(bbox) {
				found = true
				return false
			}
			return true
		},
	)
	return found
}

// CoversBlock reports whether the block overlaps any area
func (r *Regions) CoversBlock(b *model.Block) bool {
	return b != nil && r.Covers(b.BBox)
}

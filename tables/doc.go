// Package tables finds page regions that hold tabular or form content so the
// outline engine can keep them out of the heading list.
//
// # Detection sources
//
// A [Detector] combines three independent sources for a page:
//
//  1. Text tables - blocks whose text looks like a table header or a row of
//     serial numbers ([IsTableStructure])
//  2. Form regions - a run of eight or more short numbered blocks
//     ("1. Name", "2. Designation", ...), reported as their bounding union
//  3. Structural tables - an optional [StructureDetector] such as the
//     [GeometricDetector], which looks for a grid of aligned blocks
//
// A structural detector is best effort. When none is configured, or it
// fails, the page simply has no structural tables.
//
// # Regions
//
// The result is a [Regions] value backed by an R-tree:
//
//	regions := tables.NewDetector().Detect(page)
//	if regions.Covers(block.BBox) {
//	    // skip block
//	}
//
// Overlap is strict: a block that only touches a table edge is not covered.
//
// [IsTableOrFormContent] classifies a single text as form furniture (bare
// numbers, "Signature", "S.No Name", ...) regardless of geometry.
package tables

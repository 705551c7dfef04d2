// Package model defines the data exchanged between a document decoder and the
// outline engine, and the engine's output.
//
// # Input
//
// A [Document] is an ordered list of [Page] values. Each page holds layout
// [Block] values made of [Line] and [Span] records with font and geometry
// metadata:
//
//	doc := model.NewDocument()
//	page := model.NewPage(612, 792)
//	page.AddBlock(model.Block{Kind: model.BlockText, BBox: bbox, Lines: lines})
//	doc.AddPage(page)
//
// Coordinates use a top-left origin with Y growing downward.
//
// # Analysis values
//
//   - [FontHierarchy] - per-document title/H1/H2/H3/body font-size tiers
//   - [TableArea] - a region excluded from heading extraction
//   - [DocumentType] - coarse document genre
//
// # Output
//
// An [Outline] carries the title and an ordered list of [Heading] values. It
// marshals to JSON as {"title": ..., "outline": [{"level": "H1", ...}]}.
package model

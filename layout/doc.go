// Package layout infers the document structure behind an outline: the font
// hierarchy, the document genre, the title and the level of each heading.
//
// # Font hierarchy
//
// The [FontAnalyzer] tallies character counts per (size, font name) across
// all pages. The most used size is body text; larger sizes are mapped to the
// title, H1, H2 and H3 tiers by their ratio to body text ([FontConfig]).
// Tiers with no matching size are derived from the body size.
//
//	h, err := layout.NewFontAnalyzer().Analyze(ctx, doc, workers)
//
// # Title
//
// The [TitleExtractor] looks at the first pages for large, prominent blocks
// near the top, scoring them on size, weight, position and wording, and falls
// back to the first suitable line of page one. A document with no candidate
// gets [UntitledDocument].
//
// # Headings
//
// The [HeadingExtractor] walks the blocks of one page and asks the
// [LevelClassifier] for a level. Blocks inside tables or forms, table of
// contents entries and the title itself are skipped. On a table of contents
// page only the "Contents" heading is emitted ([TOCDetector]).
//
// The classifier tries, in order:
//
//  1. plausibility filters that reject sentences, dates, addresses and the like
//  2. the numbering and keyword rules of package patterns
//  3. the font size against the hierarchy
//  4. the numbering depth of the text ("2.3.1" is H3)
//
// [ValidateHierarchy] then clamps the level sequence so no heading is more
// than one level deeper than the heading before it.
//
// # Document type
//
// The [TypeClassifier] samples the first pages and labels the document as an
// invitation, academic paper, form, report or general document.
package layout

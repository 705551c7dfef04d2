package source

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/text"
)

// glyph is one positioned text run from a PDF content stream, already in
// top-down page coordinates. Baseline is the distance from the top of the
// page to the text baseline.
type glyph struct {
	Text     string
	Font     string
	Size     float64
	X        float64
	Width    float64
	Baseline float64
}

func (g glyph) right() float64 { return g.X + g.Width }

// AssembleConfig controls how glyphs are grouped into layout blocks
type AssembleConfig struct {
	// LineTolerance is the baseline distance, as a fraction of font size,
	// within which glyphs share a line (default: 0.5)
	LineTolerance float64

	// SpaceGap is the horizontal gap, as a fraction of font size, above
	// which a space is inserted between glyphs (default: 0.2)
	SpaceGap float64

	// ColumnGap is the horizontal gap, as a fraction of font size, that
	// splits a row into separate lines (default: 3.0)
	ColumnGap float64

	// BlockGap is the vertical gap between lines, as a fraction of line
	// height, above which a new block starts (default: 0.8)
	BlockGap float64

	// SizeTolerance is the largest font size difference, in points, between
	// lines of the same block (default: 1.0)
	SizeTolerance float64
}

// DefaultAssembleConfig returns the grouping thresholds used by OpenPDF
func DefaultAssembleConfig() AssembleConfig {
	return AssembleConfig{
		LineTolerance: 0.5,
		SpaceGap:      0.2,
		ColumnGap:     3.0,
		BlockGap:      0.8,
		SizeTolerance: 1.0,
	}
}

// assembler groups glyphs into spans, lines and blocks
type assembler struct {
	config AssembleConfig
}

func newAssembler(config AssembleConfig) *assembler {
	return &assembler{config: config}
}

// Blocks groups the glyphs of one page into text blocks ordered top to
// bottom.
func (a *assembler) Blocks(glyphs []glyph) []model.Block {
	var lines []model.Line
	for _, row := range a.rows(glyphs) {
		for _, segment := range a.segments(row) {
			if line, ok := a.line(segment); ok {
				lines = append(lines, line)
			}
		}
	}
	return a.blocks(lines)
}

// rows groups glyphs sharing a baseline. Each row is sorted left to right.
func (a *assembler) rows(glyphs []glyph) [][]glyph {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Baseline < sorted[j].Baseline
	})

	var rows [][]glyph
	current := []glyph{sorted[0]}
	for _, g := range sorted[1:] {
		last := current[len(current)-1]
		tolerance := (g.Size + last.Size) / 2 * a.config.LineTolerance
		if math.Abs(g.Baseline-last.Baseline) <= tolerance {
			current = append(current, g)
			continue
		}
		rows = append(rows, current)
		current = []glyph{g}
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X < row[j].X
		})
	}
	return rows
}

// segments splits a row at wide horizontal gaps, so side-by-side columns
// become separate lines.
func (a *assembler) segments(row []glyph) [][]glyph {
	var out [][]glyph
	start := 0
	for i := 1; i < len(row); i++ {
		gap := row[i].X - row[i-1].right()
		if gap > row[i-1].Size*a.config.ColumnGap {
			out = append(out, row[start:i])
			start = i
		}
	}
	return append(out, row[start:])
}

// line builds a Line from a left-to-right run of glyphs. Consecutive glyphs
// in the same font and size form one span. Lines with no visible text are
// dropped.
func (a *assembler) line(run []glyph) (model.Line, bool) {
	var (
		line  model.Line
		parts []string
		first = run[0]
		bbox  = glyphRect(first)
	)

	flush := func() {
		if s := text.Join(parts); s != "" {
			bold, italic := fontStyle(first.Font)
			line.Spans = append(line.Spans, model.Span{
				Text:     s,
				FontSize: first.Size,
				FontName: first.Font,
				Bold:     bold,
				Italic:   italic,
				BBox:     bbox,
			})
		}
		parts = nil
	}

	for i, g := range run {
		if i > 0 {
			prev := run[i-1]
			if g.Font != first.Font || math.Abs(g.Size-first.Size) > 0.1 {
				flush()
				first = g
				bbox = glyphRect(g)
			} else if g.X-prev.right() > prev.Size*a.config.SpaceGap {
				parts = append(parts, " ")
			}
		}
		parts = append(parts, g.Text)
		bbox = bbox.Union(glyphRect(g))
	}
	flush()

	if len(line.Spans) == 0 {
		return model.Line{}, false
	}
	rects := make([]model.Rect, len(line.Spans))
	for i, s := range line.Spans {
		rects[i] = s.BBox
	}
	line.BBox = model.UnionAll(rects)
	return line, true
}

// blocks places each line, in top-to-bottom order, into the open block
// whose last line sits directly above it with horizontal overlap and a
// similar font size. Lines that fit no open block start a new one.
func (a *assembler) blocks(lines []model.Line) []model.Block {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].BBox.Y0 != lines[j].BBox.Y0 {
			return lines[i].BBox.Y0 < lines[j].BBox.Y0
		}
		return lines[i].BBox.X0 < lines[j].BBox.X0
	})

	var blocks []model.Block
	for _, line := range lines {
		placed := false
		for i := range blocks {
			if a.continues(&blocks[i], line) {
				blocks[i].Lines = append(blocks[i].Lines, line)
				blocks[i].BBox = blocks[i].BBox.Union(line.BBox)
				placed = true
				break
			}
		}
		if !placed {
			blocks = append(blocks, model.Block{
				Kind:  model.BlockText,
				BBox:  line.BBox,
				Lines: []model.Line{line},
			})
		}
	}
	return blocks
}

func (a *assembler) continues(block *model.Block, line model.Line) bool {
	last := block.Lines[len(block.Lines)-1]

	gap := line.BBox.Y0 - last.BBox.Y1
	height := (last.BBox.Height() + line.BBox.Height()) / 2
	if gap < -height/2 || gap > height*a.config.BlockGap {
		return false
	}

	if last.BBox.X1 <= line.BBox.X0 || line.BBox.X1 <= last.BBox.X0 {
		return false
	}

	return math.Abs(lineSize(last)-lineSize(line)) <= a.config.SizeTolerance
}

func lineSize(l model.Line) float64 {
	if len(l.Spans) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range l.Spans {
		total += s.FontSize
	}
	return total / float64(len(l.Spans))
}

// glyphRect approximates the glyph box: the ascent is taken as the font
// size and the descent as a fifth of it.
func glyphRect(g glyph) model.Rect {
	return model.NewRect(g.X, g.Baseline-g.Size, g.right(), g.Baseline+g.Size*0.2)
}

// fontStyle infers bold and italic from a font name such as
// "ABCDEF+Helvetica-BoldOblique".
func fontStyle(name string) (bold, italic bool) {
	if i := strings.IndexByte(name, '+'); i >= 0 {
		name = name[i+1:]
	}
	lower := strings.ToLower(name)
	bold = strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
	italic = strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
	return bold, italic
}

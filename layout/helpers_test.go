package layout

import (
	"math"

	"github.com/tsawler/outline/model"
)

// block builds a single-line, single-span text block
func block(s string, size float64, bold bool, x0, y0, x1, y1 float64) model.Block {
	bbox := model.NewRect(x0, y0, x1, y1)
	return model.Block{
		Kind: model.BlockText,
		BBox: bbox,
		Lines: []model.Line{{
			Spans: []model.Span{{Text: s, FontSize: size, FontName: "Times", Bold: bold, BBox: bbox}},
			BBox:  bbox,
		}},
	}
}

// at builds a block at vertical position y spanning most of a 600pt page
func at(s string, size float64, bold bool, y float64) model.Block {
	return block(s, size, bold, 50, y, 550, y+size+2)
}

func page(blocks ...model.Block) *model.Page {
	p := model.NewPage(600, 800)
	for _, b := range blocks {
		p.AddBlock(b)
	}
	return p
}

func document(pages ...*model.Page) *model.Document {
	doc := model.NewDocument()
	for _, p := range pages {
		doc.AddPage(p)
	}
	return doc
}

const bodyText = "This paragraph is ordinary body text that runs long enough to dominate the character count of the document."

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func standardHierarchy() model.FontHierarchy {
	return model.FontHierarchy{Title: 24, H1: 18, H2: 14, H3: 12, Body: 10}
}

type fakeStructure struct {
	rects []model.Rect
	err   error
}

func (f *fakeStructure) Name() string { return "fake" }

func (f *fakeStructure) DetectTables(*model.Page) ([]model.Rect, error) {
	return f.rects, f.err
}

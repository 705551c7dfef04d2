package source

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outline/model"
)

// US Letter, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// maxInheritDepth bounds the walk up the page tree for inherited attributes
const maxInheritDepth = 32

var errNullPage = errors.New("page object is missing")

// OpenPDF decodes the text layer of a PDF file. Each page becomes a
// model.Page with top-down coordinates. A page whose content cannot be read
// is kept empty and reported as a PageError.
func OpenPDF(path string) (*model.Document, []PageError, error) {
	return OpenPDFWithConfig(path, DefaultAssembleConfig())
}

// OpenPDFWithConfig decodes a PDF using custom glyph grouping thresholds
func OpenPDFWithConfig(path string, config AssembleConfig) (*model.Document, []PageError, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("source: open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	asm := newAssembler(config)
	doc := model.NewDocument()
	var skipped []PageError

	for i := 1; i <= r.NumPage(); i++ {
		page, err := readPage(r, i, asm)
		if err != nil {
			skipped = append(skipped, PageError{Page: i, Err: err})
		}
		doc.AddPage(page)
	}
	return doc, skipped, nil
}

// readPage decodes one page. It always returns a page, empty on failure.
func readPage(r *pdf.Reader, num int, asm *assembler) (page *model.Page, err error) {
	page = model.NewPage(defaultPageWidth, defaultPageHeight)

	defer func() {
		if rec := recover(); rec != nil {
			page.Blocks = page.Blocks[:0]
			err = fmt.Errorf("reading content: %v", rec)
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return page, errNullPage
	}

	x0, y0, x1, y1, ok := mediaBox(p.V)
	if ok {
		page.Width = x1 - x0
		page.Height = y1 - y0
	}

	content := p.Content()
	glyphs := make([]glyph, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}
		glyphs = append(glyphs, glyph{
			Text:     t.S,
			Font:     t.Font,
			Size:     t.FontSize,
			X:        t.X - x0,
			Width:    t.W,
			Baseline: page.Height - (t.Y - y0),
		})
	}

	for _, b := range asm.Blocks(glyphs) {
		page.AddBlock(b)
	}
	return page, nil
}

// mediaBox returns the page's MediaBox, following the Parent chain when the
// attribute is inherited. The corners are normalised so x0 < x1 and y0 < y1.
func mediaBox(v pdf.Value) (x0, y0, x1, y1 float64, ok bool) {
	for depth := 0; depth < maxInheritDepth && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			x0, y0 = box.Index(0).Float64(), box.Index(1).Float64()
			x1, y1 = box.Index(2).Float64(), box.Index(3).Float64()
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			if x1 > x0 && y1 > y0 {
				return x0, y0, x1, y1, true
			}
			return 0, 0, 0, 0, false
		}
		v = v.Key("Parent")
	}
	return 0, 0, 0, 0, false
}

package model

import "strings"

// defaultFontSize is reported for blocks that carry no spans.
const defaultFontSize = 10.0

// Span is an atomic run of text with a uniform style
type Span struct {
	Text     string
	FontSize float64
	FontName string
	Bold     bool
	Italic   bool
	BBox     Rect
}

// Line is an ordered sequence of spans sharing a baseline
type Line struct {
	Spans []Span
	BBox  Rect
}

// BlockKind identifies the content type of a layout block
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockImage
	BlockOther
)

// String returns a string representation of the block kind
func (k BlockKind) String() string {
	switch k {
	case BlockText:
		return "text"
	case BlockImage:
		return "image"
	default:
		return "other"
	}
}

// Block is a layout unit on a page. Blocks within a page have no guaranteed
// reading order beyond their vertical position.
type Block struct {
	Kind  BlockKind
	BBox  Rect
	Lines []Line
}

// IsText reports whether the block carries text
func (b *Block) IsText() bool {
	return b != nil && b.Kind == BlockText
}

// IsUsable reports whether the block can take part in analysis: it must be a
// text block whose bounding box is well-formed and encloses some area.
// Blocks with a collapsed box cannot be placed against table regions, so
// they are skipped along with malformed ones.
func (b *Block) IsUsable() bool {
	return b.IsText() && b.BBox.IsValid() && !b.BBox.IsEmpty()
}

// Text assembles the block text. Each span is trimmed, spans within a line
// are joined by a single space, and non-empty lines are joined by a space.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	parts := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		if lt := line.Text(); lt != "" {
			parts = append(parts, lt)
		}
	}
	return strings.Join(parts, " ")
}

// Text assembles the line from its trimmed, non-empty spans
func (l Line) Text() string {
	var sb strings.Builder
	for _, span := range l.Spans {
		st := strings.TrimSpace(span.Text)
		if st == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(st)
	}
	return sb.String()
}

// FontSize returns the mean span font size, or 10 when the block has no spans
func (b *Block) FontSize() float64 {
	total := 0.0
	n := 0
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			total += span.FontSize
			n++
		}
	}
	if n == 0 {
		return defaultFontSize
	}
	return total / float64(n)
}

// IsBold reports whether any span in the block is bold
func (b *Block) IsBold() bool {
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			if span.Bold {
				return true
			}
		}
	}
	return false
}

// FontFeatures summarises the typography of a block
type FontFeatures struct {
	Sizes   []float64
	Names   []string // distinct, in first-seen order
	Bold    bool
	Italic  bool
	Average float64
	Max     float64
	Min     float64
}

// Variety returns the number of distinct font names
func (f FontFeatures) Variety() int {
	return len(f.Names)
}

// Features collects the font sizes, names and style flags of every span
func (b *Block) Features() FontFeatures {
	var f FontFeatures
	seen := make(map[string]bool)
	total := 0.0
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			f.Sizes = append(f.Sizes, span.FontSize)
			if !seen[span.FontName] {
				seen[span.FontName] = true
				f.Names = append(f.Names, span.FontName)
			}
			f.Bold = f.Bold || span.Bold
			f.Italic = f.Italic || span.Italic
			total += span.FontSize
			if len(f.Sizes) == 1 || span.FontSize > f.Max {
				f.Max = span.FontSize
			}
			if len(f.Sizes) == 1 || span.FontSize < f.Min {
				f.Min = span.FontSize
			}
		}
	}
	if len(f.Sizes) > 0 {
		f.Average = total / float64(len(f.Sizes))
	}
	return f
}

// Page is a single page of a decoded document
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []Block

	// FullText is the decoder's plain-text rendering of the page. When empty,
	// Text derives it from the blocks.
	FullText string
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page
func (p *Page) AddBlock(block Block) {
	p.Blocks = append(p.Blocks, block)
}

// TextBlocks returns pointers to the usable text blocks in page order
func (p *Page) TextBlocks() []*Block {
	if p == nil {
		return nil
	}
	blocks := make([]*Block, 0, len(p.Blocks))
	for i := range p.Blocks {
		if p.Blocks[i].IsUsable() {
			blocks = append(blocks, &p.Blocks[i])
		}
	}
	return blocks
}

// Text returns the full text of the page
func (p *Page) Text() string {
	if p == nil {
		return ""
	}
	if p.FullText != "" {
		return p.FullText
	}
	var sb strings.Builder
	for i := range p.Blocks {
		if !p.Blocks[i].IsText() {
			continue
		}
		for _, line := range p.Blocks[i].Lines {
			var raw strings.Builder
			for _, span := range line.Spans {
				raw.WriteString(span.Text)
			}
			sb.WriteString(raw.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Document is an ordered sequence of pages. The engine treats it as read-only.
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and numbers it
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

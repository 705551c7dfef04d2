package source

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tsawler/outline/model"
)

// Span flag bits in the layout dump
const (
	flagItalic = 1 << 1
	flagBold   = 1 << 4
)

// Block type codes in the layout dump
const (
	typeText  = 0
	typeImage = 1
)

type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

type jsonPage struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Text   string      `json:"text"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	Type  int        `json:"type"`
	BBox  []float64  `json:"bbox"`
	Lines []jsonLine `json:"lines"`
}

type jsonLine struct {
	BBox  []float64  `json:"bbox"`
	Spans []jsonSpan `json:"spans"`
}

type jsonSpan struct {
	Size  float64   `json:"size"`
	Font  string    `json:"font"`
	Flags int       `json:"flags"`
	Text  string    `json:"text"`
	BBox  []float64 `json:"bbox"`
}

// OpenJSON decodes a layout JSON file
func OpenJSON(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}

// ReadJSON decodes a layout dump from r. Blocks with a malformed bounding
// box are kept but marked unusable, so the engine skips them.
func ReadJSON(r io.Reader) (*model.Document, error) {
	var raw jsonDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("source: decoding layout json: %w", err)
	}

	doc := model.NewDocument()
	for _, p := range raw.Pages {
		page := model.NewPage(p.Width, p.Height)
		page.FullText = p.Text
		for _, b := range p.Blocks {
			page.AddBlock(convertBlock(b))
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func convertBlock(b jsonBlock) model.Block {
	block := model.Block{
		Kind: blockKind(b.Type),
		BBox: toRect(b.BBox),
	}
	for _, l := range b.Lines {
		line := model.Line{BBox: toRect(l.BBox)}
		for _, s := range l.Spans {
			line.Spans = append(line.Spans, model.Span{
				Text:     s.Text,
				FontSize: s.Size,
				FontName: s.Font,
				Bold:     s.Flags&flagBold != 0,
				Italic:   s.Flags&flagItalic != 0,
				BBox:     toRect(s.BBox),
			})
		}
		block.Lines = append(block.Lines, line)
	}
	return block
}

func blockKind(t int) model.BlockKind {
	switch t {
	case typeText:
		return model.BlockText
	case typeImage:
		return model.BlockImage
	default:
		return model.BlockOther
	}
}

// toRect converts a [x0, y0, x1, y1] array. Anything else yields a rectangle
// that fails IsValid.
func toRect(v []float64) model.Rect {
	if len(v) != 4 {
		nan := math.NaN()
		return model.NewRect(nan, nan, nan, nan)
	}
	return model.NewRect(v[0], v[1], v[2], v[3])
}

package source

import (
	"strings"
	"testing"

	"github.com/tsawler/outline/model"
)

const layoutJSON = `{
  "pages": [
    {
      "width": 612, "height": 792,
      "blocks": [
        {"type": 0, "bbox": [72, 60, 540, 90], "lines": [
          {"bbox": [72, 60, 540, 90], "spans": [
            {"size": 24, "font": "Helvetica-Bold", "flags": 16, "text": "Annual Report", "bbox": [72, 60, 300, 90]},
            {"size": 24, "font": "Helvetica-Oblique", "flags": 2, "text": " 2024 ", "bbox": [300, 60, 380, 90]}
          ]}
        ]},
        {"type": 1, "bbox": [72, 100, 300, 300]},
        {"type": 0, "bbox": [72, 310], "lines": []}
      ]
    },
    {"width": 612, "height": 792, "text": "page two text", "blocks": []}
  ]
}`

func TestReadJSON(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(layoutJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	first := doc.GetPage(1)
	if first.Number != 1 || first.Width != 612 || first.Height != 792 {
		t.Errorf("page 1 = #%d %vx%v, want #1 612x792", first.Number, first.Width, first.Height)
	}
	if len(first.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(first.Blocks))
	}

	heading := first.Blocks[0]
	if got := heading.Text(); got != "Annual Report 2024" {
		t.Errorf("Text() = %q, want %q", got, "Annual Report 2024")
	}
	spans := heading.Lines[0].Spans
	if !spans[0].Bold || spans[0].Italic {
		t.Errorf("span 0 bold=%v italic=%v, want bold only", spans[0].Bold, spans[0].Italic)
	}
	if spans[1].Bold || !spans[1].Italic {
		t.Errorf("span 1 bold=%v italic=%v, want italic only", spans[1].Bold, spans[1].Italic)
	}
	if spans[0].FontSize != 24 || spans[0].FontName != "Helvetica-Bold" {
		t.Errorf("span 0 font = %v %q", spans[0].FontSize, spans[0].FontName)
	}
	if heading.BBox != model.NewRect(72, 60, 540, 90) {
		t.Errorf("BBox = %+v", heading.BBox)
	}

	if first.Blocks[1].Kind != model.BlockImage {
		t.Errorf("block 1 kind = %v, want image", first.Blocks[1].Kind)
	}
	if first.Blocks[2].IsUsable() {
		t.Error("block with a malformed bbox should not be usable")
	}
	if got := len(first.TextBlocks()); got != 1 {
		t.Errorf("len(TextBlocks()) = %d, want 1", got)
	}

	if got := doc.GetPage(2).Text(); got != "page two text" {
		t.Errorf("page 2 Text() = %q, want decoder text", got)
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	tests := []string{
		"",
		"{",
		`{"pages": "none"}`,
	}

	for _, input := range tests {
		if _, err := ReadJSON(strings.NewReader(input)); err == nil {
			t.Errorf("ReadJSON(%q) should fail", input)
		}
	}
}

func TestBlockKind(t *testing.T) {
	tests := []struct {
		code int
		want model.BlockKind
	}{
		{0, model.BlockText},
		{1, model.BlockImage},
		{2, model.BlockOther},
		{-1, model.BlockOther},
	}

	for _, tt := range tests {
		if got := blockKind(tt.code); got != tt.want {
			t.Errorf("blockKind(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

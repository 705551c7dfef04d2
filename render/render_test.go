package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tsawler/outline/model"
)

func sampleOutline() *model.Outline {
	return &model.Outline{
		Title: "Annual Report",
		Headings: []model.Heading{
			{Level: model.H1, Text: "1. Introduction", Page: 1},
			{Level: model.H2, Text: "1.1 Scope", Page: 2},
			{Level: model.H3, Text: "1.1.1 Limits", Page: 2},
			{Level: model.H2, Text: "1.2 Method", Page: 3},
			{Level: model.H1, Text: "2. Results", Page: 4},
		},
	}
}

func TestTree(t *testing.T) {
	roots := Tree(sampleOutline().Headings)
	if len(roots) != 2 {
		t.Fatalf("len(roots) = %d, want 2", len(roots))
	}

	intro := roots[0]
	if len(intro.Children) != 2 {
		t.Fatalf("Introduction children = %d, want 2", len(intro.Children))
	}
	if got := intro.Children[0].Children[0].Heading.Text; got != "1.1.1 Limits" {
		t.Errorf("grandchild = %q, want %q", got, "1.1.1 Limits")
	}
	if intro.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", intro.Depth())
	}
	if roots[1].Depth() != 1 {
		t.Errorf("leaf Depth() = %d, want 1", roots[1].Depth())
	}
}

func TestTree_StartsBelowH1(t *testing.T) {
	roots := Tree([]model.Heading{
		{Level: model.H2, Text: "a", Page: 1},
		{Level: model.H2, Text: "b", Page: 1},
		{Level: model.H1, Text: "c", Page: 2},
	})
	if len(roots) != 3 {
		t.Errorf("len(roots) = %d, want 3", len(roots))
	}
}

func TestTree_Empty(t *testing.T) {
	if roots := Tree(nil); roots != nil {
		t.Errorf("Tree(nil) = %v, want nil", roots)
	}
	var n *Node
	if n.Depth() != 0 {
		t.Error("nil node Depth() should be 0")
	}
}

func TestWalk_Order(t *testing.T) {
	var got []string
	for _, root := range Tree(sampleOutline().Headings) {
		root.Walk(func(n *Node, depth int) {
			got = append(got, strings.Repeat(">", depth)+n.Heading.Text)
		})
	}

	want := []string{"1. Introduction", ">1.1 Scope", ">>1.1.1 Limits", ">1.2 Method", "2. Results"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleOutline()); err != nil {
		t.Fatalf("Text() error: %v", err)
	}

	want := "Annual Report\n\n" +
		"1. Introduction ... 1\n" +
		"  1.1 Scope ... 2\n" +
		"    1.1.1 Limits ... 2\n" +
		"  1.2 Method ... 3\n" +
		"2. Results ... 4\n"
	if buf.String() != want {
		t.Errorf("Text() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestMarkdown(t *testing.T) {
	o := &model.Outline{
		Title: "Use of *stars* and [links]",
		Headings: []model.Heading{
			{Level: model.H1, Text: "snake_case names", Page: 1},
			{Level: model.H2, Text: "Details", Page: 2},
		},
	}

	var buf bytes.Buffer
	if err := Markdown(&buf, o); err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}

	want := "# Use of \\*stars\\* and \\[links\\]\n\n" +
		"- snake\\_case names (p. 1)\n" +
		"  - Details (p. 2)\n"
	if buf.String() != want {
		t.Errorf("Markdown() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestHTML(t *testing.T) {
	o := &model.Outline{
		Title: "R&D Plan",
		Headings: []model.Heading{
			{Level: model.H1, Text: "Goals <draft>", Page: 1},
			{Level: model.H2, Text: "Budget", Page: 3},
		},
	}

	var buf bytes.Buffer
	if err := HTML(&buf, o); err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	want := `<nav class="outline"><h1>R&amp;D Plan</h1><ul>` +
		`<li class="H1"><a href="#page=1">Goals &lt;draft&gt;</a>` +
		`<ul><li class="H2"><a href="#page=3">Budget</a></li></ul></li>` +
		`</ul></nav>` + "\n"
	if buf.String() != want {
		t.Errorf("HTML() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestHTML_NoHeadings(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, &model.Outline{Title: "Untitled Document"}); err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	want := `<nav class="outline"><h1>Untitled Document</h1></nav>` + "\n"
	if buf.String() != want {
		t.Errorf("HTML() = %q, want %q", buf.String(), want)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, &model.Outline{Title: "Empty"}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["title"] != "Empty" {
		t.Errorf("title = %v, want Empty", decoded["title"])
	}
	if outline, ok := decoded["outline"].([]any); !ok || len(outline) != 0 {
		t.Errorf("outline = %v, want empty array", decoded["outline"])
	}
}

func TestRender(t *testing.T) {
	o := sampleOutline()
	for _, f := range []Format{FormatJSON, FormatText, FormatMarkdown, FormatHTML} {
		var buf bytes.Buffer
		if err := Render(&buf, o, f); err != nil {
			t.Errorf("Render(%v) error: %v", f, err)
		}
		if !strings.Contains(buf.String(), "1.1 Scope") {
			t.Errorf("Render(%v) output is missing a heading", f)
		}
	}

	if err := Render(&bytes.Buffer{}, o, Format(42)); err == nil {
		t.Error("Render() with an unknown format should fail")
	}
	if err := Render(&bytes.Buffer{}, nil, FormatText); err != nil {
		t.Errorf("Render(nil outline) error: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"txt", FormatText, false},
		{"md", FormatMarkdown, false},
		{" markdown ", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"pdf", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormat_Names(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		ext    string
	}{
		{FormatJSON, "json", ".json"},
		{FormatText, "text", ".txt"},
		{FormatMarkdown, "markdown", ".md"},
		{FormatHTML, "html", ".html"},
		{Format(9), "unknown", ".txt"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.format.FileExtension(); got != tt.ext {
			t.Errorf("FileExtension() = %q, want %q", got, tt.ext)
		}
	}
}

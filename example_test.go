package outline_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/model"
	"github.com/tsawler/outline/render"
)

func block(s string, size float64, bold bool, y float64) model.Block {
	bbox := model.NewRect(50, y, 550, y+size+2)
	return model.Block{
		Kind: model.BlockText,
		BBox: bbox,
		Lines: []model.Line{{
			Spans: []model.Span{{Text: s, FontSize: size, FontName: "Helvetica", Bold: bold, BBox: bbox}},
			BBox:  bbox,
		}},
	}
}

func exampleDocument() *model.Document {
	body := "This paragraph is ordinary body text that runs long enough to dominate the character count of the document."

	cover := model.NewPage(600, 800)
	cover.AddBlock(block("Annual Plan Review", 24, true, 40))
	cover.AddBlock(block(body, 10, false, 200))

	chapter := model.NewPage(600, 800)
	chapter.AddBlock(block("1. Introduction", 14, true, 40))
	chapter.AddBlock(block("1.1 Background", 12, false, 80))
	chapter.AddBlock(block(body, 10, false, 120))

	doc := model.NewDocument()
	doc.AddPage(cover)
	doc.AddPage(chapter)
	return doc
}

func ExampleEngine_Extract() {
	o, err := outline.NewEngine().Extract(context.Background(), exampleDocument())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(o.Title)
	for _, h := range o.Headings {
		fmt.Println(h.Level, h.Text, h.Page)
	}
	// Output:
	// Annual Plan Review
	// H1 1. Introduction 2
	// H2 1.1 Background 2
}

func ExampleFromDocument() {
	o := outline.MustOutline(outline.FromDocument(exampleDocument()).Outline(context.Background()))

	if err := render.Text(os.Stdout, o); err != nil {
		log.Fatal(err)
	}
	// Output:
	// Annual Plan Review
	//
	// 1. Introduction ... 2
	//   1.1 Background ... 2
}

// Files are decoded by content, so a PDF or a layout JSON dump can be
// passed to Open.
func ExampleOpen() {
	o, warnings, err := outline.Open("report.pdf").
		Workers(4).
		DetectTables().
		Outline(context.Background())
	if err != nil {
		log.Println(err)
		return
	}
	if len(warnings) > 0 {
		log.Println("Warnings:", outline.FormatWarnings(warnings))
	}
	fmt.Println(o.Title)
}

// Command outline extracts a title and H1-H4 heading outline from PDF files
// and layout JSON dumps, and manages saved outlines.
//
// Usage:
//
//	outline extract report.pdf --format markdown --save
//	outline list
//	outline show <id>
//	outline delete <id>
//	outline config
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/render"
	"github.com/tsawler/outline/store"
	"github.com/tsawler/outline/tables"
)

func (a *app) newExtractCmd() *cobra.Command {
	var (
		formatName   string
		save         bool
		detectTables bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract the outline of a document",
		Long: `Extract the title and heading outline of a PDF file or layout JSON dump
and print it. With --save the outline is also stored for later use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatName)
			if err != nil {
				return err
			}

			path := args[0]
			engineCfg := a.cfg.Engine(a.logger)
			if detectTables {
				engineCfg.StructureDetector = tables.NewGeometricDetector()
			}

			result, err := outline.AnalyzeFile(cmd.Context(), path, engineCfg)
			if err != nil {
				return fmt.Errorf("failed to extract outline: %w", err)
			}
			for _, w := range result.Warnings {
				a.logger.Warn("extraction warning", "page", w.Page, "message", w.Message)
			}
			a.logger.Debug("outline extracted",
				"file", path,
				"pages", result.Pages,
				"headings", len(result.Outline.Headings),
				"type", result.DocumentType.String())

			if save {
				if err := a.save(cmd, path, result); err != nil {
					return err
				}
			}

			return render.Render(cmd.OutOrStdout(), result.Outline, format)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "output format: json, text, markdown or html")
	cmd.Flags().BoolVar(&save, "save", false, "store the outline in the outline database")
	cmd.Flags().BoolVar(&detectTables, "detect-tables", false, "ignore headings inside grids of aligned text")
	return cmd
}

func (a *app) save(cmd *cobra.Command, path string, result *outline.Result) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	rec := &store.Record{
		Source:       path,
		DocumentType: result.DocumentType.String(),
		Pages:        result.Pages,
		Outline:      *result.Outline,
	}
	if err := s.Save(cmd.Context(), rec); err != nil {
		return fmt.Errorf("failed to save outline: %w", err)
	}
	cmd.PrintErrf("Saved outline %s\n", rec.ID)
	return nil
}

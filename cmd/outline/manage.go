package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline/render"
	"github.com/tsawler/outline/store"
)

func (a *app) newShowCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a saved outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatName)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Get(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no saved outline with id %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to get outline: %w", err)
			}
			return render.Render(cmd.OutOrStdout(), &rec.Outline, format)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "output format: json, text, markdown or html")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved outlines, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list outlines: %w", err)
			}
			if len(records) == 0 {
				cmd.Println("No saved outlines")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tPAGES\tHEADINGS\tTITLE\tSOURCE")
			for _, rec := range records {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
					rec.ID,
					rec.CreatedAt.Format("2006-01-02 15:04:05"),
					rec.Pages,
					len(rec.Outline.Headings),
					rec.Outline.Title,
					rec.Source)
			}
			return tw.Flush()
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.Delete(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no saved outline with id %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to delete outline: %w", err)
			}
			cmd.Printf("Deleted outline %s\n", args[0])
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Write(cmd.OutOrStdout())
		},
	}
}

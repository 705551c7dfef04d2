package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline/config"
	"github.com/tsawler/outline/store"
)

// app holds the state shared by all commands of one invocation
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "outline",
		Short: "Extract document outlines",
		Long: `Extract a title and an H1-H4 heading outline from PDF files or layout
JSON dumps, using font sizes, numbering patterns and page layout.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.outline/config.toml)")
	flags.StringVar(&a.dbPath, "db", "", "outline database (overrides store.path)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		a.newExtractCmd(),
		a.newShowCmd(),
		a.newListCmd(),
		a.newDeleteCmd(),
		a.newConfigCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Store.Path = a.dbPath
	}
	a.cfg = cfg
	return nil
}

func (a *app) openStore() (*store.Store, error) {
	s, err := store.Open(a.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outline store: %w", err)
	}
	return s, nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glbook-dev/glbook/internal/book"
	"github.com/glbook-dev/glbook/internal/chart"
	"github.com/glbook-dev/glbook/internal/config"
	"github.com/glbook-dev/glbook/internal/gitops"
	"github.com/glbook-dev/glbook/internal/security"
)

func newInitCommand(logger zerolog.Logger) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, logger)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "book name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string, logger zerolog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating book directory: %w", err)
	}

	// Seed the book with the default chart and users.
	b := &book.Book{
		Config: config.Default(name),
		Chart:  chart.DefaultChart(),
		Users:  security.NewDirectory(security.DefaultUsers()),
	}
	if err := b.Save(dir); err != nil {
		return err
	}

	// Initialize git and create the initial commit.
	if b.Config.Git.AutoCommit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: "+name, b.Config.Git.AuthorName, b.Config.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		logger.Debug().Str("commit", hash).Msg("book committed")
	}

	logger.Info().Str("book", name).Str("dir", dir).Msg("initialized ledger book")
	return nil
}

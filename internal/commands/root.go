package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/glbook-dev/glbook/internal/book"
	"github.com/glbook-dev/glbook/internal/buildinfo"
	"github.com/glbook-dev/glbook/internal/gitops"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:     "glbook",
		Short:   "Segmented general ledger with hierarchical security",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand(logger))
	rootCmd.AddCommand(newChartCommand(logger))
	rootCmd.AddCommand(newUserCommand(logger))
	rootCmd.AddCommand(newPostCommand(logger))
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newLedgerCommand())

	return rootCmd
}

// loadBook resolves a book directory and loads its state.
func loadBook(dir string) (string, *book.Book, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path: %w", err)
	}
	b, err := book.Load(absDir)
	if err != nil {
		return "", nil, err
	}
	return absDir, b, nil
}

// commitBook commits the book directory when auto-commit is on. Commit
// failures are reported but never fail the operation that already happened.
func commitBook(root string, b *book.Book, message string, logger zerolog.Logger) {
	if !b.Config.Git.AutoCommit || !gitops.IsRepo(root) {
		return
	}
	hash, err := gitops.CommitAll(root, message, b.Config.Git.AuthorName, b.Config.Git.AuthorEmail)
	if err != nil {
		logger.Warn().Err(err).Msg("auto-commit failed")
		return
	}
	logger.Debug().Str("commit", hash).Msg("book committed")
}

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/glbook-dev/glbook/internal/book"
	"github.com/glbook-dev/glbook/internal/ledger"
	"github.com/glbook-dev/glbook/internal/model"
)

const dateFormat = "2006-01-02"

// postFlags collects the raw flag values for one posting.
type postFlags struct {
	bookDir     string
	user        string
	password    string
	company     string
	department  string
	account     string
	date        string
	description string
	side        string
	amount      string
}

func newPostCommand(logger zerolog.Logger) *cobra.Command {
	var flags postFlags

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(flags, logger)
		},
	}

	cmd.Flags().StringVar(&flags.bookDir, "book", ".", "book directory")
	cmd.Flags().StringVar(&flags.user, "user", "", "posting username (required)")
	cmd.Flags().StringVar(&flags.password, "password", "", "password (required)")
	cmd.Flags().StringVar(&flags.company, "company", "", "company segment (required)")
	cmd.Flags().StringVar(&flags.department, "department", "", "department segment (required)")
	cmd.Flags().StringVar(&flags.account, "account", "", "account segment (required)")
	cmd.Flags().StringVar(&flags.date, "date", time.Now().Format(dateFormat), "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.description, "description", "", "free-text description")
	cmd.Flags().StringVar(&flags.side, "side", "", "posting side: debit or credit (required)")
	cmd.Flags().StringVar(&flags.amount, "amount", "", "amount (required)")
	for _, f := range []string{"user", "password", "company", "department", "account", "side", "amount"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func runPost(flags postFlags, logger zerolog.Logger) error {
	root, b, err := loadBook(flags.bookDir)
	if err != nil {
		return err
	}

	if _, err := b.Users.Authenticate(flags.user, flags.password); err != nil {
		return err
	}

	date, err := time.Parse(dateFormat, flags.date)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", flags.date, err)
	}
	amount, err := decimal.NewFromString(flags.amount)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", flags.amount, err)
	}

	engine := ledger.NewEngine(b.Chart, b.Users, b.Entries)
	entry, err := engine.Post(ledger.PostParams{
		User:        flags.user,
		Company:     flags.company,
		Department:  flags.department,
		Account:     flags.account,
		Date:        date,
		Description: flags.description,
		Side:        model.Side(flags.side),
		Amount:      amount,
	})
	if err != nil {
		return err
	}
	b.Entries = engine.Entries()

	if err := appendToLedger(root, entry); err != nil {
		return err
	}
	commitBook(root, b, fmt.Sprintf("post: %s %s", entry.ID, entry.Description), logger)

	logger.Info().
		Str("entry", entry.ID).
		Str("company", entry.Company).
		Str("account", entry.Account).
		Str("side", flags.side).
		Str("amount", amount.StringFixed(2)).
		Msg("entry posted")
	return nil
}

// appendToLedger appends one entry to ledger.csv, creating the file with its
// header when missing.
func appendToLedger(root string, entry model.JournalEntry) error {
	path := filepath.Join(root, book.LedgerFile)

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, ledger.Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := ledger.AppendEntries(f, []model.JournalEntry{entry}); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

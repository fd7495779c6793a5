package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/glbook-dev/glbook/internal/trialbalance"
)

func newBalanceCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the trial balance by account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(bookDir, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	return cmd
}

func runBalance(dir string, w io.Writer) error {
	_, b, err := loadBook(dir)
	if err != nil {
		return err
	}

	rows := trialbalance.Compute(b.Entries)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return nil
	}

	fmt.Fprintf(w, "%-30s %12s %12s %12s\n", "ACCOUNT", "DEBIT", "CREDIT", "BALANCE")
	for _, row := range rows {
		fmt.Fprintf(w, "%-30s %12s %12s %12s\n",
			row.Account,
			row.TotalDebit.StringFixed(2),
			row.TotalCredit.StringFixed(2),
			row.Balance.StringFixed(2))
	}
	return nil
}

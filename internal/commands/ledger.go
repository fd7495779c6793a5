package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newLedgerCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List all posted journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(bookDir, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	return cmd
}

func runLedger(dir string, w io.Writer) error {
	_, b, err := loadBook(dir)
	if err != nil {
		return err
	}

	if len(b.Entries) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return nil
	}

	fmt.Fprintf(w, "%-10s %-12s %-16s %-16s %-20s %10s %10s  %s\n",
		"ID", "DATE", "COMPANY", "DEPARTMENT", "ACCOUNT", "DEBIT", "CREDIT", "DESCRIPTION")
	for _, e := range b.Entries {
		fmt.Fprintf(w, "%-10s %-12s %-16s %-16s %-20s %10s %10s  %s\n",
			e.ID,
			e.Date.Format(dateFormat),
			e.Company,
			e.Department,
			e.Account,
			e.Debit.StringFixed(2),
			e.Credit.StringFixed(2),
			e.Description)
	}
	return nil
}

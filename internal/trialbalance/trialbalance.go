// Package trialbalance computes the per-account trial balance from the
// posted entry history. It is a pure read-side projection: it depends only
// on the entry data, never on the chart or the security directory, so
// entries against retired accounts still aggregate.
package trialbalance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/glbook-dev/glbook/internal/model"
)

// Row is one trial-balance line: the debit and credit totals for an account
// and their difference. Rows are derived on demand and never stored.
type Row struct {
	Account     string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balance     decimal.Decimal
}

// Compute aggregates entries by account. Amounts accumulate in ledger
// insertion order; rows come back sorted ascending by account label so the
// result is deterministic. An empty ledger yields no rows. The grand total
// across rows is not checked: balance is a reporting view, not a validator.
func Compute(entries []model.JournalEntry) []Row {
	totals := make(map[string]*Row)
	for _, entry := range entries {
		row, ok := totals[entry.Account]
		if !ok {
			row = &Row{Account: entry.Account}
			totals[entry.Account] = row
		}
		row.TotalDebit = row.TotalDebit.Add(entry.Debit)
		row.TotalCredit = row.TotalCredit.Add(entry.Credit)
	}

	rows := make([]Row, 0, len(totals))
	for _, row := range totals {
		row.Balance = row.TotalDebit.Sub(row.TotalCredit)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Account < rows[j].Account })
	return rows
}

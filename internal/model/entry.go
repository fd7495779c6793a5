package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one single-sided posting line in the ledger. Entries are
// immutable once created: the posting engine builds them, appends them, and
// nothing modifies them afterwards.
type JournalEntry struct {
	ID          string
	User        string // username of the creator
	Company     string
	Department  string
	Account     string
	Date        time.Time
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

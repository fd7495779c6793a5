package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glbook-dev/glbook/internal/id"
	"github.com/glbook-dev/glbook/internal/model"
)

// SegmentChecker validates segment values against the chart of accounts.
type SegmentChecker interface {
	IsValidCompany(value string) bool
	IsValidDepartment(company, value string) bool
	IsValidAccount(value string) bool
}

// CompanyAuthorizer tests whether a user may post against a company.
type CompanyAuthorizer interface {
	IsAuthorized(username, company string) bool
}

// Engine validates and appends journal entries. The entry list is
// append-only; a posted entry is never mutated or removed.
type Engine struct {
	segments SegmentChecker
	authz    CompanyAuthorizer
	entries  []model.JournalEntry
}

// NewEngine creates a posting engine over an existing entry history.
func NewEngine(segments SegmentChecker, authz CompanyAuthorizer, entries []model.JournalEntry) *Engine {
	return &Engine{segments: segments, authz: authz, entries: entries}
}

// PostParams holds parameters for posting one journal line.
type PostParams struct {
	User        string
	Company     string
	Department  string
	Account     string
	Date        time.Time
	Description string
	Side        model.Side
	Amount      decimal.Decimal
}

// Post validates params and appends a single-sided journal entry. The checks
// run in a fixed order and the first failure wins; nothing is appended unless
// every check passes. The engine never creates an offsetting line: ledger
// balance is a reporting concern, not a posting-time invariant.
func (e *Engine) Post(params PostParams) (model.JournalEntry, error) {
	if params.Amount.IsNegative() {
		return model.JournalEntry{}, fmt.Errorf("amount %s: %w", params.Amount, model.ErrInvalidAmount)
	}

	if !e.authz.IsAuthorized(params.User, params.Company) {
		return model.JournalEntry{}, fmt.Errorf("user %q may not post to %q: %w",
			params.User, params.Company, model.ErrPermissionDenied)
	}

	if !e.segments.IsValidCompany(params.Company) {
		return model.JournalEntry{}, fmt.Errorf("company %q: %w", params.Company, model.ErrUnknownSegment)
	}
	if !e.segments.IsValidDepartment(params.Company, params.Department) {
		return model.JournalEntry{}, fmt.Errorf("department %q under %q: %w",
			params.Department, params.Company, model.ErrUnknownSegment)
	}
	if !e.segments.IsValidAccount(params.Account) {
		return model.JournalEntry{}, fmt.Errorf("account %q: %w", params.Account, model.ErrUnknownSegment)
	}

	entry := model.JournalEntry{
		ID:          id.NewEntryID(),
		User:        params.User,
		Company:     params.Company,
		Department:  params.Department,
		Account:     params.Account,
		Date:        params.Date,
		Description: params.Description,
	}
	switch params.Side {
	case model.SideDebit:
		entry.Debit = params.Amount
	case model.SideCredit:
		entry.Credit = params.Amount
	default:
		return model.JournalEntry{}, fmt.Errorf("side %q: %w", params.Side, model.ErrInvalidSide)
	}

	e.entries = append(e.entries, entry)
	return entry, nil
}

// Entries returns the full posting history in insertion order.
func (e *Engine) Entries() []model.JournalEntry {
	return e.entries
}

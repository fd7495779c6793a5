package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glbook-dev/glbook/internal/model"
)

// Header is the CSV header for ledger.csv.
const Header = "id,user,company,department,account,date,description,debit,credit"

const (
	numFields  = 9
	dateFormat = "2006-01-02"
	colID      = 0
	colUser    = 1
	colCompany = 2
	colDept    = 3
	colAccount = 4
	colDate    = 5
	colDesc    = 6
	colDebit   = 7
	colCredit  = 8
)

// ReadEntries reads all journal entries from a ledger.csv reader.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes entries to a ledger.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing ledger.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a JournalEntry to a CSV row ([]string).
func MarshalEntry(entry model.JournalEntry) []string {
	row := make([]string, numFields)
	row[colID] = entry.ID
	row[colUser] = entry.User
	row[colCompany] = entry.Company
	row[colDept] = entry.Department
	row[colAccount] = entry.Account
	row[colDate] = entry.Date.Format(dateFormat)
	row[colDesc] = entry.Description

	if !entry.Debit.IsZero() {
		row[colDebit] = entry.Debit.StringFixed(2)
	}
	if !entry.Credit.IsZero() {
		row[colCredit] = entry.Credit.StringFixed(2)
	}

	return row
}

// UnmarshalEntry converts a CSV row to a JournalEntry.
func UnmarshalEntry(record []string) (model.JournalEntry, error) {
	if len(record) != numFields {
		return model.JournalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.JournalEntry{
		ID:          record[colID],
		User:        record[colUser],
		Company:     record[colCompany],
		Department:  record[colDept],
		Account:     record[colAccount],
		Date:        date,
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
	}, nil
}

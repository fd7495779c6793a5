// Package book loads and saves the full session state of a ledger book:
// chart of accounts, security directory, and entry history. State is
// constructed explicitly at session start and serialized at session end;
// nothing here is ambient or global.
package book

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glbook-dev/glbook/internal/chart"
	"github.com/glbook-dev/glbook/internal/config"
	"github.com/glbook-dev/glbook/internal/ledger"
	"github.com/glbook-dev/glbook/internal/model"
	"github.com/glbook-dev/glbook/internal/security"
)

// ConfigFile is the name of the book configuration file.
const ConfigFile = "glbook.yaml"

// LedgerFile is the name of the journal entry file.
const LedgerFile = "ledger.csv"

// Book is the complete state of one ledger book.
type Book struct {
	Config  *config.Config
	Chart   *chart.Service
	Users   *security.Directory
	Entries []model.JournalEntry
}

// Load reads a book from its root directory. A missing ledger file means an
// empty history, not an error; the other files are required.
func Load(root string) (*Book, error) {
	cfg, err := config.Load(filepath.Join(root, ConfigFile))
	if err != nil {
		return nil, err
	}

	coa, err := chart.Load(root)
	if err != nil {
		return nil, err
	}

	users, err := security.Load(root)
	if err != nil {
		return nil, err
	}

	entries, err := readLedger(filepath.Join(root, LedgerFile))
	if err != nil {
		return nil, err
	}

	return &Book{Config: cfg, Chart: coa, Users: users, Entries: entries}, nil
}

// Save writes all book state back to the root directory.
func (b *Book) Save(root string) error {
	if err := config.Save(filepath.Join(root, ConfigFile), b.Config); err != nil {
		return err
	}
	if err := b.Chart.Save(root); err != nil {
		return err
	}
	if err := b.Users.Save(root); err != nil {
		return err
	}
	return b.SaveLedger(root)
}

// SaveLedger rewrites only the ledger file.
func (b *Book) SaveLedger(root string) error {
	f, err := os.Create(filepath.Join(root, LedgerFile))
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	defer f.Close()

	if err := ledger.WriteEntries(f, b.Entries); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

func readLedger(path string) ([]model.JournalEntry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	entries, err := ledger.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return entries, nil
}

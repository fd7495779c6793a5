package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glbook-dev/glbook/internal/model"
)

// Service holds the chart of accounts: the independent Company and Account
// segments plus the Department segment, which is dependent on Company. Values
// keep insertion order for display; mutations are all-or-nothing.
type Service struct {
	companies   []string
	departments map[string][]string // company -> departments, bucket per company
	accounts    []string
}

// NewService creates an empty chart.
func NewService() *Service {
	return &Service{departments: make(map[string][]string)}
}

// Load reads chart-of-accounts.csv from a book root and returns a Service.
func Load(bookRoot string) (*Service, error) {
	path := filepath.Join(bookRoot, "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	svc, err := ReadChart(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return svc, nil
}

// AddCompany appends a company value. The empty department bucket for the new
// company is created in the same step; no company exists without a bucket.
func (s *Service) AddCompany(value string) error {
	if s.IsValidCompany(value) {
		return fmt.Errorf("company %q: %w", value, model.ErrDuplicateValue)
	}
	s.companies = append(s.companies, value)
	s.departments[value] = []string{}
	return nil
}

// AddDepartment appends a department value under an existing company.
func (s *Service) AddDepartment(company, value string) error {
	if !s.IsValidCompany(company) {
		return fmt.Errorf("company %q: %w", company, model.ErrUnknownSegment)
	}
	if s.IsValidDepartment(company, value) {
		return fmt.Errorf("department %q under %q: %w", value, company, model.ErrDuplicateValue)
	}
	s.departments[company] = append(s.departments[company], value)
	return nil
}

// AddAccount appends an account value to the global account segment.
func (s *Service) AddAccount(value string) error {
	if s.IsValidAccount(value) {
		return fmt.Errorf("account %q: %w", value, model.ErrDuplicateValue)
	}
	s.accounts = append(s.accounts, value)
	return nil
}

// Companies returns all company values in insertion order.
func (s *Service) Companies() []string {
	return s.companies
}

// Accounts returns all account values in insertion order.
func (s *Service) Accounts() []string {
	return s.accounts
}

// DepartmentsFor returns the departments under a company in insertion order.
// An unknown company yields an empty slice, not an error.
func (s *Service) DepartmentsFor(company string) []string {
	return s.departments[company]
}

// IsValidCompany reports whether value is a current company.
func (s *Service) IsValidCompany(value string) bool {
	return contains(s.companies, value)
}

// IsValidDepartment reports whether value is a department under company.
func (s *Service) IsValidDepartment(company, value string) bool {
	return contains(s.departments[company], value)
}

// IsValidAccount reports whether value is a current account.
func (s *Service) IsValidAccount(value string) bool {
	return contains(s.accounts, value)
}

// Save writes the chart to <bookRoot>/chart-of-accounts.csv.
func (s *Service) Save(bookRoot string) error {
	path := filepath.Join(bookRoot, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteChart(f, s); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

package security

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glbook-dev/glbook/internal/model"
)

const (
	numFields = 4
	colUser   = 0
	colPass   = 1
	colComps  = 2 // semicolon-separated
	colAdmin  = 3
)

// ReadUsers reads users.csv.
func ReadUsers(r io.Reader) ([]model.User, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading users CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var users []model.User
	for i, rec := range records[1:] {
		u, err := UnmarshalUser(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		users = append(users, u)
	}
	return users, nil
}

// WriteUsers writes users.csv (including header).
func WriteUsers(w io.Writer, users []model.User) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"username", "password", "companies", "administrator"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, u := range users {
		if err := cw.Write(MarshalUser(u)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalUser converts a User to a CSV row.
func MarshalUser(u model.User) []string {
	row := make([]string, numFields)
	row[colUser] = u.Username
	row[colPass] = u.Password
	row[colComps] = strings.Join(u.Companies, ";")
	if u.Administrator {
		row[colAdmin] = "true"
	}
	return row
}

// UnmarshalUser converts a CSV row to a User.
func UnmarshalUser(record []string) (model.User, error) {
	if len(record) != numFields {
		return model.User{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var admin bool
	if record[colAdmin] != "" {
		var err error
		admin, err = strconv.ParseBool(record[colAdmin])
		if err != nil {
			return model.User{}, fmt.Errorf("parsing administrator %q: %w", record[colAdmin], err)
		}
	}

	var companies []string
	if record[colComps] != "" {
		companies = strings.Split(record[colComps], ";")
	}

	return model.User{
		Username:      record[colUser],
		Password:      record[colPass],
		Companies:     companies,
		Administrator: admin,
	}, nil
}

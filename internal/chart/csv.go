package chart

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/glbook-dev/glbook/internal/model"
)

// One row per segment value. The company column is filled only for
// department rows (the owning company); it is empty for the independent
// segments.
const (
	numFields  = 3
	colSegment = 0
	colCompany = 1
	colValue   = 2
)

// ReadChart reads chart-of-accounts.csv into a Service.
func ReadChart(r io.Reader) (*Service, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	svc := NewService()
	if len(records) == 0 {
		return svc, nil
	}

	// Skip header row. Rows replay through the Add methods so file order
	// becomes insertion order and invalid files are rejected.
	for i, rec := range records[1:] {
		var err error
		switch model.Segment(rec[colSegment]) {
		case model.SegmentCompany:
			err = svc.AddCompany(rec[colValue])
		case model.SegmentDepartment:
			err = svc.AddDepartment(rec[colCompany], rec[colValue])
		case model.SegmentAccount:
			err = svc.AddAccount(rec[colValue])
		default:
			err = fmt.Errorf("unknown segment %q", rec[colSegment])
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return svc, nil
}

// WriteChart writes a Service to chart-of-accounts.csv (including header).
func WriteChart(w io.Writer, s *Service) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"segment", "company", "value"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, c := range s.companies {
		if err := cw.Write([]string{string(model.SegmentCompany), "", c}); err != nil {
			return fmt.Errorf("writing company %q: %w", c, err)
		}
	}
	for _, c := range s.companies {
		for _, d := range s.departments[c] {
			if err := cw.Write([]string{string(model.SegmentDepartment), c, d}); err != nil {
				return fmt.Errorf("writing department %q: %w", d, err)
			}
		}
	}
	for _, a := range s.accounts {
		if err := cw.Write([]string{string(model.SegmentAccount), "", a}); err != nil {
			return fmt.Errorf("writing account %q: %w", a, err)
		}
	}
	return cw.Error()
}

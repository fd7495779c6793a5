package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbook-dev/glbook/internal/model"
)

func TestAddCompany(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))
	require.NoError(t, s.AddCompany("02 - Subsidiary"))

	assert.Equal(t, []string{"01 - MainCo", "02 - Subsidiary"}, s.Companies())
	assert.True(t, s.IsValidCompany("01 - MainCo"))
	assert.False(t, s.IsValidCompany("03 - NewCo"))
}

func TestAddCompany_Duplicate(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))

	err := s.AddCompany("01 - MainCo")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateValue)
	assert.Len(t, s.Companies(), 1, "failed add must leave the set unchanged")
}

func TestAddCompany_CreatesEmptyBucket(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))

	deps := s.DepartmentsFor("01 - MainCo")
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
}

func TestAddDepartment(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))
	require.NoError(t, s.AddDepartment("01 - MainCo", "01 - Finance"))
	require.NoError(t, s.AddDepartment("01 - MainCo", "02 - HR"))

	assert.Equal(t, []string{"01 - Finance", "02 - HR"}, s.DepartmentsFor("01 - MainCo"))
	assert.True(t, s.IsValidDepartment("01 - MainCo", "02 - HR"))
}

func TestAddDepartment_UnknownCompany(t *testing.T) {
	s := NewService()

	err := s.AddDepartment("99 - Ghost", "01 - Finance")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSegment)
}

func TestAddDepartment_Duplicate(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))
	require.NoError(t, s.AddDepartment("01 - MainCo", "01 - Finance"))

	err := s.AddDepartment("01 - MainCo", "01 - Finance")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateValue)
	assert.Len(t, s.DepartmentsFor("01 - MainCo"), 1)
}

func TestDepartmentScoping(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddCompany("01 - MainCo"))
	require.NoError(t, s.AddCompany("02 - Subsidiary"))

	// Textually identical labels live in separate buckets.
	require.NoError(t, s.AddDepartment("01 - MainCo", "01 - Finance"))
	require.NoError(t, s.AddDepartment("02 - Subsidiary", "01 - Finance"))

	assert.Equal(t, []string{"01 - Finance"}, s.DepartmentsFor("01 - MainCo"))
	assert.Equal(t, []string{"01 - Finance"}, s.DepartmentsFor("02 - Subsidiary"))
	assert.False(t, s.IsValidDepartment("01 - MainCo", "01 - Sales"))
}

func TestDepartmentsFor_UnknownCompany(t *testing.T) {
	s := NewService()
	assert.Empty(t, s.DepartmentsFor("99 - Ghost"), "lookup is tolerant, not an error")
}

func TestAddAccount(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddAccount("1000 - Cash"))
	require.NoError(t, s.AddAccount("4000 - Revenue"))

	assert.Equal(t, []string{"1000 - Cash", "4000 - Revenue"}, s.Accounts())
	assert.True(t, s.IsValidAccount("1000 - Cash"))
	assert.False(t, s.IsValidAccount("9999 - Unknown"))
}

func TestAddAccount_Duplicate(t *testing.T) {
	s := NewService()
	require.NoError(t, s.AddAccount("1000 - Cash"))

	err := s.AddAccount("1000 - Cash")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateValue)
	assert.Len(t, s.Accounts(), 1)
}

func TestReadsAreIdempotent(t *testing.T) {
	s := DefaultChart()

	first := s.DepartmentsFor("01 - MainCo")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, s.DepartmentsFor("01 - MainCo"))
		assert.True(t, s.IsValidCompany("01 - MainCo"))
		assert.True(t, s.IsValidAccount("1000 - Cash"))
	}
}

func TestDefaultChart(t *testing.T) {
	s := DefaultChart()

	assert.Len(t, s.Companies(), 2)
	assert.Len(t, s.Accounts(), 4)
	assert.Equal(t, []string{"01 - Finance", "02 - HR"}, s.DepartmentsFor("01 - MainCo"))
	assert.Equal(t, []string{"01 - Sales"}, s.DepartmentsFor("02 - Subsidiary"))
}

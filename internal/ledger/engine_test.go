package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbook-dev/glbook/internal/chart"
	"github.com/glbook-dev/glbook/internal/model"
	"github.com/glbook-dev/glbook/internal/security"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(chart.DefaultChart(), security.NewDirectory(security.DefaultUsers()), nil)
}

func validPost() PostParams {
	return PostParams{
		User:        "finance_user",
		Company:     "01 - MainCo",
		Department:  "01 - Finance",
		Account:     "1000 - Cash",
		Date:        date(2026, 8, 15),
		Description: "opening cash",
		Side:        model.SideDebit,
		Amount:      dec("100.00"),
	}
}

func TestPost_Debit(t *testing.T) {
	e := newEngine(t)

	entry, err := e.Post(validPost())
	require.NoError(t, err)

	assert.Len(t, entry.ID, 8)
	assert.Equal(t, "finance_user", entry.User)
	assert.True(t, entry.Debit.Equal(dec("100.00")))
	assert.True(t, entry.Credit.IsZero())
	require.Len(t, e.Entries(), 1)
}

func TestPost_Credit(t *testing.T) {
	e := newEngine(t)

	params := validPost()
	params.Account = "4000 - Revenue"
	params.Side = model.SideCredit
	entry, err := e.Post(params)
	require.NoError(t, err)

	assert.True(t, entry.Debit.IsZero())
	assert.True(t, entry.Credit.Equal(dec("100.00")))
}

func TestPost_SingleSided(t *testing.T) {
	e := newEngine(t)

	// Posting never creates an offsetting line.
	_, err := e.Post(validPost())
	require.NoError(t, err)
	require.Len(t, e.Entries(), 1)

	entry := e.Entries()[0]
	oneSide := entry.Debit.IsZero() != entry.Credit.IsZero()
	assert.True(t, oneSide, "exactly one of debit/credit must be non-zero")
}

func TestPost_NegativeAmount(t *testing.T) {
	e := newEngine(t)

	params := validPost()
	params.Amount = dec("-5.00")
	_, err := e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Empty(t, e.Entries())
}

func TestPost_ZeroAmount(t *testing.T) {
	e := newEngine(t)

	params := validPost()
	params.Amount = decimal.Zero
	entry, err := e.Post(params)
	require.NoError(t, err, "zero is a valid (if useless) amount")
	assert.True(t, entry.Debit.IsZero())
	assert.True(t, entry.Credit.IsZero())
}

func TestPost_Unauthorized(t *testing.T) {
	e := newEngine(t)

	// finance_user is scoped to MainCo only.
	params := validPost()
	params.Company = "02 - Subsidiary"
	params.Department = "01 - Sales"
	_, err := e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)
	assert.Empty(t, e.Entries())
}

func TestPost_AuthorizationBeforeSegments(t *testing.T) {
	e := newEngine(t)

	// Both the authorization and the segment check would fail here; the
	// authorization failure must win.
	params := validPost()
	params.User = "ghost"
	params.Company = "99 - Nowhere"
	_, err := e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)
}

func TestPost_UnknownSegments(t *testing.T) {
	dir := security.NewDirectory(security.DefaultUsers())
	require.NoError(t, dir.CreateUser("admin", "bob", "pw", []string{"99 - Nowhere", "01 - MainCo"}))
	e := NewEngine(chart.DefaultChart(), dir, nil)

	// Authorized but the company does not exist in the chart: the lazy
	// validation of pre-provisioned companies happens here.
	params := validPost()
	params.User = "bob"
	params.Company = "99 - Nowhere"
	_, err := e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSegment)
	assert.Contains(t, err.Error(), "99 - Nowhere")

	// Department from the wrong company's bucket.
	params = validPost()
	params.User = "bob"
	params.Department = "01 - Sales"
	_, err = e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSegment)
	assert.Contains(t, err.Error(), "01 - Sales")

	// Unknown account.
	params = validPost()
	params.User = "bob"
	params.Account = "9999 - Unknown"
	_, err = e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSegment)
	assert.Contains(t, err.Error(), "9999 - Unknown")

	assert.Empty(t, e.Entries(), "failed posts must not append")
}

func TestPost_InvalidSide(t *testing.T) {
	e := newEngine(t)

	params := validPost()
	params.Side = model.Side("both")
	_, err := e.Post(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidSide)
	assert.Empty(t, e.Entries())
}

func TestPost_UniqueIDs(t *testing.T) {
	e := newEngine(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		entry, err := e.Post(validPost())
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "duplicate entry ID %s", entry.ID)
		seen[entry.ID] = true
	}
	assert.Len(t, e.Entries(), 20)
}

func TestPost_AppendsToExistingHistory(t *testing.T) {
	existing := []model.JournalEntry{{ID: "aaaa0000", Account: "1000 - Cash", Debit: dec("1.00")}}
	e := NewEngine(chart.DefaultChart(), security.NewDirectory(security.DefaultUsers()), existing)

	_, err := e.Post(validPost())
	require.NoError(t, err)
	require.Len(t, e.Entries(), 2)
	assert.Equal(t, "aaaa0000", e.Entries()[0].ID, "history keeps insertion order")
}

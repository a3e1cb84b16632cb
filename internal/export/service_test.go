package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caixa/internal/export"
	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func sampleSnapshot() (ledger.Snapshot, uuid.UUID) {
	cb := uuid.New()
	other := uuid.New()
	cat := uuid.New()
	mode := uuid.New()

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{
			{ID: cb, Name: "Personal", Currency: "EUR"},
			{ID: other, Name: "Business", Currency: "USD"},
		},
		Categories: []ledger.Category{{ID: cat, Name: "Groceries"}},
		Modes:      []ledger.PaymentMode{{ID: mode, Name: "Card"}},
		Transactions: []ledger.Transaction{
			{ID: uuid.New(), CashbookID: cb, Type: ledger.TypeCashIn, Amount: decimal.NewFromInt(100), Description: "pay", CategoryID: cat, ModeID: mode, Date: day(1)},
			{ID: uuid.New(), CashbookID: cb, Type: ledger.TypeCashOut, Amount: decimal.RequireFromString("12.50"), Description: "food, \"fresh\"", CategoryID: cat, ModeID: mode, Date: day(10)},
			{ID: uuid.New(), CashbookID: other, Type: ledger.TypeCashOut, Amount: decimal.NewFromInt(5), CategoryID: cat, ModeID: mode, Date: day(20)},
		},
	}

	return snap, cb
}

func TestService_Rows(t *testing.T) {
	snap, cb := sampleSnapshot()
	svc := export.NewService()

	type testCase struct {
		name    string
		filter  export.Filter
		wantLen int
	}

	tests := []testCase{
		{
			name:    "All",
			filter:  export.Filter{},
			wantLen: 3,
		},
		{
			name:    "ByCashbook",
			filter:  export.Filter{CashbookID: &cb},
			wantLen: 2,
		},
		{
			name:    "ByDateRange",
			filter:  export.Filter{StartDate: new(day(5)), EndDate: new(day(15))},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := svc.Rows(snap, tt.filter)
			assert.Len(t, rows, tt.wantLen)
		})
	}
}

func TestService_Rows_Denormalizes(t *testing.T) {
	snap, cb := sampleSnapshot()
	svc := export.NewService()

	rows := svc.Rows(snap, export.Filter{CashbookID: &cb})
	require.Len(t, rows, 2)

	assert.Equal(t, "Personal", rows[0].Cashbook)
	assert.Equal(t, "EUR", rows[0].Currency)
	assert.Equal(t, "Groceries", rows[0].Category)
	assert.Equal(t, "Card", rows[0].Mode)
}

func TestService_CSV(t *testing.T) {
	snap, cb := sampleSnapshot()
	svc := export.NewService()

	var buf bytes.Buffer

	err := svc.CSV(&buf, svc.Rows(snap, export.Filter{CashbookID: &cb}))
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"date", "cashbook", "type", "amount", "currency", "description", "category", "mode"}, records[0])
	assert.Equal(t, []string{"2024-05-01", "Personal", "CASH_IN", "100.00", "EUR", "pay", "Groceries", "Card"}, records[1])

	// Quoting survives a roundtrip.
	assert.Equal(t, `food, "fresh"`, records[2][5])
}

func TestService_Spreadsheet(t *testing.T) {
	snap, cb := sampleSnapshot()
	svc := export.NewService()

	var buf bytes.Buffer

	err := svc.Spreadsheet(&buf, "Personal", svc.Rows(snap, export.Filter{CashbookID: &cb}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "<td>Personal</td>")
	assert.Contains(t, out, "food, &#34;fresh&#34;")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
}

func TestService_PDF_Totals(t *testing.T) {
	snap, cb := sampleSnapshot()
	svc := export.NewService()

	var buf bytes.Buffer

	err := svc.PDF(&buf, "Personal", svc.Rows(snap, export.Filter{CashbookID: &cb}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Personal - page 1 of 1")
	assert.Contains(t, out, "-12.50")
	assert.Contains(t, out, "cash in 100.00 | cash out 12.50 | net 87.50")
	assert.NotContains(t, out, "\f")
}

func TestService_PDF_Paginates(t *testing.T) {
	cb := uuid.New()

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{{ID: cb, Name: "Personal", Currency: "EUR"}},
	}

	for i := 0; i < 45; i++ {
		snap.Transactions = append(snap.Transactions, ledger.Transaction{
			ID: uuid.New(), CashbookID: cb, Type: ledger.TypeCashIn,
			Amount: decimal.NewFromInt(1), Date: day(1),
		})
	}

	svc := export.NewService()

	var buf bytes.Buffer

	err := svc.PDF(&buf, "Personal", svc.Rows(snap, export.Filter{}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Personal - page 1 of 2")
	assert.Contains(t, out, "Personal - page 2 of 2")
	assert.Equal(t, 1, strings.Count(out, "\f"))
	assert.Contains(t, out, "cash in 45.00 | cash out 0.00 | net 45.00")
}

func TestService_PDF_Empty(t *testing.T) {
	svc := export.NewService()

	var buf bytes.Buffer

	err := svc.PDF(&buf, "Personal", nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "page 1 of 1")
	assert.Contains(t, buf.String(), "cash in 0.00 | cash out 0.00 | net 0.00")
}

func TestCurrencyLabel(t *testing.T) {
	assert.Equal(t, "€", export.CurrencyLabel("EUR"))
	assert.Equal(t, "US$", export.CurrencyLabel("USD"))
	assert.Equal(t, "coins", export.CurrencyLabel("coins"))
}

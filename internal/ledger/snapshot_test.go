package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

func date(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestRecompute_BalanceInvariant(t *testing.T) {
	cbA := uuid.New()
	cbB := uuid.New()

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{
			{ID: cbA, Name: "Personal"},
			{ID: cbB, Name: "Business"},
		},
		Transactions: []ledger.Transaction{
			{ID: uuid.New(), CashbookID: cbA, Type: ledger.TypeCashIn, Amount: decimal.RequireFromString("4000.75"), Date: date(1)},
			{ID: uuid.New(), CashbookID: cbA, Type: ledger.TypeCashOut, Amount: decimal.RequireFromString("1200"), Date: date(2)},
			{ID: uuid.New(), CashbookID: cbB, Type: ledger.TypeCashOut, Amount: decimal.RequireFromString("50.25"), Date: date(3)},
		},
	}

	got := ledger.Recompute(snap)

	require.Len(t, got.Cashbooks, 2)
	assert.True(t, got.Cashbooks[0].Balance.Equal(decimal.RequireFromString("2800.75")),
		"got balance %s", got.Cashbooks[0].Balance)
	assert.True(t, got.Cashbooks[1].Balance.Equal(decimal.RequireFromString("-50.25")),
		"got balance %s", got.Cashbooks[1].Balance)

	require.NotNil(t, got.Cashbooks[0].LastActivity)
	assert.Equal(t, date(2), *got.Cashbooks[0].LastActivity)
}

func TestRecompute_Idempotent(t *testing.T) {
	cb := uuid.New()

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{{ID: cb, Name: "Personal"}},
		Transactions: []ledger.Transaction{
			{ID: uuid.New(), CashbookID: cb, Type: ledger.TypeCashIn, Amount: decimal.NewFromInt(10), Date: date(1)},
		},
	}

	once := ledger.Recompute(snap)
	twice := ledger.Recompute(once)

	assert.Equal(t, once, twice)
}

func TestRecompute_NoTransactionsKeepsPriorActivity(t *testing.T) {
	last := date(5)

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{
			{ID: uuid.New(), Name: "Idle", Balance: decimal.NewFromInt(99), LastActivity: &last},
		},
	}

	got := ledger.Recompute(snap)

	assert.True(t, got.Cashbooks[0].Balance.IsZero())
	require.NotNil(t, got.Cashbooks[0].LastActivity)
	assert.Equal(t, last, *got.Cashbooks[0].LastActivity)
}

func TestNormalize_RemapStability(t *testing.T) {
	raw := ledger.RawSnapshot{
		Cashbooks: []ledger.RawCashbook{
			{ID: "local-cb-1", Name: "Personal"},
		},
		Categories: []ledger.RawRecord{
			{ID: "local-cat-1", Name: "Rent"},
		},
		Modes: []ledger.RawRecord{
			{ID: "local-mode-1", Name: "Cash"},
		},
		Transactions: []ledger.RawTransaction{
			{
				ID:         "local-tx-1",
				CashbookID: "local-cb-1",
				Type:       ledger.TypeCashOut,
				Amount:     decimal.NewFromInt(700),
				CategoryID: "local-cat-1",
				ModeID:     "local-mode-1",
				Date:       date(1),
			},
			{
				ID:         "local-tx-2",
				CashbookID: "local-cb-1",
				Type:       ledger.TypeCashOut,
				Amount:     decimal.NewFromInt(30),
				CategoryID: "local-cat-1",
				ModeID:     "local-mode-1",
				Date:       date(2),
			},
		},
	}

	snap := ledger.Normalize(raw)

	require.Len(t, snap.Cashbooks, 1)
	require.Len(t, snap.Transactions, 2)

	cb := snap.Cashbooks[0]
	assert.NotEqual(t, uuid.Nil, cb.ID)
	assert.Equal(t, cb.ID, snap.Transactions[0].CashbookID)
	assert.Equal(t, cb.ID, snap.Transactions[1].CashbookID)
	assert.Equal(t, snap.Categories[0].ID, snap.Transactions[0].CategoryID)
	assert.Equal(t, snap.Modes[0].ID, snap.Transactions[1].ModeID)

	// Distinct source values map to distinct ids.
	assert.NotEqual(t, snap.Transactions[0].ID, snap.Transactions[1].ID)
}

func TestNormalize_KeepsCanonicalIDs(t *testing.T) {
	id := uuid.New()

	raw := ledger.RawSnapshot{
		Cashbooks: []ledger.RawCashbook{{ID: id.String(), Name: "Personal", Currency: "USD"}},
	}

	snap := ledger.Normalize(raw)

	require.Len(t, snap.Cashbooks, 1)
	assert.Equal(t, id, snap.Cashbooks[0].ID)
	assert.Equal(t, "USD", snap.Cashbooks[0].Currency)
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	last := date(1)

	snap := ledger.Snapshot{
		Cashbooks: []ledger.Cashbook{{ID: uuid.New(), Name: "Personal", LastActivity: &last}},
	}

	clone := snap.Clone()
	clone.Cashbooks[0].Name = "Changed"
	*clone.Cashbooks[0].LastActivity = date(9)

	assert.Equal(t, "Personal", snap.Cashbooks[0].Name)
	assert.Equal(t, date(1), *snap.Cashbooks[0].LastActivity)
}

func TestSnapshot_RawRoundtrip(t *testing.T) {
	cb := uuid.New()
	cat := uuid.New()
	mode := uuid.New()

	snap := ledger.Snapshot{
		Cashbooks:  []ledger.Cashbook{{ID: cb, Name: "Personal", Currency: "EUR", CreatedAt: date(1)}},
		Categories: []ledger.Category{{ID: cat, Name: "Rent"}},
		Modes:      []ledger.PaymentMode{{ID: mode, Name: "Cash"}},
		Transactions: []ledger.Transaction{
			{ID: uuid.New(), CashbookID: cb, Type: ledger.TypeCashOut, Amount: decimal.NewFromInt(700), CategoryID: cat, ModeID: mode, Date: date(2)},
		},
	}

	got := ledger.Normalize(snap.ToRaw())

	assert.Equal(t, snap.Cashbooks[0].ID, got.Cashbooks[0].ID)
	assert.Equal(t, snap.Transactions[0].CashbookID, got.Transactions[0].CashbookID)
	assert.True(t, snap.Transactions[0].Amount.Equal(got.Transactions[0].Amount))
}

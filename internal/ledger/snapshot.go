package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is an internally-consistent view of one scope's records.
// Published snapshots are deep copies; callers may hold them without
// observing later mutations.
type Snapshot struct {
	Cashbooks    []Cashbook
	Transactions []Transaction
	Categories   []Category
	Modes        []PaymentMode
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Cashbooks:    make([]Cashbook, len(s.Cashbooks)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Categories:   make([]Category, len(s.Categories)),
		Modes:        make([]PaymentMode, len(s.Modes)),
	}

	copy(out.Cashbooks, s.Cashbooks)
	copy(out.Transactions, s.Transactions)
	copy(out.Categories, s.Categories)
	copy(out.Modes, s.Modes)

	for i, cb := range out.Cashbooks {
		if cb.LastActivity != nil {
			t := *cb.LastActivity
			out.Cashbooks[i].LastActivity = &t
		}

		if cb.UpdatedAt != nil {
			t := *cb.UpdatedAt
			out.Cashbooks[i].UpdatedAt = &t
		}
	}

	return out
}

// Cashbook finds a cashbook by id.
func (s Snapshot) Cashbook(id uuid.UUID) (Cashbook, bool) {
	for _, cb := range s.Cashbooks {
		if cb.ID == id {
			return cb, true
		}
	}

	return Cashbook{}, false
}

// CategoryName resolves a category id to its name, or "" if unknown.
func (s Snapshot) CategoryName(id uuid.UUID) string {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name
		}
	}

	return ""
}

// ModeName resolves a payment-mode id to its name, or "" if unknown.
func (s Snapshot) ModeName(id uuid.UUID) string {
	for _, m := range s.Modes {
		if m.ID == id {
			return m.Name
		}
	}

	return ""
}

// Recompute returns a copy of the snapshot with every cashbook's Balance
// and LastActivity recalculated from the current transaction set. It is
// pure and idempotent: cashbooks with no transactions get a zero balance
// and keep their prior LastActivity.
func Recompute(s Snapshot) Snapshot {
	out := s.Clone()

	balances := make(map[uuid.UUID]decimal.Decimal, len(out.Cashbooks))
	latest := make(map[uuid.UUID]time.Time, len(out.Cashbooks))

	for _, tx := range out.Transactions {
		bal := balances[tx.CashbookID]

		switch tx.Type {
		case TypeCashIn:
			bal = bal.Add(tx.Amount)
		case TypeCashOut:
			bal = bal.Sub(tx.Amount)
		}

		balances[tx.CashbookID] = bal

		if last, ok := latest[tx.CashbookID]; !ok || tx.Date.After(last) {
			latest[tx.CashbookID] = tx.Date
		}
	}

	for i := range out.Cashbooks {
		id := out.Cashbooks[i].ID
		out.Cashbooks[i].Balance = balances[id]

		if last, ok := latest[id]; ok {
			out.Cashbooks[i].LastActivity = &last
		}
	}

	return out
}

// Raw record families as serialized into the local cache. Identifiers are
// strings because blobs written by earlier builds may carry locally
// fabricated, non-canonical ids.
type RawSnapshot struct {
	Cashbooks    []RawCashbook    `json:"cashbooks"`
	Transactions []RawTransaction `json:"transactions"`
	Categories   []RawRecord      `json:"categories"`
	Modes        []RawRecord      `json:"modes"`
}

type RawCashbook struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type RawRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RawTransaction struct {
	ID          string          `json:"id"`
	CashbookID  string          `json:"cashbook_id"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	ModeID      string          `json:"mode_id"`
	Date        time.Time       `json:"date"`
}

// ToRaw converts a snapshot into its cache representation.
func (s Snapshot) ToRaw() RawSnapshot {
	raw := RawSnapshot{
		Cashbooks:    make([]RawCashbook, len(s.Cashbooks)),
		Transactions: make([]RawTransaction, len(s.Transactions)),
		Categories:   make([]RawRecord, len(s.Categories)),
		Modes:        make([]RawRecord, len(s.Modes)),
	}

	for i, cb := range s.Cashbooks {
		raw.Cashbooks[i] = RawCashbook{
			ID:        cb.ID.String(),
			Name:      cb.Name,
			Currency:  cb.Currency,
			CreatedAt: cb.CreatedAt,
			UpdatedAt: cb.UpdatedAt,
		}
	}

	for i, tx := range s.Transactions {
		raw.Transactions[i] = RawTransaction{
			ID:          tx.ID.String(),
			CashbookID:  tx.CashbookID.String(),
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			CategoryID:  tx.CategoryID.String(),
			ModeID:      tx.ModeID.String(),
			Date:        tx.Date,
		}
	}

	for i, c := range s.Categories {
		raw.Categories[i] = RawRecord{ID: c.ID.String(), Name: c.Name}
	}

	for i, m := range s.Modes {
		raw.Modes[i] = RawRecord{ID: m.ID.String(), Name: m.Name}
	}

	return raw
}

// idMapper remaps non-canonical identifiers onto freshly generated UUIDs.
// Repeated occurrences of the same source value map to the same id, so
// cross-references between record families stay intact.
type idMapper struct {
	seen map[string]uuid.UUID
}

func newIDMapper() *idMapper {
	return &idMapper{seen: make(map[string]uuid.UUID)}
}

func (m *idMapper) canonical(raw string) uuid.UUID {
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}

	// Empty source ids carry no identity to preserve; every occurrence
	// gets a fresh id.
	if raw == "" {
		return uuid.New()
	}

	if id, ok := m.seen[raw]; ok {
		return id
	}

	id := uuid.New()
	m.seen[raw] = id

	return id
}

// Normalize converts raw records into a snapshot with canonical UUID
// identifiers. The remap table is scope-local to one call.
func Normalize(raw RawSnapshot) Snapshot {
	mapper := newIDMapper()

	snap := Snapshot{
		Cashbooks:    make([]Cashbook, len(raw.Cashbooks)),
		Transactions: make([]Transaction, len(raw.Transactions)),
		Categories:   make([]Category, len(raw.Categories)),
		Modes:        make([]PaymentMode, len(raw.Modes)),
	}

	for i, cb := range raw.Cashbooks {
		currency := cb.Currency
		if currency == "" {
			currency = DefaultCurrency
		}

		snap.Cashbooks[i] = Cashbook{
			ID:        mapper.canonical(cb.ID),
			Name:      cb.Name,
			Currency:  currency,
			CreatedAt: cb.CreatedAt,
			UpdatedAt: cb.UpdatedAt,
		}
	}

	for i, c := range raw.Categories {
		snap.Categories[i] = Category{ID: mapper.canonical(c.ID), Name: c.Name}
	}

	for i, m := range raw.Modes {
		snap.Modes[i] = PaymentMode{ID: mapper.canonical(m.ID), Name: m.Name}
	}

	for i, tx := range raw.Transactions {
		snap.Transactions[i] = Transaction{
			ID:          mapper.canonical(tx.ID),
			CashbookID:  mapper.canonical(tx.CashbookID),
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			CategoryID:  mapper.canonical(tx.CategoryID),
			ModeID:      mapper.canonical(tx.ModeID),
			Date:        tx.Date,
		}
	}

	return snap
}

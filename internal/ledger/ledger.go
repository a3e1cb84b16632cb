package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the direction of a transaction.
type Type string

const (
	TypeCashIn  Type = "CASH_IN"
	TypeCashOut Type = "CASH_OUT"
)

// Valid reports whether t is a known transaction direction.
func (t Type) Valid() bool {
	return t == TypeCashIn || t == TypeCashOut
}

// DefaultCurrency is used when a cashbook is created without one.
// Currency is a plain label; nothing at this layer validates it against
// an ISO list.
const DefaultCurrency = "EUR"

// Cashbook is a named ledger owned by one user. Balance and LastActivity
// are derived from the transaction set and recomputed after every mutation.
type Cashbook struct {
	ID           uuid.UUID
	Name         string
	Currency     string
	Balance      decimal.Decimal
	LastActivity *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Category tags transactions. Names are unique per owner, case-insensitive.
type Category struct {
	ID   uuid.UUID
	Name string
}

// PaymentMode follows the same shape and resolution rule as Category.
type PaymentMode struct {
	ID   uuid.UUID
	Name string
}

// Transaction is a single cash movement. Amount is always positive; the
// sign is carried by Type. CategoryID and ModeID hold resolved identifiers,
// never raw names.
type Transaction struct {
	ID          uuid.UUID
	CashbookID  uuid.UUID
	Type        Type
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	ModeID      uuid.UUID
	Date        time.Time
}

// Default catalog records seeded into a scope that has none.
var (
	DefaultCategories = []string{"Salary", "Groceries", "Rent", "Utilities", "Consulting"}
	DefaultModes      = []string{"Cash", "Bank Transfer", "Card", "Digital Wallet"}
)

var (
	// ErrNotFound is returned by every operation referencing an id with no
	// matching record in the current snapshot.
	ErrNotFound = errors.New("record not found")

	// ErrSuperseded is returned by a load whose scope changed before it
	// could publish, so its result was discarded.
	ErrSuperseded = errors.New("load superseded by scope change")
)

// ValidationError reports user input failing a precondition. It is
// surfaced before any state mutation occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// anonymousKey partitions the local cache for unauthenticated use.
const anonymousKey = "anonymous"

// Scope identifies whose records the engine operates on: an authenticated
// user id, or the fixed anonymous partition.
type Scope struct {
	userID    uuid.UUID
	anonymous bool
}

// Anonymous returns the scope backing onto the local durable cache.
func Anonymous() Scope {
	return Scope{anonymous: true}
}

// ForUser returns the scope of an authenticated owner.
func ForUser(id uuid.UUID) Scope {
	return Scope{userID: id}
}

func (s Scope) Authenticated() bool { return !s.anonymous }

// UserID is the owner identifier; only meaningful for authenticated scopes.
func (s Scope) UserID() uuid.UUID { return s.userID }

// CacheKey derives the local-cache key for this scope.
func (s Scope) CacheKey() string {
	if s.anonymous {
		return "snapshot/" + anonymousKey
	}

	return "snapshot/" + s.userID.String()
}

func (s Scope) String() string {
	if s.anonymous {
		return anonymousKey
	}

	return s.userID.String()
}

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=engine.go -destination=store_mock.go -package=ledger

// Store is the remote relational store the engine reconciles against.
// Every call is scoped by the owner identifier; implementations must never
// read or write another owner's rows.
type Store interface {
	ListCashbooks(ctx context.Context, owner uuid.UUID) ([]Cashbook, error)
	ListCategories(ctx context.Context, owner uuid.UUID) ([]Category, error)
	ListModes(ctx context.Context, owner uuid.UUID) ([]PaymentMode, error)
	ListTransactions(ctx context.Context, owner uuid.UUID) ([]Transaction, error)

	CreateCashbook(ctx context.Context, owner uuid.UUID, cb *Cashbook) error
	UpdateCashbook(ctx context.Context, owner uuid.UUID, cb *Cashbook) error
	DeleteCashbook(ctx context.Context, owner, id uuid.UUID) error

	UpsertCategory(ctx context.Context, owner uuid.UUID, c *Category) error
	DeleteCategory(ctx context.Context, owner, id uuid.UUID) error
	UpsertMode(ctx context.Context, owner uuid.UUID, m *PaymentMode) error
	DeleteMode(ctx context.Context, owner, id uuid.UUID) error

	CreateTransaction(ctx context.Context, owner uuid.UUID, tx *Transaction) error
	UpdateTransaction(ctx context.Context, owner uuid.UUID, tx *Transaction) error
	DeleteTransaction(ctx context.Context, owner, id uuid.UUID) error
	DeleteTransactionsByCashbook(ctx context.Context, owner, cashbookID uuid.UUID) error
	DeleteTransactionsByCategory(ctx context.Context, owner, categoryID uuid.UUID) error
	DeleteTransactionsByMode(ctx context.Context, owner, modeID uuid.UUID) error
}

// Cache is the local durable store backing anonymous scopes. Get reports
// absence via ok=false, not an error.
type Cache interface {
	Get(key string) (blob []byte, ok bool, err error)
	Set(key string, blob []byte) error
}

// RemoteFailure describes a best-effort remote write that failed after the
// local snapshot had already advanced. Failures are logged and published on
// Failures(); they are never retried or rolled back here.
type RemoteFailure struct {
	Op  string
	Err error
	At  time.Time
}

const (
	persistTimeout = 30 * time.Second
	failureBacklog = 64
)

// Engine holds the authoritative in-memory snapshot for one scope and
// applies mutations optimistically: validate, mutate memory, recompute
// derived fields, publish, then persist remotely in the background.
//
// Mutations are serialized by the engine's mutex; a published snapshot is
// always a deep copy.
type Engine struct {
	store  Store
	cache  Cache
	logger *slog.Logger

	mu    sync.RWMutex
	scope Scope
	gen   uint64
	snap  Snapshot
	subs  []chan Snapshot

	writes   sync.WaitGroup
	failures chan RemoteFailure
}

// New creates an engine with no scope loaded. store may be nil when the
// process only ever runs anonymously; cache may be nil when there is no
// local durability.
func New(store Store, cache Cache, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		store:    store,
		cache:    cache,
		logger:   logger,
		scope:    Anonymous(),
		failures: make(chan RemoteFailure, failureBacklog),
	}
}

// Scope returns the currently active scope.
func (e *Engine) Scope() Scope {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.scope
}

// Snapshot returns a deep copy of the current snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.snap.Clone()
}

// Watch returns a channel receiving a copy of every published snapshot.
// Slow receivers only ever see the most recent snapshot; intermediate ones
// are dropped.
func (e *Engine) Watch() <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	e.mu.Lock()
	e.subs = append(e.subs, ch)
	e.mu.Unlock()

	return ch
}

// Failures returns the feed of remote writes that failed after the local
// snapshot already advanced. Callers may surface or retry them; the engine
// will not.
func (e *Engine) Failures() <-chan RemoteFailure {
	return e.failures
}

// Flush blocks until all in-flight background writes complete. Call it
// before shutdown so pending persistence is not abandoned.
func (e *Engine) Flush() {
	e.writes.Wait()
}

// SetScope switches the engine to a new scope and loads its records:
// remote store for authenticated scopes, local cache otherwise. A read
// failure falls back to an empty snapshot so callers always have a
// renderable state. If the scope changes again while the load is running,
// the stale result is discarded and ErrSuperseded returned.
func (e *Engine) SetScope(ctx context.Context, scope Scope) (Snapshot, error) {
	e.mu.Lock()
	e.scope = scope
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	snap := e.load(ctx, scope)
	snap = e.seedDefaults(scope, snap)
	snap = Recompute(snap)

	e.mu.Lock()
	if e.gen != gen {
		e.mu.Unlock()
		return Snapshot{}, ErrSuperseded
	}

	e.snap = snap
	published := e.publishLocked()
	e.mu.Unlock()

	return published, nil
}

func (e *Engine) load(ctx context.Context, scope Scope) Snapshot {
	if !scope.Authenticated() {
		return e.loadCache(scope)
	}

	owner := scope.UserID()

	var (
		snap Snapshot
		err  error
	)

	if snap.Cashbooks, err = e.store.ListCashbooks(ctx, owner); err == nil {
		if snap.Categories, err = e.store.ListCategories(ctx, owner); err == nil {
			if snap.Modes, err = e.store.ListModes(ctx, owner); err == nil {
				snap.Transactions, err = e.store.ListTransactions(ctx, owner)
			}
		}
	}

	if err != nil {
		e.logger.Error("remote load failed, starting from empty snapshot",
			"scope", scope, "error", err)

		return Snapshot{}
	}

	return snap
}

func (e *Engine) loadCache(scope Scope) Snapshot {
	if e.cache == nil {
		return Snapshot{}
	}

	blob, ok, err := e.cache.Get(scope.CacheKey())
	if err != nil {
		e.logger.Error("local cache read failed, starting from empty snapshot",
			"scope", scope, "error", err)

		return Snapshot{}
	}

	if !ok {
		return Snapshot{}
	}

	var raw RawSnapshot
	if err := json.Unmarshal(blob, &raw); err != nil {
		e.logger.Error("local cache blob corrupt, starting from empty snapshot",
			"scope", scope, "error", err)

		return Snapshot{}
	}

	return Normalize(raw)
}

// seedDefaults inserts the fixed default categories and payment modes into
// a scope that has none. Remote inserts are best-effort upserts so a second
// load cannot duplicate them.
func (e *Engine) seedDefaults(scope Scope, snap Snapshot) Snapshot {
	if len(snap.Categories) == 0 {
		for _, name := range DefaultCategories {
			c := Category{ID: uuid.New(), Name: name}
			snap.Categories = append(snap.Categories, c)

			e.persist(scope, "seed category", func(ctx context.Context) error {
				return e.store.UpsertCategory(ctx, scope.UserID(), &c)
			})
		}
	}

	if len(snap.Modes) == 0 {
		for _, name := range DefaultModes {
			m := PaymentMode{ID: uuid.New(), Name: name}
			snap.Modes = append(snap.Modes, m)

			e.persist(scope, "seed payment mode", func(ctx context.Context) error {
				return e.store.UpsertMode(ctx, scope.UserID(), &m)
			})
		}
	}

	return snap
}

// publishLocked clones the snapshot, pushes it to subscribers and returns
// it. Callers must hold e.mu.
func (e *Engine) publishLocked() Snapshot {
	snap := e.snap.Clone()

	for _, ch := range e.subs {
		// Replace the pending snapshot rather than blocking on the receiver.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}

	e.saveCacheLocked()

	return snap
}

// saveCacheLocked mirrors the snapshot into the local cache for anonymous
// scopes. Failures are logged; local state has already advanced.
func (e *Engine) saveCacheLocked() {
	if e.cache == nil || e.scope.Authenticated() {
		return
	}

	blob, err := json.Marshal(e.snap.ToRaw())
	if err != nil {
		e.logger.Error("encoding snapshot for cache failed", "error", err)
		return
	}

	if err := e.cache.Set(e.scope.CacheKey(), blob); err != nil {
		e.logger.Error("local cache write failed", "error", err)
	}
}

// persist dispatches a fire-and-forget remote write for authenticated
// scopes. The local snapshot never waits on it; failures are logged and
// published on Failures().
func (e *Engine) persist(scope Scope, op string, fn func(context.Context) error) {
	if !scope.Authenticated() {
		return
	}

	e.writes.Add(1)

	go func() {
		defer e.writes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			e.logger.Error("remote write failed", "op", op, "scope", scope, "error", err)

			select {
			case e.failures <- RemoteFailure{Op: op, Err: err, At: time.Now()}:
			default:
				// Backlog full; the log line is the only trace left.
			}
		}
	}()
}

// CreateCashbook creates an empty cashbook. The name must be non-empty and
// unique for the owner. In the authenticated variant the remote insert is
// synchronous so a uniqueness violation propagates to the caller.
func (e *Engine) CreateCashbook(ctx context.Context, name, currency string) (Cashbook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Cashbook{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, cb := range e.snap.Cashbooks {
		if strings.EqualFold(cb.Name, name) {
			return Cashbook{}, &ValidationError{Field: "name", Reason: "already in use"}
		}
	}

	cb := Cashbook{
		ID:        uuid.New(),
		Name:      name,
		Currency:  currency,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}

	if e.scope.Authenticated() {
		if err := e.store.CreateCashbook(ctx, e.scope.UserID(), &cb); err != nil {
			return Cashbook{}, fmt.Errorf("creating cashbook: %w", err)
		}
	}

	e.snap.Cashbooks = append(e.snap.Cashbooks, cb)
	e.publishLocked()

	return cb, nil
}

// UpdateCashbookParams carries a partial cashbook update; nil fields are
// left untouched.
type UpdateCashbookParams struct {
	Name     *string
	Currency *string
}

// UpdateCashbook applies a partial field update. Renaming never touches
// the cashbook's transactions or derived fields. Supplying no recognized
// field is a no-op returning the current record.
func (e *Engine) UpdateCashbook(ctx context.Context, id uuid.UUID, params UpdateCashbookParams) (Cashbook, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1

	for i, cb := range e.snap.Cashbooks {
		if cb.ID == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return Cashbook{}, ErrNotFound
	}

	if params.Name == nil && params.Currency == nil {
		return e.snap.Cashbooks[idx], nil
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return Cashbook{}, &ValidationError{Field: "name", Reason: "must not be empty"}
		}

		for i, cb := range e.snap.Cashbooks {
			if i != idx && strings.EqualFold(cb.Name, name) {
				return Cashbook{}, &ValidationError{Field: "name", Reason: "already in use"}
			}
		}

		e.snap.Cashbooks[idx].Name = name
	}

	if params.Currency != nil {
		e.snap.Cashbooks[idx].Currency = *params.Currency
	}

	now := time.Now().UTC()
	e.snap.Cashbooks[idx].UpdatedAt = &now

	cb := e.snap.Cashbooks[idx]
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "update cashbook", func(ctx context.Context) error {
		return e.store.UpdateCashbook(ctx, scope.UserID(), &cb)
	})

	return cb, nil
}

// DeleteCashbook removes a cashbook and cascades to its transactions. The
// cascade completes before derived fields are recomputed.
func (e *Engine) DeleteCashbook(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.snap.Cashbook(id); !ok {
		return ErrNotFound
	}

	e.snap.Cashbooks = deleteFunc(e.snap.Cashbooks, func(cb Cashbook) bool {
		return cb.ID == id
	})
	e.snap.Transactions = deleteFunc(e.snap.Transactions, func(tx Transaction) bool {
		return tx.CashbookID == id
	})

	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "delete cashbook", func(ctx context.Context) error {
		if err := e.store.DeleteTransactionsByCashbook(ctx, scope.UserID(), id); err != nil {
			return err
		}

		return e.store.DeleteCashbook(ctx, scope.UserID(), id)
	})

	return nil
}

// TransactionInput is the user-facing shape of a new transaction. Category
// and Mode are raw names, resolved to canonical records on insertion.
type TransactionInput struct {
	Type        Type
	Amount      decimal.Decimal
	Description string
	Category    string
	Mode        string
	Date        time.Time
}

// AddTransaction records a cash movement against an existing cashbook.
// Category and payment mode are resolved (created if needed) before the
// transaction is constructed; in the authenticated variant a failed
// resolution blocks the insert.
func (e *Engine) AddTransaction(ctx context.Context, cashbookID uuid.UUID, in TransactionInput) (Transaction, error) {
	if !in.Type.Valid() {
		return Transaction{}, &ValidationError{Field: "type", Reason: "must be CASH_IN or CASH_OUT"}
	}

	if in.Amount.Sign() <= 0 {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.snap.Cashbook(cashbookID); !ok {
		return Transaction{}, ErrNotFound
	}

	cat, err := e.resolveLocked(ctx, recordKindCategory, in.Category)
	if err != nil {
		return Transaction{}, err
	}

	mode, err := e.resolveLocked(ctx, recordKindMode, in.Mode)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:          uuid.New(),
		CashbookID:  cashbookID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		CategoryID:  cat.ID,
		ModeID:      mode.ID,
		Date:        in.Date,
	}

	e.snap.Transactions = append(e.snap.Transactions, tx)
	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "create transaction", func(ctx context.Context) error {
		return e.store.CreateTransaction(ctx, scope.UserID(), &tx)
	})

	return tx, nil
}

// UpdateTransactionParams carries a partial transaction update; nil fields
// are left untouched. Category and Mode are raw names re-resolved on apply.
type UpdateTransactionParams struct {
	CashbookID  *uuid.UUID
	Type        *Type
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Mode        *string
	Date        *time.Time
}

// UpdateTransaction applies changed fields. Moving a transaction between
// cashbooks recomputes both; a failed category or payment-mode resolution
// fails the whole update with no state change.
func (e *Engine) UpdateTransaction(ctx context.Context, id uuid.UUID, params UpdateTransactionParams) (Transaction, error) {
	if params.Type != nil && !params.Type.Valid() {
		return Transaction{}, &ValidationError{Field: "type", Reason: "must be CASH_IN or CASH_OUT"}
	}

	if params.Amount != nil && params.Amount.Sign() <= 0 {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1

	for i, tx := range e.snap.Transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return Transaction{}, ErrNotFound
	}

	if params.CashbookID != nil {
		if _, ok := e.snap.Cashbook(*params.CashbookID); !ok {
			return Transaction{}, ErrNotFound
		}
	}

	// Resolution happens before any field is applied so a remote creation
	// failure leaves the transaction untouched.
	var cat, mode Resolution

	var err error

	if params.Category != nil {
		if cat, err = e.resolveLocked(ctx, recordKindCategory, *params.Category); err != nil {
			return Transaction{}, err
		}
	}

	if params.Mode != nil {
		if mode, err = e.resolveLocked(ctx, recordKindMode, *params.Mode); err != nil {
			return Transaction{}, err
		}
	}

	tx := &e.snap.Transactions[idx]

	if params.CashbookID != nil {
		tx.CashbookID = *params.CashbookID
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Category != nil {
		tx.CategoryID = cat.ID
	}

	if params.Mode != nil {
		tx.ModeID = mode.ID
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	updated := *tx
	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "update transaction", func(ctx context.Context) error {
		return e.store.UpdateTransaction(ctx, scope.UserID(), &updated)
	})

	return updated, nil
}

// DeleteTransaction removes a transaction and recomputes its cashbook.
func (e *Engine) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	found := false

	for _, tx := range e.snap.Transactions {
		if tx.ID == id {
			found = true
			break
		}
	}

	if !found {
		return ErrNotFound
	}

	e.snap.Transactions = deleteFunc(e.snap.Transactions, func(tx Transaction) bool {
		return tx.ID == id
	})

	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "delete transaction", func(ctx context.Context) error {
		return e.store.DeleteTransaction(ctx, scope.UserID(), id)
	})

	return nil
}

func deleteFunc[T any](s []T, del func(T) bool) []T {
	out := s[:0]

	for _, v := range s {
		if !del(v) {
			out = append(out, v)
		}
	}

	return out
}

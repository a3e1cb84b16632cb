package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type recordKind string

const (
	recordKindCategory recordKind = "category"
	recordKindMode     recordKind = "payment mode"
)

// Resolution is the outcome of find-or-create by name. Created reports
// whether a new record had to be inserted.
type Resolution struct {
	ID      uuid.UUID
	Name    string
	Created bool
}

// resolveLocked finds a category or payment mode by case-insensitive name
// match, creating it on miss. The caller holds e.mu. For authenticated
// scopes a creation hits the remote store synchronously: the dependent
// write stores the resolved identifier, so it must not proceed past a
// failed creation.
func (e *Engine) resolveLocked(ctx context.Context, kind recordKind, name string) (Resolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Resolution{}, &ValidationError{Field: string(kind), Reason: "must not be empty"}
	}

	switch kind {
	case recordKindCategory:
		for _, c := range e.snap.Categories {
			if strings.EqualFold(c.Name, name) {
				return Resolution{ID: c.ID, Name: c.Name}, nil
			}
		}

		c := Category{ID: uuid.New(), Name: name}

		if e.scope.Authenticated() {
			if err := e.store.UpsertCategory(ctx, e.scope.UserID(), &c); err != nil {
				return Resolution{}, fmt.Errorf("creating category %q: %w", name, err)
			}
		}

		e.snap.Categories = append(e.snap.Categories, c)

		return Resolution{ID: c.ID, Name: c.Name, Created: true}, nil

	case recordKindMode:
		for _, m := range e.snap.Modes {
			if strings.EqualFold(m.Name, name) {
				return Resolution{ID: m.ID, Name: m.Name}, nil
			}
		}

		m := PaymentMode{ID: uuid.New(), Name: name}

		if e.scope.Authenticated() {
			if err := e.store.UpsertMode(ctx, e.scope.UserID(), &m); err != nil {
				return Resolution{}, fmt.Errorf("creating payment mode %q: %w", name, err)
			}
		}

		e.snap.Modes = append(e.snap.Modes, m)

		return Resolution{ID: m.ID, Name: m.Name, Created: true}, nil
	}

	return Resolution{}, fmt.Errorf("unknown record kind %q", kind)
}

// AddCategory resolves a category by name, creating it if absent. Calling
// it twice with names differing only by case returns the same identifier
// and does not grow the collection.
func (e *Engine) AddCategory(ctx context.Context, name string) (Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.resolveLocked(ctx, recordKindCategory, name)
	if err != nil {
		return Resolution{}, err
	}

	if res.Created {
		e.publishLocked()
	}

	return res, nil
}

// AddPaymentMode resolves a payment mode by name, creating it if absent.
func (e *Engine) AddPaymentMode(ctx context.Context, name string) (Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.resolveLocked(ctx, recordKindMode, name)
	if err != nil {
		return Resolution{}, err
	}

	if res.Created {
		e.publishLocked()
	}

	return res, nil
}

// RemoveCategory deletes a category and cascades to every transaction
// referencing it, then recomputes the cashbooks that lost transactions.
// The cascade is deliberately lossy.
func (e *Engine) RemoveCategory(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	found := false

	for _, c := range e.snap.Categories {
		if c.ID == id {
			found = true
			break
		}
	}

	if !found {
		return ErrNotFound
	}

	e.snap.Categories = deleteFunc(e.snap.Categories, func(c Category) bool {
		return c.ID == id
	})
	e.snap.Transactions = deleteFunc(e.snap.Transactions, func(tx Transaction) bool {
		return tx.CategoryID == id
	})

	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "delete category", func(ctx context.Context) error {
		if err := e.store.DeleteTransactionsByCategory(ctx, scope.UserID(), id); err != nil {
			return err
		}

		return e.store.DeleteCategory(ctx, scope.UserID(), id)
	})

	return nil
}

// RemovePaymentMode deletes a payment mode with the same cascade policy as
// RemoveCategory.
func (e *Engine) RemovePaymentMode(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	found := false

	for _, m := range e.snap.Modes {
		if m.ID == id {
			found = true
			break
		}
	}

	if !found {
		return ErrNotFound
	}

	e.snap.Modes = deleteFunc(e.snap.Modes, func(m PaymentMode) bool {
		return m.ID == id
	})
	e.snap.Transactions = deleteFunc(e.snap.Transactions, func(tx Transaction) bool {
		return tx.ModeID == id
	})

	e.snap = Recompute(e.snap)
	scope := e.scope

	e.publishLocked()

	e.persist(scope, "delete payment mode", func(ctx context.Context) error {
		if err := e.store.DeleteTransactionsByMode(ctx, scope.UserID(), id); err != nil {
			return err
		}

		return e.store.DeleteMode(ctx, scope.UserID(), id)
	})

	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

// Store implements ledger.Store on Postgres. Every query carries the owner
// scope filter; rows of other owners are never read or written.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCashbookColumns = `id, name, currency, created_at, updated_at`

func scanCashbook(s scanner) (ledger.Cashbook, error) {
	var cb ledger.Cashbook

	if err := s.Scan(&cb.ID, &cb.Name, &cb.Currency, &cb.CreatedAt, &cb.UpdatedAt); err != nil {
		return ledger.Cashbook{}, err
	}

	// Balance and LastActivity are derived in memory, not stored.
	cb.Balance = decimal.Zero

	return cb, nil
}

func (s *Store) ListCashbooks(ctx context.Context, owner uuid.UUID) ([]ledger.Cashbook, error) {
	query := `SELECT ` + selectCashbookColumns + `
		FROM cashbooks
		WHERE owner_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing cashbooks: %w", err)
	}
	defer rows.Close()

	var cbs []ledger.Cashbook

	for rows.Next() {
		cb, err := scanCashbook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cashbook: %w", err)
		}

		cbs = append(cbs, cb)
	}

	return cbs, rows.Err()
}

func (s *Store) CreateCashbook(ctx context.Context, owner uuid.UUID, cb *ledger.Cashbook) error {
	query := `
		INSERT INTO cashbooks (id, name, currency, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query, cb.ID, cb.Name, cb.Currency, owner, cb.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating cashbook: %w", err)
	}

	return nil
}

func (s *Store) UpdateCashbook(ctx context.Context, owner uuid.UUID, cb *ledger.Cashbook) error {
	query := `
		UPDATE cashbooks
		SET name = $1, currency = $2, updated_at = NOW()
		WHERE id = $3 AND owner_id = $4
	`

	_, err := s.db.ExecContext(ctx, query, cb.Name, cb.Currency, cb.ID, owner)
	if err != nil {
		return fmt.Errorf("updating cashbook: %w", err)
	}

	return nil
}

func (s *Store) DeleteCashbook(ctx context.Context, owner, id uuid.UUID) error {
	query := `DELETE FROM cashbooks WHERE id = $1 AND owner_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting cashbook: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, owner uuid.UUID) ([]ledger.Category, error) {
	query := `SELECT id, name FROM categories WHERE owner_id = $1 ORDER BY LOWER(name) ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []ledger.Category

	for rows.Next() {
		var c ledger.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	return cats, rows.Err()
}

// UpsertCategory inserts a category, reusing the existing row on a
// case-insensitive name conflict. The resolved id is written back so the
// snapshot carries the remote identifier.
func (s *Store) UpsertCategory(ctx context.Context, owner uuid.UUID, c *ledger.Category) error {
	query := `
		INSERT INTO categories (id, name, owner_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, LOWER(name)) DO UPDATE SET name = categories.name
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, c.ID, c.Name, owner).Scan(&c.ID); err != nil {
		return fmt.Errorf("upserting category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, owner, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND owner_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

func (s *Store) ListModes(ctx context.Context, owner uuid.UUID) ([]ledger.PaymentMode, error) {
	query := `SELECT id, name FROM modes WHERE owner_id = $1 ORDER BY LOWER(name) ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing modes: %w", err)
	}
	defer rows.Close()

	var modes []ledger.PaymentMode

	for rows.Next() {
		var m ledger.PaymentMode
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scanning mode: %w", err)
		}

		modes = append(modes, m)
	}

	return modes, rows.Err()
}

func (s *Store) UpsertMode(ctx context.Context, owner uuid.UUID, m *ledger.PaymentMode) error {
	query := `
		INSERT INTO modes (id, name, owner_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, LOWER(name)) DO UPDATE SET name = modes.name
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, m.ID, m.Name, owner).Scan(&m.ID); err != nil {
		return fmt.Errorf("upserting mode: %w", err)
	}

	return nil
}

func (s *Store) DeleteMode(ctx context.Context, owner, id uuid.UUID) error {
	query := `DELETE FROM modes WHERE id = $1 AND owner_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting mode: %w", err)
	}

	return nil
}

const selectTransactionColumns = `id, cashbook_id, type, amount, description, category_id, mode_id, transaction_datetime`

func scanTransaction(s scanner) (ledger.Transaction, error) {
	var (
		tx      ledger.Transaction
		typeStr string
		date    time.Time
	)

	if err := s.Scan(
		&tx.ID, &tx.CashbookID, &typeStr, &tx.Amount, &tx.Description,
		&tx.CategoryID, &tx.ModeID, &date,
	); err != nil {
		return ledger.Transaction{}, err
	}

	tx.Type = ledger.Type(typeStr)
	tx.Date = date

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, owner uuid.UUID) ([]ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE recorded_by_user_id = $1
		ORDER BY transaction_datetime ASC`

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) CreateTransaction(ctx context.Context, owner uuid.UUID, tx *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (id, cashbook_id, type, amount, description, category_id, mode_id, transaction_datetime, recorded_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID, tx.CashbookID, tx.Type, tx.Amount, tx.Description,
		tx.CategoryID, tx.ModeID, tx.Date, owner,
	)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, owner uuid.UUID, tx *ledger.Transaction) error {
	query := `
		UPDATE transactions
		SET cashbook_id = $1, type = $2, amount = $3, description = $4,
			category_id = $5, mode_id = $6, transaction_datetime = $7
		WHERE id = $8 AND recorded_by_user_id = $9
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.CashbookID, tx.Type, tx.Amount, tx.Description,
		tx.CategoryID, tx.ModeID, tx.Date, tx.ID, owner,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, owner, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND recorded_by_user_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransactionsByCashbook(ctx context.Context, owner, cashbookID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE cashbook_id = $1 AND recorded_by_user_id = $2`

	_, err := s.db.ExecContext(ctx, query, cashbookID, owner)
	if err != nil {
		return fmt.Errorf("deleting transactions by cashbook: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransactionsByCategory(ctx context.Context, owner, categoryID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE category_id = $1 AND recorded_by_user_id = $2`

	_, err := s.db.ExecContext(ctx, query, categoryID, owner)
	if err != nil {
		return fmt.Errorf("deleting transactions by category: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransactionsByMode(ctx context.Context, owner, modeID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE mode_id = $1 AND recorded_by_user_id = $2`

	_, err := s.db.ExecContext(ctx, query, modeID, owner)
	if err != nil {
		return fmt.Errorf("deleting transactions by mode: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/category"
	"github.com/jmcardoso/penny/internal/recurring"
	"github.com/jmcardoso/penny/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListDue(ctx context.Context, now time.Time) ([]*category.Category, error) {
	query := `
		SELECT c.id, c.name, c.type, c.frequency, c.default_amount,
			c.is_active, c.last_processed_date, c.next_processed_date, c.created_by
		FROM categories c
		WHERE c.transaction_type = $1
			AND c.is_active
			AND c.next_processed_date <= $2
			AND c.created_by IS NOT NULL
	`

	rows, err := s.db.QueryContext(ctx, query, category.Recurring, now)
	if err != nil {
		return nil, fmt.Errorf("listing due categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		var freqStr sql.NullString

		if err := rows.Scan(
			&c.ID, &c.Name, &typeStr, &freqStr, &c.DefaultAmount,
			&c.IsActive, &c.LastProcessedDate, &c.NextProcessedDate, &c.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scanning due category: %w", err)
		}

		c.Type = category.Type(typeStr)
		c.TransactionType = category.Recurring
		c.IsRecurring = true

		if freqStr.Valid {
			f := category.Frequency(freqStr.String)
			c.Frequency = &f
		}

		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due category rows: %w", err)
	}

	return cats, nil
}

type processTx struct {
	tx *sql.Tx
}

func (s *Store) BeginProcess(ctx context.Context) (recurring.ProcessTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning process tx: %w", err)
	}

	return &processTx{tx: dbTx}, nil
}

func (p *processTx) Commit() error   { return p.tx.Commit() }
func (p *processTx) Rollback() error { return p.tx.Rollback() }

func (p *processTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, type, title, amount, category_id, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := p.tx.QueryRowContext(ctx, query,
		tx.UserID,
		tx.Type,
		tx.Title,
		tx.Amount,
		tx.CategoryID,
		tx.Description,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (p *processTx) AdvanceSchedule(ctx context.Context, categoryID uuid.UUID, last, next time.Time) error {
	query := `
		UPDATE categories
		SET last_processed_date = $1, next_processed_date = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := p.tx.ExecContext(ctx, query, last, next, categoryID)
	if err != nil {
		return fmt.Errorf("advancing schedule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking schedule update: %w", err)
	}

	if affected == 0 {
		return category.ErrNotFound
	}

	return nil
}

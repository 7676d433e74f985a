package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/category"
)

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

const selectCategoryColumns = `
	c.id, c.name, c.type, c.icon, c.color, c.description,
	c.transaction_type, c.is_recurring, c.frequency, c.default_amount,
	c.is_active, c.last_processed_date, c.next_processed_date,
	c.budget, c.is_default, c.created_by, c.created_at, c.updated_at
`

// scanCategory reads a category row in selectCategoryColumns order.
func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr, txTypeStr string

	var desc, icon, color, freqStr sql.NullString

	if err := s.Scan(
		&c.ID, &c.Name, &typeStr, &icon, &color, &desc,
		&txTypeStr, &c.IsRecurring, &freqStr, &c.DefaultAmount,
		&c.IsActive, &c.LastProcessedDate, &c.NextProcessedDate,
		&c.Budget, &c.IsDefault, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)
	c.TransactionType = category.TransactionType(txTypeStr)
	c.Icon = icon.String
	c.Color = color.String
	c.Description = desc.String

	if freqStr.Valid {
		f := category.Frequency(freqStr.String)
		c.Frequency = &f
	}

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (
			name, type, icon, color, description,
			transaction_type, is_recurring, frequency, default_amount,
			is_active, last_processed_date, next_processed_date,
			budget, is_default, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Type,
		c.Icon,
		c.Color,
		c.Description,
		c.TransactionType,
		c.IsRecurring,
		frequencyValue(c.Frequency),
		c.DefaultAmount,
		c.IsActive,
		c.LastProcessedDate,
		c.NextProcessedDate,
		c.Budget,
		c.IsDefault,
		c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories c WHERE c.id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, filter category.ListFilter) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories c WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.VisibleTo != nil {
		query += fmt.Sprintf(" AND (c.is_default OR c.created_by = $%d)", argIdx)

		args = append(args, *filter.VisibleTo)
		argIdx++
	}

	if filter.CreatedBy != nil {
		query += fmt.Sprintf(" AND c.created_by = $%d", argIdx)

		args = append(args, *filter.CreatedBy)
		argIdx++
	}

	if filter.IsDefault != nil {
		query += fmt.Sprintf(" AND c.is_default = $%d", argIdx)

		args = append(args, *filter.IsDefault)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND c.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	query += " ORDER BY c.name ASC"

	return s.queryCategories(ctx, query, args...)
}

func (s *Store) ListRecurring(ctx context.Context, filter category.RecurringFilter) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.transaction_type = $1 AND c.created_by = $2`

	args := []any{category.Recurring, filter.CreatedBy}
	argIdx := 3

	if filter.Type != nil {
		query += fmt.Sprintf(" AND c.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND c.is_active = $%d", argIdx)

		args = append(args, *filter.IsActive)
		argIdx++
	}

	query += " ORDER BY c.next_processed_date ASC"

	return s.queryCategories(ctx, query, args...)
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, icon = $3, color = $4, description = $5,
			transaction_type = $6, is_recurring = $7, frequency = $8, default_amount = $9,
			is_active = $10, last_processed_date = $11, next_processed_date = $12,
			budget = $13, updated_at = NOW()
		WHERE id = $14
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Type,
		c.Icon,
		c.Color,
		c.Description,
		c.TransactionType,
		c.IsRecurring,
		frequencyValue(c.Frequency),
		c.DefaultAmount,
		c.IsActive,
		c.LastProcessedDate,
		c.NextProcessedDate,
		c.Budget,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

func (s *Store) CountDefaults(ctx context.Context) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE is_default`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting default categories: %w", err)
	}

	return count, nil
}

func (s *Store) queryCategories(ctx context.Context, query string, args ...any) ([]*category.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

func frequencyValue(f *category.Frequency) any {
	if f == nil {
		return nil
	}

	return string(*f)
}

package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/category"
	"github.com/jmcardoso/penny/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	// ListDue returns active recurring categories whose nextProcessedDate
	// has passed.
	ListDue(ctx context.Context, now time.Time) ([]*category.Category, error)

	BeginProcess(ctx context.Context) (ProcessTx, error)
}

// ProcessTx is the atomic unit of work for one category: the generated
// transaction and the cursor advance commit together or not at all.
type ProcessTx interface {
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	AdvanceSchedule(ctx context.Context, categoryID uuid.UUID, last, next time.Time) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{repo: repo, now: now}
}

// ProcessDue runs one processing cycle: every due category generates exactly
// one transaction and has its schedule advanced. A category whose unit fails
// is logged and stays due for the next cycle; it never aborts the run.
//
// A category reactivated after a long pause still carries its stale cursor,
// so it catches up with a single transaction on the next run, not one per
// missed period.
func (s *Service) ProcessDue(ctx context.Context) error {
	now := s.now()

	due, err := s.repo.ListDue(ctx, now)
	if err != nil {
		return fmt.Errorf("listing due categories: %w", err)
	}

	var processed, failed int

	for _, c := range due {
		if err := s.processCategory(ctx, c, now); err != nil {
			slog.Error("processing recurring category", "category_id", c.ID, "error", err)

			failed++

			continue
		}

		processed++
	}

	slog.Info("recurring run complete", "due", len(due), "processed", processed, "failed", failed)

	return nil
}

func (s *Service) processCategory(ctx context.Context, c *category.Category, now time.Time) error {
	if c.CreatedBy == nil {
		return fmt.Errorf("category %q has no owner to attribute the transaction to", c.Name)
	}

	if c.Frequency == nil || c.DefaultAmount == nil {
		return fmt.Errorf("category %q is missing recurrence fields", c.Name)
	}

	itx, err := s.repo.BeginProcess(ctx)
	if err != nil {
		return fmt.Errorf("beginning process tx: %w", err)
	}
	defer itx.Rollback()

	tx := &transaction.Transaction{
		UserID:      *c.CreatedBy,
		Type:        transaction.Type(c.Type),
		Title:       c.Name,
		Amount:      *c.DefaultAmount,
		CategoryID:  c.ID,
		Description: "Recurring " + c.Name,
		Date:        now,
	}

	if err := itx.CreateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	next := category.NextDate(now, *c.Frequency)
	if err := itx.AdvanceSchedule(ctx, c.ID, now, next); err != nil {
		return fmt.Errorf("advancing schedule: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return fmt.Errorf("committing process tx: %w", err)
	}

	return nil
}

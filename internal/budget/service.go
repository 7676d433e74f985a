package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDates = errors.New("start date must be before end date")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Limit      int64
	StartDate  time.Time
	EndDate    time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	if !params.StartDate.Before(params.EndDate) {
		return nil, ErrInvalidDates
	}

	b := &Budget{
		UserID:     params.UserID,
		CategoryID: params.CategoryID,
		Limit:      params.Limit,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
	}

	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}

type UpdateParams struct {
	CategoryID *uuid.UUID
	Limit      *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams, userID uuid.UUID) (*Budget, error) {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}

	if params.CategoryID != nil {
		b.CategoryID = *params.CategoryID
	}

	if params.Limit != nil {
		b.Limit = *params.Limit
	}

	if params.StartDate != nil {
		b.StartDate = *params.StartDate
	}

	if params.EndDate != nil {
		b.EndDate = *params.EndDate
	}

	if !b.StartDate.Before(b.EndDate) {
		return nil, ErrInvalidDates
	}

	if err := s.repo.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != userID {
		return ErrPermissionDenied
	}

	return s.repo.DeleteBudget(ctx, id)
}

package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPermissionDenied = errors.New("permission denied")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      uuid.UUID
	Type        Type
	Title       string
	Amount      int64
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
}

type ListFilter struct {
	UserID     *uuid.UUID
	CategoryID *uuid.UUID
	Type       *Type
	StartDate  *time.Time
	EndDate    *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		UserID:      params.UserID,
		Type:        params.Type,
		Title:       params.Title,
		Amount:      params.Amount,
		CategoryID:  params.CategoryID,
		Description: params.Description,
		Date:        params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.UserID != userID {
		return nil, ErrPermissionDenied
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

type UpdateParams struct {
	Type        *Type
	Title       *string
	Amount      *int64
	CategoryID  *uuid.UUID
	Description *string
	Date        *time.Time
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams, userID uuid.UUID) (*Transaction, error) {
	tx, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.Title != nil {
		tx.Title = *params.Title
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.CategoryID != nil {
		tx.CategoryID = *params.CategoryID
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}

	return s.repo.DeleteTransaction(ctx, id)
}

// AdminDelete removes a transaction regardless of who owns it.
func (s *Service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetTransaction(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteTransaction(ctx, id)
}

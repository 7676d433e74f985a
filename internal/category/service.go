package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrPermissionDenied = errors.New("permission denied")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, filter ListFilter) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListRecurring(ctx context.Context, filter RecurringFilter) ([]*Category, error)
	CountDefaults(ctx context.Context) (int, error)
}

type ListFilter struct {
	// VisibleTo restricts results to default categories plus categories
	// created by this user.
	VisibleTo *uuid.UUID
	CreatedBy *uuid.UUID
	IsDefault *bool
	Type      *Type
}

type RecurringFilter struct {
	CreatedBy uuid.UUID
	Type      *Type
	IsActive  *bool
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

type CreateParams struct {
	Name            string
	Type            Type
	Icon            string
	Color           string
	Description     string
	TransactionType TransactionType
	Frequency       *Frequency
	DefaultAmount   *int64
	IsActive        *bool
	Budget          *int64
	IsDefault       bool
	CreatedBy       *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}

	if !params.Type.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "must be Income or Expense"}
	}

	if params.TransactionType == "" {
		params.TransactionType = OneTime
	}

	if !params.TransactionType.Valid() {
		return nil, &ValidationError{Field: "transactionType", Reason: "must be one-time or recurring"}
	}

	c := &Category{
		Name:            params.Name,
		Type:            params.Type,
		Icon:            params.Icon,
		Color:           params.Color,
		Description:     params.Description,
		TransactionType: params.TransactionType,
		Frequency:       params.Frequency,
		DefaultAmount:   params.DefaultAmount,
		IsActive:        true,
		Budget:          params.Budget,
		IsDefault:       params.IsDefault,
		CreatedBy:       params.CreatedBy,
	}

	if params.IsActive != nil {
		c.IsActive = *params.IsActive
	}

	if err := applyRecurrence(c, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Category, error) {
	return s.repo.ListCategories(ctx, filter)
}

func (s *Service) ListRecurring(ctx context.Context, filter RecurringFilter) ([]*Category, error) {
	return s.repo.ListRecurring(ctx, filter)
}

type UpdateParams struct {
	Name            *string
	Type            *Type
	Icon            *string
	Color           *string
	Description     *string
	TransactionType *TransactionType
	Frequency       *Frequency
	DefaultAmount   *int64
	IsActive        *bool
	Budget          *int64
}

// Update merges the partial update onto the stored category, re-runs the
// recurrence transition on the merged result and persists it. The caller must
// own the category or be an admin.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams, actor uuid.UUID, isAdmin bool) (*Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModify(c, actor, isAdmin) {
		return nil, ErrPermissionDenied
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, &ValidationError{Field: "name", Reason: "required"}
		}

		c.Name = *params.Name
	}

	if params.Type != nil {
		if !params.Type.Valid() {
			return nil, &ValidationError{Field: "type", Reason: "must be Income or Expense"}
		}

		c.Type = *params.Type
	}

	if params.Icon != nil {
		c.Icon = *params.Icon
	}

	if params.Color != nil {
		c.Color = *params.Color
	}

	if params.Description != nil {
		c.Description = *params.Description
	}

	if params.TransactionType != nil {
		if !params.TransactionType.Valid() {
			return nil, &ValidationError{Field: "transactionType", Reason: "must be one-time or recurring"}
		}

		c.TransactionType = *params.TransactionType
	}

	if params.Frequency != nil {
		c.Frequency = params.Frequency
	}

	if params.DefaultAmount != nil {
		c.DefaultAmount = params.DefaultAmount
	}

	if params.IsActive != nil {
		c.IsActive = *params.IsActive
	}

	if params.Budget != nil {
		c.Budget = params.Budget
	}

	if err := applyRecurrence(c, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID, isAdmin bool) error {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	if !canModify(c, actor, isAdmin) {
		return ErrPermissionDenied
	}

	return s.repo.DeleteCategory(ctx, id)
}

// EnsureDefaults seeds the shared default categories once, on first startup
// against an empty store.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.CountDefaults(ctx)
	if err != nil {
		return fmt.Errorf("counting default categories: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, seed := range defaultCategories {
		seed.IsDefault = true
		if _, err := s.Create(ctx, seed); err != nil {
			return fmt.Errorf("seeding category %q: %w", seed.Name, err)
		}
	}

	return nil
}

func canModify(c *Category, actor uuid.UUID, isAdmin bool) bool {
	if isAdmin {
		return true
	}

	return c.CreatedBy != nil && *c.CreatedBy == actor
}

package category_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardoso/penny/internal/category"
)

var testNow = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func freq(f category.Frequency) *category.Frequency { return &f }

func amount(cents int64) *int64 { return &cents }

func TestService_Create(t *testing.T) {
	owner := uuid.New()

	type testCase struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantField string
		check     func(t *testing.T, c *category.Category)
	}

	tests := []testCase{
		{
			name: "OneTime",
			params: category.CreateParams{
				Name:      "Groceries",
				Type:      category.TypeExpense,
				CreatedBy: &owner,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, c *category.Category) {
				assert.Equal(t, category.OneTime, c.TransactionType)
				assert.False(t, c.IsRecurring)
				assert.Nil(t, c.Frequency)
				assert.Nil(t, c.DefaultAmount)
				assert.Nil(t, c.LastProcessedDate)
				assert.Nil(t, c.NextProcessedDate)
				assert.True(t, c.IsActive)
			},
		},
		{
			name: "RecurringInitializesCursor",
			params: category.CreateParams{
				Name:            "Salary",
				Type:            category.TypeIncome,
				TransactionType: category.Recurring,
				Frequency:       freq(category.Monthly),
				DefaultAmount:   amount(500_00),
				CreatedBy:       &owner,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, c *category.Category) {
				assert.True(t, c.IsRecurring)
				require.NotNil(t, c.LastProcessedDate)
				require.NotNil(t, c.NextProcessedDate)
				assert.Equal(t, testNow, *c.LastProcessedDate)
				assert.Equal(t, testNow.AddDate(0, 1, 0), *c.NextProcessedDate)
			},
		},
		{
			name: "RecurringMissingFrequency",
			params: category.CreateParams{
				Name:            "Rent",
				Type:            category.TypeExpense,
				TransactionType: category.Recurring,
				DefaultAmount:   amount(900_00),
				CreatedBy:       &owner,
			},
			wantField: "frequency",
		},
		{
			name: "RecurringMissingAmount",
			params: category.CreateParams{
				Name:            "Rent",
				Type:            category.TypeExpense,
				TransactionType: category.Recurring,
				Frequency:       freq(category.Monthly),
				CreatedBy:       &owner,
			},
			wantField: "defaultAmount",
		},
		{
			name: "RecurringNonPositiveAmount",
			params: category.CreateParams{
				Name:            "Rent",
				Type:            category.TypeExpense,
				TransactionType: category.Recurring,
				Frequency:       freq(category.Monthly),
				DefaultAmount:   amount(0),
				CreatedBy:       &owner,
			},
			wantField: "defaultAmount",
		},
		{
			name: "MissingName",
			params: category.CreateParams{
				Type:      category.TypeExpense,
				CreatedBy: &owner,
			},
			wantField: "name",
		},
		{
			name: "InvalidType",
			params: category.CreateParams{
				Name:      "Stuff",
				Type:      category.Type("Other"),
				CreatedBy: &owner,
			},
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo, fixedClock)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantField != "" {
				var verr *category.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			tt.check(t, got)
		})
	}
}

func recurringCategory(owner uuid.UUID) *category.Category {
	last := testNow.AddDate(0, -1, 0)
	next := testNow.AddDate(0, 0, 14)

	return &category.Category{
		ID:                uuid.New(),
		Name:              "Salary",
		Type:              category.TypeIncome,
		TransactionType:   category.Recurring,
		IsRecurring:       true,
		Frequency:         freq(category.Monthly),
		DefaultAmount:     amount(500_00),
		IsActive:          true,
		LastProcessedDate: &last,
		NextProcessedDate: &next,
		CreatedBy:         &owner,
	}
}

func TestService_Update_TransitionToOneTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	existing := recurringCategory(owner)

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(nil)

	svc := category.NewService(repo, fixedClock)

	got, err := svc.Update(context.Background(), existing.ID, category.UpdateParams{
		TransactionType: ptr(category.OneTime),
	}, owner, false)
	require.NoError(t, err)

	assert.False(t, got.IsRecurring)
	assert.Nil(t, got.Frequency)
	assert.Nil(t, got.DefaultAmount)
	assert.Nil(t, got.LastProcessedDate)
	assert.Nil(t, got.NextProcessedDate)
}

func TestService_Update_KeepsCursorOnUnrelatedEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	existing := recurringCategory(owner)
	wantLast := *existing.LastProcessedDate
	wantNext := *existing.NextProcessedDate

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(nil)

	svc := category.NewService(repo, fixedClock)

	got, err := svc.Update(context.Background(), existing.ID, category.UpdateParams{
		DefaultAmount: amount(700_00),
		Frequency:     freq(category.Weekly),
	}, owner, false)
	require.NoError(t, err)

	assert.True(t, got.IsRecurring)
	require.NotNil(t, got.LastProcessedDate)
	require.NotNil(t, got.NextProcessedDate)
	assert.Equal(t, wantLast, *got.LastProcessedDate)
	assert.Equal(t, wantNext, *got.NextProcessedDate)
}

func TestService_Update_RecurringWithoutFrequency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	existing := &category.Category{
		ID:              uuid.New(),
		Name:            "Gym",
		Type:            category.TypeExpense,
		TransactionType: category.OneTime,
		IsActive:        true,
		CreatedBy:       &owner,
	}

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), existing.ID).Return(existing, nil)

	svc := category.NewService(repo, fixedClock)

	got, err := svc.Update(context.Background(), existing.ID, category.UpdateParams{
		TransactionType: ptr(category.Recurring),
		DefaultAmount:   amount(30_00),
	}, owner, false)

	var verr *category.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "frequency", verr.Field)
	assert.Nil(t, got)
}

func TestService_Update_PermissionDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	existing := recurringCategory(owner)

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), existing.ID).Return(existing, nil)

	svc := category.NewService(repo, fixedClock)

	_, err := svc.Update(context.Background(), existing.ID, category.UpdateParams{
		Name: ptr("Stolen"),
	}, uuid.New(), false)

	assert.ErrorIs(t, err, category.ErrPermissionDenied)
}

func TestService_EnsureDefaults(t *testing.T) {
	t.Run("SeedsWhenEmpty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().CountDefaults(gomock.Any()).Return(0, nil)
		repo.EXPECT().
			CreateCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *category.Category) error {
				assert.True(t, c.IsDefault)
				assert.Nil(t, c.CreatedBy)
				return nil
			}).
			MinTimes(1)

		svc := category.NewService(repo, fixedClock)
		require.NoError(t, svc.EnsureDefaults(context.Background()))
	})

	t.Run("SkipsWhenSeeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().CountDefaults(gomock.Any()).Return(12, nil)

		svc := category.NewService(repo, fixedClock)
		require.NoError(t, svc.EnsureDefaults(context.Background()))
	})

	t.Run("CountError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().CountDefaults(gomock.Any()).Return(0, errors.New("db error"))

		svc := category.NewService(repo, fixedClock)
		assert.Error(t, svc.EnsureDefaults(context.Background()))
	})
}

func ptr[T any](v T) *T { return &v }

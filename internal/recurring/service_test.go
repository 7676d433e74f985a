package recurring_test

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
	"github.com/jmcardoso/penny/internal/recurring"
	"github.com/jmcardoso/penny/internal/transaction"
)

var testNow = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func dueCategory(name string, f category.Frequency, cents int64) *category.Category {
	owner := uuid.New()
	last := testNow.AddDate(0, 0, -2)
	next := testNow.AddDate(0, 0, -1)

	return &category.Category{
		ID:                uuid.New(),
		Name:              name,
		Type:              category.TypeExpense,
		TransactionType:   category.Recurring,
		IsRecurring:       true,
		Frequency:         &f,
		DefaultAmount:     &cents,
		IsActive:          true,
		LastProcessedDate: &last,
		NextProcessedDate: &next,
		CreatedBy:         &owner,
	}
}

func TestService_ProcessDue_GeneratesTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	due := dueCategory("Netflix", category.Daily, 100_00)

	repo := recurring.NewMockRepository(ctrl)
	itx := recurring.NewMockProcessTx(ctrl)

	repo.EXPECT().ListDue(gomock.Any(), testNow).Return([]*category.Category{due}, nil)
	repo.EXPECT().BeginProcess(gomock.Any()).Return(itx, nil)

	itx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, *due.CreatedBy, tx.UserID)
			assert.Equal(t, due.ID, tx.CategoryID)
			assert.Equal(t, int64(100_00), tx.Amount)
			assert.Equal(t, transaction.TypeExpense, tx.Type)
			assert.Equal(t, "Netflix", tx.Title)
			assert.Equal(t, "Recurring Netflix", tx.Description)
			assert.Equal(t, testNow, tx.Date)

			tx.ID = uuid.New()

			return nil
		})
	itx.EXPECT().AdvanceSchedule(gomock.Any(), due.ID, testNow, testNow.AddDate(0, 0, 1)).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	svc := recurring.NewService(repo, fixedClock)
	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestService_ProcessDue_FailureIsolatedPerCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := dueCategory("Rent", category.Monthly, 900_00)
	healthy := dueCategory("Gym", category.Weekly, 30_00)

	repo := recurring.NewMockRepository(ctrl)
	brokenTx := recurring.NewMockProcessTx(ctrl)
	healthyTx := recurring.NewMockProcessTx(ctrl)

	repo.EXPECT().ListDue(gomock.Any(), testNow).Return([]*category.Category{broken, healthy}, nil)

	gomock.InOrder(
		repo.EXPECT().BeginProcess(gomock.Any()).Return(brokenTx, nil),
		repo.EXPECT().BeginProcess(gomock.Any()).Return(healthyTx, nil),
	)

	brokenTx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	brokenTx.EXPECT().Rollback().Return(nil)

	healthyTx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	healthyTx.EXPECT().AdvanceSchedule(gomock.Any(), healthy.ID, testNow, testNow.AddDate(0, 0, 7)).Return(nil)
	healthyTx.EXPECT().Commit().Return(nil)
	healthyTx.EXPECT().Rollback().Return(nil)

	svc := recurring.NewService(repo, fixedClock)
	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestService_ProcessDue_RollsBackWhenAdvanceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	due := dueCategory("Rent", category.Monthly, 900_00)

	repo := recurring.NewMockRepository(ctrl)
	itx := recurring.NewMockProcessTx(ctrl)

	repo.EXPECT().ListDue(gomock.Any(), testNow).Return([]*category.Category{due}, nil)
	repo.EXPECT().BeginProcess(gomock.Any()).Return(itx, nil)

	itx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().
		AdvanceSchedule(gomock.Any(), due.ID, testNow, testNow.AddDate(0, 1, 0)).
		Return(errors.New("update failed"))
	itx.EXPECT().Rollback().Return(nil)

	svc := recurring.NewService(repo, fixedClock)
	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestService_ProcessDue_NothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := recurring.NewMockRepository(ctrl)
	repo.EXPECT().ListDue(gomock.Any(), testNow).Return(nil, nil)

	svc := recurring.NewService(repo, fixedClock)
	require.NoError(t, svc.ProcessDue(context.Background()))
}

func TestService_ProcessDue_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := recurring.NewMockRepository(ctrl)
	repo.EXPECT().ListDue(gomock.Any(), testNow).Return(nil, errors.New("db down"))

	svc := recurring.NewService(repo, fixedClock)
	assert.Error(t, svc.ProcessDue(context.Background()))
}

func TestService_ProcessDue_SkipsOwnerlessCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	due := dueCategory("Salary", category.Monthly, 500_00)
	due.CreatedBy = nil

	repo := recurring.NewMockRepository(ctrl)
	repo.EXPECT().ListDue(gomock.Any(), testNow).Return([]*category.Category{due}, nil)

	svc := recurring.NewService(repo, fixedClock)
	require.NoError(t, svc.ProcessDue(context.Background()))
}

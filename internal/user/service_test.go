package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcardoso/penny/internal/user"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, user.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()

			return nil
		})

	svc := user.NewService(repo)

	got, err := svc.Register(context.Background(), user.RegisterParams{
		Email:     "new@example.com",
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, user.RoleUser, got.Role)
	assert.True(t, got.IsActive)
	assert.NotEqual(t, "hunter22", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("hunter22")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&user.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := user.NewService(repo)

	_, err := svc.Register(context.Background(), user.RegisterParams{
		Email:    "taken@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &user.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}{
		{
			name:     "Success",
			email:    "ada@example.com",
			password: "hunter22",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			email:    "ada@example.com",
			password: "hunter23",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "DeactivatedAccount",
			email:    "ada@example.com",
			password: "hunter22",
			setupMock: func(m *user.MockRepository) {
				frozen := *stored
				frozen.IsActive = false

				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(&frozen, nil)
			},
			wantErr: user.ErrDeactivated,
		},
		{
			name:     "UnknownEmail",
			email:    "ghost@example.com",
			password: "hunter22",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)

			got, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}

func TestService_Update_EmailUniqueness(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUser(gomock.Any(), id).
		Return(&user.User{ID: id, Email: "old@example.com"}, nil)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&user.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := user.NewService(repo)

	_, err := svc.Update(context.Background(), id, user.UpdateParams{
		Email: ptr("taken@example.com"),
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestService_Update_MergesFields(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUser(gomock.Any(), id).
		Return(&user.User{ID: id, Email: "ada@example.com", FirstName: "Ada"}, nil)
	repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "Augusta", u.FirstName)
			assert.Equal(t, "ada@example.com", u.Email)

			return nil
		})

	svc := user.NewService(repo)

	got, err := svc.Update(context.Background(), id, user.UpdateParams{
		FirstName: ptr("Augusta"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
}

func TestService_UpdateRole(t *testing.T) {
	id := uuid.New()

	t.Run("PromotesToAdmin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUser(gomock.Any(), id).
			Return(&user.User{ID: id, Role: user.RoleUser, IsActive: true}, nil)
		repo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, user.RoleAdmin, u.Role)

				return nil
			})

		svc := user.NewService(repo)

		got, err := svc.UpdateRole(context.Background(), id, user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, got.Role)
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := user.NewService(user.NewMockRepository(ctrl))

		_, err := svc.UpdateRole(context.Background(), id, user.Role("owner"))
		assert.Error(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().GetUser(gomock.Any(), id).Return(nil, user.ErrNotFound)

		svc := user.NewService(repo)

		_, err := svc.UpdateRole(context.Background(), id, user.RoleAdmin)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestService_SetActive(t *testing.T) {
	id := uuid.New()

	t.Run("Deactivates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUser(gomock.Any(), id).
			Return(&user.User{ID: id, IsActive: true}, nil)
		repo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.False(t, u.IsActive)

				return nil
			})

		svc := user.NewService(repo)

		require.NoError(t, svc.SetActive(context.Background(), id, false))
	})

	t.Run("Reactivates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUser(gomock.Any(), id).
			Return(&user.User{ID: id, IsActive: false}, nil)
		repo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.True(t, u.IsActive)

				return nil
			})

		svc := user.NewService(repo)

		require.NoError(t, svc.SetActive(context.Background(), id, true))
	})

	t.Run("AlreadyActive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUser(gomock.Any(), id).
			Return(&user.User{ID: id, IsActive: true}, nil)

		svc := user.NewService(repo)

		err := svc.SetActive(context.Background(), id, true)
		assert.ErrorIs(t, err, user.ErrAlreadyActive)
	})
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)

	svc := user.NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Run("SeedsWhenMissing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "admin@example.com").
			Return(nil, user.ErrNotFound)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, user.RoleAdmin, u.Role)
				assert.True(t, u.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))

				u.ID = uuid.New()

				return nil
			})

		svc := user.NewService(repo)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "hunter22"))
	})

	t.Run("SkipsExistingAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user.NewMockRepository(ctrl)
		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "admin@example.com").
			Return(&user.User{ID: uuid.New(), Email: "admin@example.com"}, nil)

		svc := user.NewService(repo)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "hunter22"))
	})
}

func ptr[T any](v T) *T { return &v }

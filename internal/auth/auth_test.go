package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcardoso/penny/internal/auth"
	"github.com/jmcardoso/penny/internal/user"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	u := &user.User{ID: uuid.New(), Role: user.RoleAdmin}

	token, err := tm.Issue(u)
	require.NoError(t, err)

	id, err := tm.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, user.RoleAdmin, id.Role)
	assert.True(t, id.IsAdmin())
}

func TestTokenManager_Expiry(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	token, err := tm.Issue(&user.User{ID: uuid.New(), Role: user.RoleUser})
	require.NoError(t, err)

	later := auth.NewTokenManager("secret", time.Hour, func() time.Time {
		return testNow.Add(2 * time.Hour)
	})

	_, err = later.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	token, err := tm.Issue(&user.User{ID: uuid.New(), Role: user.RoleUser})
	require.NoError(t, err)

	other := auth.NewTokenManager("different", time.Hour, fixedClock)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	_, err := tm.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthenticator(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	u := &user.User{ID: uuid.New(), Role: user.RoleUser}

	token, err := tm.Issue(u)
	require.NoError(t, err)

	handler := auth.Authenticator(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, u.ID, id.UserID)

		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "ValidToken",
			header:     "Bearer " + token,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "MissingHeader",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NotBearer",
			header:     "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "BadToken",
			header:     "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, fixedClock)

	adminToken, err := tm.Issue(&user.User{ID: uuid.New(), Role: user.RoleAdmin})
	require.NoError(t, err)

	userToken, err := tm.Issue(&user.User{ID: uuid.New(), Role: user.RoleUser})
	require.NoError(t, err)

	handler := auth.Authenticator(tm)(auth.RequireAdmin(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	)))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "Admin",
			token:      adminToken,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "RegularUser",
			token:      userToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

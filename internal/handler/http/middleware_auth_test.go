package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty token part",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "non-bearer scheme still yields second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{}})

	rr := executeAuth(h, "", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run without an Authorization header")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &stubAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuth(h, "Bearer expired", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run with an expired token")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	auth := &stubAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 1}, nil
		},
		getUserFn: func(_ context.Context, _ int64) (models.Principal, error) {
			return models.Principal{}, context.DeadlineExceeded
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuth(h, "Bearer valid", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run for a missing account")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_StoresIdentityInContext(t *testing.T) {
	auth := &stubAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
		getUserFn: func(_ context.Context, userID int64) (models.Principal, error) {
			return models.Principal{UserID: userID, Email: "viewer@example.com"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var gotUserID int64
	var gotEmail string
	rr := executeAuth(h, "Bearer valid-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotEmail, _ = utils.GetUserEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "viewer@example.com", gotEmail)
}

package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(ctx context.Context, credential string) (*models.Caller, error)

func (f resolverFunc) ResolveCaller(ctx context.Context, credential string) (*models.Caller, error) {
	return f(ctx, credential)
}

func newRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	farmer := &models.Caller{ID: uuid.New(), Role: models.RoleFarmer, Status: models.AccountStatusActive}

	resolver := resolverFunc(func(_ context.Context, credential string) (*models.Caller, error) {
		if credential == "good-token" {
			return farmer, nil
		}

		return nil, appErrors.UnauthorizedError("Invalid or expired token")
	})

	authMiddleware := middleware.NewAuthMiddleware(resolver)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.CallerFromContext(r.Context())
		require.True(t, ok, "caller should be in context")
		assert.Equal(t, farmer, caller)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer good-token",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Fail - No Bearer Prefix",
			authHeader:     "good-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Unknown Token",
			authHeader:     "Bearer stale-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(next).ServeHTTP(rr, newRequest(tc.authHeader))

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	buyer := &models.Caller{ID: uuid.New(), Role: models.RoleBuyer, Status: models.AccountStatusActive}

	authMiddleware := middleware.NewAuthMiddleware(resolverFunc(func(_ context.Context, credential string) (*models.Caller, error) {
		if credential == "buyer-token" {
			return buyer, nil
		}

		return nil, appErrors.UnauthorizedError("Invalid or expired token")
	}))

	t.Run("Success - Anonymous passes through", func(t *testing.T) {
		var sawCaller bool

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawCaller = middleware.CallerFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rr := httptest.NewRecorder()
		authMiddleware.OptionalAuthenticate(next).ServeHTTP(rr, newRequest(""))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.False(t, sawCaller)
	})

	t.Run("Success - Caller resolved", func(t *testing.T) {
		var got *models.Caller

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = middleware.CallerFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rr := httptest.NewRecorder()
		authMiddleware.OptionalAuthenticate(next).ServeHTTP(rr, newRequest("Bearer buyer-token"))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, buyer, got)
	})

	t.Run("Fail - Bad credential is not treated as anonymous", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})

		rr := httptest.NewRecorder()
		authMiddleware.OptionalAuthenticate(next).ServeHTTP(rr, newRequest("Bearer forged"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	adminOnly := middleware.RequireRole(models.RoleAdmin)(next)

	t.Run("Success - Admin", func(t *testing.T) {
		req := newRequest("")
		req = req.WithContext(middleware.WithCaller(req.Context(), &models.Caller{ID: uuid.New(), Role: models.RoleAdmin}))

		rr := httptest.NewRecorder()
		adminOnly.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Fail - Farmer", func(t *testing.T) {
		req := newRequest("")
		req = req.WithContext(middleware.WithCaller(req.Context(), &models.Caller{ID: uuid.New(), Role: models.RoleFarmer}))

		rr := httptest.NewRecorder()
		adminOnly.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Fail - No caller", func(t *testing.T) {
		rr := httptest.NewRecorder()
		adminOnly.ServeHTTP(rr, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var CallerContextKey = contextKey(uuid.New())

// CallerResolver turns a bearer credential into the caller it belongs to.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, credential string) (*models.Caller, error)
}

type AuthMiddleware struct {
	resolver CallerResolver
}

func NewAuthMiddleware(resolver CallerResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate rejects the request unless it carries a credential that resolves to a known account.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		credential, ok := bearerToken(authHeader)
		if !ok {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		caller, err := m.resolver.ResolveCaller(r.Context(), credential)
		if err != nil {
			logger.Warn("Caller resolution failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	}
}

// OptionalAuthenticate resolves the caller when a credential is present and
// lets anonymous requests through. A credential that fails to resolve is still an error.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		m.Authenticate(next).ServeHTTP(w, r)
	}
}

// RequireRole lets through only authenticated callers holding one of roles.
// It must run after Authenticate.
func RequireRole(roles ...models.Role) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			if !slices.Contains(roles, caller.Role) {
				LoggerFromContext(r.Context()).Warn("Role not permitted", slog.String("role", string(caller.Role)))
				response.Error(w, errors.ForbiddenError("You are not allowed to perform this action"))
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// WithCaller stores caller in ctx and tags the request logger with its id.
func WithCaller(ctx context.Context, caller *models.Caller) context.Context {
	ctx = context.WithValue(ctx, CallerContextKey, caller)

	logger := LoggerFromContext(ctx).With(slog.String("userId", caller.ID.String()), slog.String("role", string(caller.Role)))

	return WithLogger(ctx, logger)
}

func CallerFromContext(ctx context.Context) (*models.Caller, bool) {
	caller, ok := ctx.Value(CallerContextKey).(*models.Caller)

	return caller, ok && caller != nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
)

// AccountDirectory turns a bearer token into the caller it was issued to.
type AccountDirectory interface {
	ResolveCaller(ctx context.Context, credential string) (*models.Caller, error)
}

type accountDirectory struct {
	repo   repository.UserRepository
	cache  cache.Cache
	jwtKey []byte
	ttl    time.Duration
}

func NewAccountDirectory(repo repository.UserRepository, cache cache.Cache, security *config.Security, cacheCfg *config.Cache) AccountDirectory {
	return &accountDirectory{
		repo:   repo,
		cache:  cache,
		jwtKey: []byte(security.JWTKey),
		ttl:    cacheCfg.AccountTTL,
	}
}

// ResolveCaller verifies the token and loads the current role and status of
// the account, so a status change takes effect once the cached entry expires
// or is invalidated.
func (d *accountDirectory) ResolveCaller(ctx context.Context, credential string) (*models.Caller, error) {
	logger := middleware.LoggerFromContext(ctx)

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (any, error) {
		return d.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, appErrors.UnauthorizedError("Invalid or expired token").WithError(err)
	}

	key := cache.Key(cache.AccountKeyPrefix, claims.UserID)

	var cached models.Caller

	hit, err := d.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Account cache read failed", slog.String("error", err.Error()))
	}

	if hit {
		return &cached, nil
	}

	user, err := d.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Account no longer exists").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load account").WithError(err)
	}

	caller := &models.Caller{ID: user.ID, Role: user.Role, Status: user.Status}

	if err := d.cache.Set(ctx, key, caller, d.ttl); err != nil {
		logger.Warn("Account cache write failed", slog.String("error", err.Error()))
	}

	return caller, nil
}

package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/aaravmahajanofficial/agroconnect/internal/cache/mocks"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, method jwt.SigningMethod, userID uuid.UUID, expiresIn time.Duration) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(securityCfg.JWTKey))
	require.NoError(t, err)

	return token
}

func TestAccountDirectory_ResolveCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Loaded from store and cached", func(t *testing.T) {
		// Arrange
		repo := mocks.NewUserRepository(t)
		c := cacheMocks.NewCache(t)
		directory := service.NewAccountDirectory(repo, c, securityCfg, cacheCfg)

		user := &models.User{ID: uuid.New(), Role: models.RoleFarmer, Status: models.AccountStatusActive}
		key := cache.Key(cache.AccountKeyPrefix, user.ID)
		expected := &models.Caller{ID: user.ID, Role: models.RoleFarmer, Status: models.AccountStatusActive}

		c.On("Get", ctx, key, mock.AnythingOfType("*models.Caller")).Return(false, nil).Once()
		repo.On("GetUserByID", ctx, user.ID).Return(user, nil).Once()
		c.On("Set", ctx, key, expected, cacheCfg.AccountTTL).Return(nil).Once()

		// Act
		caller, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS256, user.ID, time.Hour))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, caller)
	})

	t.Run("Success - Served from cache", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		c := cacheMocks.NewCache(t)
		directory := service.NewAccountDirectory(repo, c, securityCfg, cacheCfg)

		id := uuid.New()

		c.On("Get", ctx, cache.Key(cache.AccountKeyPrefix, id), mock.AnythingOfType("*models.Caller")).Run(func(args mock.Arguments) {
			*args.Get(2).(*models.Caller) = models.Caller{ID: id, Role: models.RoleBuyer, Status: models.AccountStatusInactive}
		}).Return(true, nil).Once()

		caller, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS256, id, time.Hour))

		require.NoError(t, err)
		assert.Equal(t, models.AccountStatusInactive, caller.Status)
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Expired token", func(t *testing.T) {
		directory := service.NewAccountDirectory(mocks.NewUserRepository(t), cacheMocks.NewCache(t), securityCfg, cacheCfg)

		_, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS256, uuid.New(), -time.Minute))

		assertAppErrorCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Unexpected signing method", func(t *testing.T) {
		directory := service.NewAccountDirectory(mocks.NewUserRepository(t), cacheMocks.NewCache(t), securityCfg, cacheCfg)

		_, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS512, uuid.New(), time.Hour))

		assertAppErrorCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Garbage credential", func(t *testing.T) {
		directory := service.NewAccountDirectory(mocks.NewUserRepository(t), cacheMocks.NewCache(t), securityCfg, cacheCfg)

		_, err := directory.ResolveCaller(ctx, "not-a-jwt")

		assertAppErrorCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Account deleted after token issued", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		c := cacheMocks.NewCache(t)
		directory := service.NewAccountDirectory(repo, c, securityCfg, cacheCfg)
		id := uuid.New()

		c.On("Get", ctx, mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.On("GetUserByID", ctx, id).Return(nil, sql.ErrNoRows).Once()

		_, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS256, id, time.Hour))

		assertAppErrorCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Failure - Store unavailable", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		c := cacheMocks.NewCache(t)
		directory := service.NewAccountDirectory(repo, c, securityCfg, cacheCfg)
		id := uuid.New()

		c.On("Get", ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("GetUserByID", ctx, id).Return(nil, errors.New("connection refused")).Once()

		_, err := directory.ResolveCaller(ctx, signToken(t, jwt.SigningMethodHS256, id, time.Hour))

		assertAppErrorCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

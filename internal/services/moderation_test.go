package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	cacheMocks "github.com/aaravmahajanofficial/agroconnect/internal/cache/mocks"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/aaravmahajanofficial/agroconnect/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModerationService(t *testing.T) (service.ModerationService, *mocks.CommodityRepository, *cacheMocks.Cache) {
	repo := mocks.NewCommodityRepository(t)
	c := cacheMocks.NewCache(t)

	return service.NewModerationService(repo, c), repo, c
}

func expectWrite(repo *mocks.CommodityRepository, c *cacheMocks.Cache, commodity *models.Commodity, status models.CommodityStatus, reason string) {
	version := commodity.Version

	repo.On("UpdateCommodity", mock.Anything, mock.MatchedBy(func(updated *models.Commodity) bool {
		return updated.ID == commodity.ID && updated.Status == status && updated.RejectionReason == reason
	}), version).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Commodity).Version = version + 1
	}).Return(nil).Once()
	c.On("SetIfNewer", mock.Anything, cache.Key(cache.CommodityKeyPrefix, commodity.ID), mock.MatchedBy(func(entry cache.Entry[models.Commodity]) bool {
		return !entry.Deleted() && entry.Value.Status == status && entry.Version == version+1
	}), version+1, time.Duration(0)).Return(true, nil).Once()
}

func TestModerationService_Approve(t *testing.T) {
	ctx := context.Background()
	admin := activeCaller(models.RoleAdmin)
	owner := uuid.New()

	t.Run("Success - Pending to approved", func(t *testing.T) {
		// Arrange
		moderationService, repo, c := newModerationService(t)
		pending := sampleCommodity(owner, models.CommodityStatusPending)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()
		expectWrite(repo, c, pending, models.CommodityStatusApproved, "")

		// Act
		commodity, err := moderationService.Approve(ctx, admin, pending.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusApproved, commodity.Status)
		assert.Equal(t, int64(4), commodity.Version)
	})

	t.Run("Success - Rejected to approved clears reason", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		rejected := sampleCommodity(owner, models.CommodityStatusRejected)

		repo.On("GetCommodityByID", mock.Anything, rejected.ID).Return(rejected, nil).Once()
		expectWrite(repo, c, rejected, models.CommodityStatusApproved, "")

		commodity, err := moderationService.Approve(ctx, admin, rejected.ID)

		require.NoError(t, err)
		assert.Empty(t, commodity.RejectionReason)
	})

	t.Run("Success - Already approved writes nothing", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		approved := sampleCommodity(owner, models.CommodityStatusApproved)

		repo.On("GetCommodityByID", mock.Anything, approved.ID).Return(approved, nil).Once()

		commodity, err := moderationService.Approve(ctx, admin, approved.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), commodity.Version)
		repo.AssertNotCalled(t, "UpdateCommodity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Farmer cannot moderate own record", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		farmer := activeCaller(models.RoleFarmer)

		commodity, err := moderationService.Approve(ctx, farmer, uuid.New())

		assert.Nil(t, commodity)
		assertAppErrorCode(t, err, appErrors.ErrCodeForbidden)
		repo.AssertNotCalled(t, "GetCommodityByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Inactive admin", func(t *testing.T) {
		moderationService, _, _ := newModerationService(t)
		inactive := &models.Caller{ID: uuid.New(), Role: models.RoleAdmin, Status: models.AccountStatusInactive}

		_, err := moderationService.Approve(ctx, inactive, uuid.New())

		assertAppErrorCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Unknown commodity", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		id := uuid.New()

		repo.On("GetCommodityByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		_, err := moderationService.Approve(ctx, admin, id)

		assertAppErrorCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Lost race with another moderator", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		pending := sampleCommodity(owner, models.CommodityStatusPending)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()
		repo.On("UpdateCommodity", mock.Anything, mock.Anything, int64(3)).Return(repository.ErrVersionConflict).Once()

		_, err := moderationService.Approve(ctx, admin, pending.ID)

		assertAppErrorCode(t, err, appErrors.ErrCodeConflict)
	})
}

func TestModerationService_Reject(t *testing.T) {
	ctx := context.Background()
	admin := activeCaller(models.RoleAdmin)
	owner := uuid.New()

	t.Run("Success - Approved to rejected", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		approved := sampleCommodity(owner, models.CommodityStatusApproved)

		repo.On("GetCommodityByID", mock.Anything, approved.ID).Return(approved, nil).Once()
		expectWrite(repo, c, approved, models.CommodityStatusRejected, "Image does not match product")

		commodity, err := moderationService.Reject(ctx, admin, approved.ID, "  Image does not match product ")

		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusRejected, commodity.Status)
		assert.Equal(t, "Image does not match product", commodity.RejectionReason)
	})

	t.Run("Success - Re-reject replaces reason", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		rejected := sampleCommodity(owner, models.CommodityStatusRejected)

		repo.On("GetCommodityByID", mock.Anything, rejected.ID).Return(rejected, nil).Once()
		expectWrite(repo, c, rejected, models.CommodityStatusRejected, "Wrong category")

		commodity, err := moderationService.Reject(ctx, admin, rejected.ID, "Wrong category")

		require.NoError(t, err)
		assert.Equal(t, "Wrong category", commodity.RejectionReason)
	})

	t.Run("Failure - Blank reason", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		pending := sampleCommodity(owner, models.CommodityStatusPending)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()

		commodity, err := moderationService.Reject(ctx, admin, pending.ID, "   ")

		assert.Nil(t, commodity)
		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
		assert.Equal(t, models.CommodityStatusPending, pending.Status)
		repo.AssertNotCalled(t, "UpdateCommodity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestModerationService_RevertToPending(t *testing.T) {
	ctx := context.Background()
	admin := activeCaller(models.RoleAdmin)

	t.Run("Success - Approved back to pending", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		approved := sampleCommodity(uuid.New(), models.CommodityStatusApproved)

		repo.On("GetCommodityByID", mock.Anything, approved.ID).Return(approved, nil).Once()
		expectWrite(repo, c, approved, models.CommodityStatusPending, "")

		commodity, err := moderationService.RevertToPending(ctx, admin, approved.ID)

		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusPending, commodity.Status)
	})

	t.Run("Success - Pending stays pending", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		pending := sampleCommodity(uuid.New(), models.CommodityStatusPending)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()

		commodity, err := moderationService.RevertToPending(ctx, admin, pending.ID)

		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusPending, commodity.Status)
		repo.AssertNotCalled(t, "UpdateCommodity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestModerationService_Moderate(t *testing.T) {
	ctx := context.Background()
	admin := activeCaller(models.RoleAdmin)

	t.Run("Success - Status field", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		pending := sampleCommodity(uuid.New(), models.CommodityStatusPending)
		status := models.CommodityStatusRejected
		version := int64(3)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()
		expectWrite(repo, c, pending, models.CommodityStatusRejected, "Duplicate listing")

		commodity, err := moderationService.Moderate(ctx, admin, pending.ID, &models.ModerationRequest{
			Status:  &status,
			Reason:  "Duplicate listing",
			Version: &version,
		})

		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusRejected, commodity.Status)
	})

	t.Run("Success - Action field", func(t *testing.T) {
		moderationService, repo, c := newModerationService(t)
		pending := sampleCommodity(uuid.New(), models.CommodityStatusPending)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()
		expectWrite(repo, c, pending, models.CommodityStatusApproved, "")

		commodity, err := moderationService.Moderate(ctx, admin, pending.ID, &models.ModerationRequest{Action: models.ModerationApprove})

		require.NoError(t, err)
		assert.Equal(t, models.CommodityStatusApproved, commodity.Status)
	})

	t.Run("Failure - Stale version", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		pending := sampleCommodity(uuid.New(), models.CommodityStatusPending)
		seen := int64(1)

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()

		_, err := moderationService.Moderate(ctx, admin, pending.ID, &models.ModerationRequest{Action: models.ModerationApprove, Version: &seen})

		assertAppErrorCode(t, err, appErrors.ErrCodeConflict)
	})

	t.Run("Failure - Unknown status value", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)
		pending := sampleCommodity(uuid.New(), models.CommodityStatusPending)
		status := models.CommodityStatus("archived")

		repo.On("GetCommodityByID", mock.Anything, pending.ID).Return(pending, nil).Once()

		_, err := moderationService.Moderate(ctx, admin, pending.ID, &models.ModerationRequest{Status: &status})

		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Neither action nor status", func(t *testing.T) {
		moderationService, repo, _ := newModerationService(t)

		_, err := moderationService.Moderate(ctx, admin, uuid.New(), &models.ModerationRequest{})

		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
		repo.AssertNotCalled(t, "GetCommodityByID", mock.Anything, mock.Anything)
	})
}

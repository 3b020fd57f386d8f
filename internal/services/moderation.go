package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/metrics"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/policy"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ModerationService interface {
	Approve(ctx context.Context, caller *models.Caller, id uuid.UUID) (*models.Commodity, error)
	Reject(ctx context.Context, caller *models.Caller, id uuid.UUID, reason string) (*models.Commodity, error)
	RevertToPending(ctx context.Context, caller *models.Caller, id uuid.UUID) (*models.Commodity, error)
	Moderate(ctx context.Context, caller *models.Caller, id uuid.UUID, req *models.ModerationRequest) (*models.Commodity, error)
}

type moderationService struct {
	repo  repository.CommodityRepository
	cache commodityCache
}

// NewModerationService stores moderated records with the cache default TTL.
func NewModerationService(repo repository.CommodityRepository, cache cache.Cache) ModerationService {
	return &moderationService{repo: repo, cache: commodityCache{cache: cache}}
}

// Approve is a no-op on an already approved record: nothing is written and
// the record comes back unchanged.
func (s *moderationService) Approve(ctx context.Context, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
	return s.transition(ctx, caller, id, models.CommodityStatusApproved, "", nil)
}

func (s *moderationService) Reject(ctx context.Context, caller *models.Caller, id uuid.UUID, reason string) (*models.Commodity, error) {
	return s.transition(ctx, caller, id, models.CommodityStatusRejected, reason, nil)
}

func (s *moderationService) RevertToPending(ctx context.Context, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
	return s.transition(ctx, caller, id, models.CommodityStatusPending, "", nil)
}

func (s *moderationService) Moderate(ctx context.Context, caller *models.Caller, id uuid.UUID, req *models.ModerationRequest) (*models.Commodity, error) {
	var target models.CommodityStatus

	switch {
	case req.Action != "":
		t, err := policy.TargetFor(req.Action)
		if err != nil {
			return nil, err
		}

		target = t
	case req.Status != nil:
		target = *req.Status
	default:
		return nil, appErrors.ValidationError("Either action or status is required")
	}

	return s.transition(ctx, caller, id, target, req.Reason, req.Version)
}

func (s *moderationService) transition(ctx context.Context, caller *models.Caller, id uuid.UUID, target models.CommodityStatus, reason string, expectedVersion *int64) (commodity *models.Commodity, err error) {
	ctx, span := tracer.Start(ctx, "commodity.moderate", trace.WithAttributes(
		attribute.String("commodity.id", id.String()),
		attribute.String("commodity.target_status", string(target)),
	))
	defer func() { endSpan(span, err) }()

	logger := middleware.LoggerFromContext(ctx)

	// checked before the store is touched
	if err := policy.CanAccess(caller, policy.OpChangeStatus, nil); err != nil {
		return nil, err
	}

	commodity, err = s.repo.GetCommodityByID(ctx, id)
	if err != nil {
		return nil, commodityLookupError(err)
	}

	if err := checkVersion(expectedVersion, commodity.Version); err != nil {
		return nil, err
	}

	version := commodity.Version

	result, err := policy.ApplyTransition(commodity, target, utils.SanitizeText(reason))
	if err != nil {
		return nil, err
	}

	if result.Noop {
		logger.Info("Commodity already in target status", slog.String("commodityId", id.String()), slog.String("status", string(target)))
		return commodity, nil
	}

	if err := s.repo.UpdateCommodity(ctx, commodity, version); err != nil {
		return nil, commodityWriteError(err, "Failed to update commodity status")
	}

	metrics.RecordTransition(string(result.From), string(result.To))

	s.cache.store(ctx, commodity)

	logger.Info("Commodity status changed",
		slog.String("commodityId", id.String()),
		slog.String("from", string(result.From)),
		slog.String("to", string(result.To)))

	return commodity, nil
}

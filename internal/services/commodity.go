package service

import (
	"context"

	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/metrics"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/policy"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CommodityService interface {
	CreateCommodity(ctx context.Context, caller *models.Caller, req *models.CreateCommodityRequest) (*models.Commodity, error)
	GetCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID) (*models.Commodity, error)
	UpdateCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID, req *models.UpdateCommodityRequest) (*models.Commodity, error)
	DeleteCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID) error
	ListCommodities(ctx context.Context, caller *models.Caller, query models.CommodityListQuery) ([]*models.Commodity, int, error)
}

type commodityService struct {
	repo      repository.CommodityRepository
	cache     commodityCache
	validator *validator.Validate
}

func NewCommodityService(repo repository.CommodityRepository, cache cache.Cache, validate *validator.Validate, cfg *config.Cache) CommodityService {
	return &commodityService{
		repo:      repo,
		cache:     commodityCache{cache: cache, ttl: cfg.CommodityTTL},
		validator: validate,
	}
}

func (s *commodityService) CreateCommodity(ctx context.Context, caller *models.Caller, req *models.CreateCommodityRequest) (commodity *models.Commodity, err error) {
	ctx, span := tracer.Start(ctx, "commodity.create")
	defer func() { endSpan(span, err) }()

	if err := policy.CanAccess(caller, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	commodity = &models.Commodity{
		FarmerID:      caller.ID,
		ProductName:   utils.SanitizeText(req.ProductName),
		CommodityType: req.CommodityType,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		Description:   utils.SanitizeText(req.Description),
		ImageURL:      req.ImageURL,
		InStock:       inStock,
		Status:        models.CommodityStatusPending,
		Version:       1,
	}

	if err := validateRecord(s.validator, commodity); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCommodity(ctx, commodity); err != nil {
		return nil, appErrors.DatabaseError("Failed to create commodity").WithError(err)
	}

	span.SetAttributes(attribute.String("commodity.id", commodity.ID.String()))
	metrics.RecordCommodityCreated(string(commodity.CommodityType))

	return commodity, nil
}

// GetCommodity returns the record when caller may see it. Records hidden from
// the caller are reported exactly like unknown ids.
func (s *commodityService) GetCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID) (commodity *models.Commodity, err error) {
	ctx, span := tracer.Start(ctx, "commodity.get", trace.WithAttributes(attribute.String("commodity.id", id.String())))
	defer func() { endSpan(span, err) }()

	commodity, err = s.cachedCommodity(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(caller, policy.OpReadOne, commodity); err != nil {
		return nil, err
	}

	return commodity, nil
}

func (s *commodityService) cachedCommodity(ctx context.Context, id uuid.UUID) (*models.Commodity, error) {
	if cached, hit := s.cache.lookup(ctx, id); hit {
		if cached == nil {
			return nil, policy.CommodityNotFound()
		}

		return cached, nil
	}

	commodity, err := s.repo.GetCommodityByID(ctx, id)
	if err != nil {
		return nil, commodityLookupError(err)
	}

	s.cache.store(ctx, commodity)

	return commodity, nil
}

func (s *commodityService) UpdateCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID, req *models.UpdateCommodityRequest) (commodity *models.Commodity, err error) {
	ctx, span := tracer.Start(ctx, "commodity.update", trace.WithAttributes(attribute.String("commodity.id", id.String())))
	defer func() { endSpan(span, err) }()

	commodity, err = s.repo.GetCommodityByID(ctx, id)
	if err != nil {
		return nil, commodityLookupError(err)
	}

	if err := policy.CheckPatch(caller, commodity, req); err != nil {
		return nil, err
	}

	if len(req.TouchedFields()) == 0 {
		return nil, appErrors.ValidationError("No fields to update")
	}

	if err := validateRecord(s.validator, req); err != nil {
		return nil, err
	}

	if err := checkVersion(req.Version, commodity.Version); err != nil {
		return nil, err
	}

	expectedVersion := commodity.Version

	applyPatch(commodity, req)

	transition, err := applyStatusPatch(commodity, req)
	if err != nil {
		return nil, err
	}

	if err := validateRecord(s.validator, commodity); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCommodity(ctx, commodity, expectedVersion); err != nil {
		return nil, commodityWriteError(err, "Failed to update commodity")
	}

	if transition != nil && !transition.Noop {
		metrics.RecordTransition(string(transition.From), string(transition.To))
	}

	s.cache.store(ctx, commodity)

	return commodity, nil
}

func applyPatch(commodity *models.Commodity, req *models.UpdateCommodityRequest) {
	if req.ProductName != nil {
		commodity.ProductName = utils.SanitizeText(*req.ProductName)
	}
	if req.CommodityType != nil {
		commodity.CommodityType = *req.CommodityType
	}
	if req.Quantity != nil {
		commodity.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		commodity.PricePerUnit = *req.PricePerUnit
	}
	if req.Description != nil {
		commodity.Description = utils.SanitizeText(*req.Description)
	}
	if req.ImageURL != nil {
		commodity.ImageURL = *req.ImageURL
	}
	if req.InStock != nil {
		commodity.InStock = *req.InStock
	}
}

// applyStatusPatch routes a status change inside an admin patch through the
// same transition rules moderation uses.
func applyStatusPatch(commodity *models.Commodity, req *models.UpdateCommodityRequest) (*policy.Transition, error) {
	if req.Status == nil {
		if req.RejectionReason != nil {
			return nil, appErrors.ValidationError("rejection_reason can only be set together with status 'rejected'")
		}

		return nil, nil
	}

	reason := ""
	if req.RejectionReason != nil {
		if *req.Status != models.CommodityStatusRejected {
			return nil, appErrors.ValidationError("rejection_reason can only be set together with status 'rejected'")
		}

		reason = utils.SanitizeText(*req.RejectionReason)
	}

	transition, err := policy.ApplyTransition(commodity, *req.Status, reason)
	if err != nil {
		return nil, err
	}

	return &transition, nil
}

func (s *commodityService) DeleteCommodity(ctx context.Context, caller *models.Caller, id uuid.UUID) (err error) {
	ctx, span := tracer.Start(ctx, "commodity.delete", trace.WithAttributes(attribute.String("commodity.id", id.String())))
	defer func() { endSpan(span, err) }()

	commodity, err := s.repo.GetCommodityByID(ctx, id)
	if err != nil {
		return commodityLookupError(err)
	}

	if err := policy.CanAccess(caller, policy.OpDelete, commodity); err != nil {
		return err
	}

	if err := s.repo.DeleteCommodity(ctx, id); err != nil {
		return commodityWriteError(err, "Failed to delete commodity")
	}

	s.cache.bury(ctx, id)

	return nil
}

// ListCommodities returns the caller's own records, or every record for an admin.
func (s *commodityService) ListCommodities(ctx context.Context, caller *models.Caller, query models.CommodityListQuery) (commodities []*models.Commodity, total int, err error) {
	ctx, span := tracer.Start(ctx, "commodity.list")
	defer func() { endSpan(span, err) }()

	if err := policy.CanAccess(caller, policy.OpReadOwnList, nil); err != nil {
		return nil, 0, err
	}

	page, pageSize := models.NormalizePage(query.Page, query.PageSize)

	filter := models.CommodityFilter{
		Category: query.Category,
		Sort:     models.SortNewest,
		Page:     page,
		PageSize: pageSize,
	}

	if !caller.IsAdmin() {
		filter.OwnerID = &caller.ID
	}

	if query.Status != nil {
		if !query.Status.Valid() {
			return nil, 0, appErrors.ValidationError("Invalid status filter")
		}

		filter.Statuses = []models.CommodityStatus{*query.Status}
	}

	if query.Category != nil && !query.Category.Valid() {
		return nil, 0, appErrors.ValidationError("Invalid category filter")
	}

	commodities, total, err = s.repo.ListCommodities(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch commodities").WithError(err)
	}

	return commodities, total, nil
}

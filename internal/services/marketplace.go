package service

import (
	"context"
	"strings"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"go.opentelemetry.io/otel/attribute"
)

// categoryAll is accepted from buyers and means no category filter.
const categoryAll = "all"

type MarketplaceService interface {
	ListMarketplace(ctx context.Context, query models.MarketplaceQuery) ([]*models.MarketplaceListing, int, error)
}

type marketplaceService struct {
	repo repository.CommodityRepository
}

func NewMarketplaceService(repo repository.CommodityRepository) MarketplaceService {
	return &marketplaceService{repo: repo}
}

// ListMarketplace is open to everyone, so it takes no caller. Only approved
// records are ever returned, the store enforces that regardless of query.
func (s *marketplaceService) ListMarketplace(ctx context.Context, query models.MarketplaceQuery) (listings []*models.MarketplaceListing, total int, err error) {
	ctx, span := tracer.Start(ctx, "marketplace.list")
	defer func() { endSpan(span, err) }()

	filter, err := marketplaceFilter(query)
	if err != nil {
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.String("marketplace.sort", string(filter.Sort)),
		attribute.Int("marketplace.page", filter.Page),
	)

	listings, total, err = s.repo.ListMarketplace(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch marketplace listings").WithError(err)
	}

	return listings, total, nil
}

func marketplaceFilter(query models.MarketplaceQuery) (models.CommodityFilter, error) {
	page, pageSize := models.NormalizePage(query.Page, query.PageSize)

	filter := models.CommodityFilter{
		Statuses:     []models.CommodityStatus{models.CommodityStatusApproved},
		NameContains: strings.TrimSpace(query.Search),
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		Sort:         query.Sort,
		Page:         page,
		PageSize:     pageSize,
	}

	if query.Category != nil && *query.Category != categoryAll && *query.Category != "" {
		if !query.Category.Valid() {
			return filter, appErrors.ValidationError("Invalid category filter")
		}

		filter.Category = query.Category
	}

	if filter.Sort == "" {
		filter.Sort = models.SortNewest
	}

	if !filter.Sort.Valid() {
		return filter, appErrors.ValidationError("Invalid sort option")
	}

	if (query.MinPrice != nil && query.MinPrice.IsNegative()) || (query.MaxPrice != nil && query.MaxPrice.IsNegative()) {
		return filter, appErrors.ValidationError("Price bounds cannot be negative")
	}

	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return filter, appErrors.ValidationError("minPrice cannot be greater than maxPrice")
	}

	return filter, nil
}

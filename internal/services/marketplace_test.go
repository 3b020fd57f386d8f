package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceService_ListMarketplace(t *testing.T) {
	ctx := context.Background()

	category := func(c models.CommodityType) *models.CommodityType { return &c }
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	t.Run("Success - Defaults only ask for approved records", func(t *testing.T) {
		// Arrange
		repo := mocks.NewCommodityRepository(t)
		marketplaceService := service.NewMarketplaceService(repo)
		listings := []*models.MarketplaceListing{{ID: uuid.New(), ProductName: "Onions"}}

		repo.On("ListMarketplace", mock.Anything, mock.MatchedBy(func(f models.CommodityFilter) bool {
			return len(f.Statuses) == 1 &&
				f.Statuses[0] == models.CommodityStatusApproved &&
				f.OwnerID == nil &&
				f.Category == nil &&
				f.Sort == models.SortNewest &&
				f.Page == 1 &&
				f.PageSize == models.DefaultPageSize
		})).Return(listings, 1, nil).Once()

		// Act
		result, total, err := marketplaceService.ListMarketplace(ctx, models.MarketplaceQuery{})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, listings, result)
	})

	t.Run("Success - Filters are passed through", func(t *testing.T) {
		repo := mocks.NewCommodityRepository(t)
		marketplaceService := service.NewMarketplaceService(repo)

		repo.On("ListMarketplace", mock.Anything, mock.MatchedBy(func(f models.CommodityFilter) bool {
			return f.Category != nil && *f.Category == models.CommodityTypeFruits &&
				f.NameContains == "mango" &&
				f.MinPrice.Equal(decimal.NewFromInt(10)) &&
				f.MaxPrice.Equal(decimal.NewFromInt(90)) &&
				f.Sort == models.SortPriceAsc &&
				f.Page == 2 && f.PageSize == 5 &&
				len(f.Statuses) == 1 && f.Statuses[0] == models.CommodityStatusApproved
		})).Return([]*models.MarketplaceListing{}, 0, nil).Once()

		_, _, err := marketplaceService.ListMarketplace(ctx, models.MarketplaceQuery{
			Category: category(models.CommodityTypeFruits),
			Search:   "  mango ",
			MinPrice: price("10"),
			MaxPrice: price("90"),
			Sort:     models.SortPriceAsc,
			Page:     2,
			PageSize: 5,
		})

		require.NoError(t, err)
	})

	t.Run("Success - Category all means no filter", func(t *testing.T) {
		repo := mocks.NewCommodityRepository(t)
		marketplaceService := service.NewMarketplaceService(repo)

		repo.On("ListMarketplace", mock.Anything, mock.MatchedBy(func(f models.CommodityFilter) bool {
			return f.Category == nil
		})).Return([]*models.MarketplaceListing{}, 0, nil).Once()

		_, _, err := marketplaceService.ListMarketplace(ctx, models.MarketplaceQuery{Category: category("all")})

		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		query models.MarketplaceQuery
	}{
		{name: "Failure - Unknown category", query: models.MarketplaceQuery{Category: category("spices")}},
		{name: "Failure - Unknown sort", query: models.MarketplaceQuery{Sort: "cheapest"}},
		{name: "Failure - Negative price", query: models.MarketplaceQuery{MinPrice: price("-1")}},
		{name: "Failure - Min above max", query: models.MarketplaceQuery{MinPrice: price("50"), MaxPrice: price("20")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewCommodityRepository(t)
			marketplaceService := service.NewMarketplaceService(repo)

			result, _, err := marketplaceService.ListMarketplace(ctx, tc.query)

			assert.Nil(t, result)
			assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
		})
	}

	t.Run("Failure - Database error", func(t *testing.T) {
		repo := mocks.NewCommodityRepository(t)
		marketplaceService := service.NewMarketplaceService(repo)

		repo.On("ListMarketplace", mock.Anything, mock.Anything).Return(nil, 0, errors.New("timeout")).Once()

		_, _, err := marketplaceService.ListMarketplace(ctx, models.MarketplaceQuery{})

		assertAppErrorCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

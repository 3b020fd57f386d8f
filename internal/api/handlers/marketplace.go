package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/cespare/xxhash/v2"
	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/shopspring/decimal"
)

type MarketplaceHandler struct {
	marketplaceService service.MarketplaceService
}

func NewMarketplaceHandler(marketplaceService service.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// ListMarketplace godoc
//	@Summary		Browse the marketplace
//	@Description	Lists approved commodities only, with the farmer's public name and location. Open to everyone.
//	@Tags			Marketplace
//	@Produce		json
//	@Param			category	query		string														false	"Commodity type, or 'all'"
//	@Param			search		query		string														false	"Case-insensitive product name match"
//	@Param			minPrice	query		string														false	"Lower price bound"
//	@Param			maxPrice	query		string														false	"Upper price bound"
//	@Param			sort		query		string														false	"Sort order"	Enums(newest, oldest, price_asc, price_desc)
//	@Param			page		query		int															false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int															false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.MarketplaceListing}	"Approved listings"
//	@Success		304			"Not modified"
//	@Failure		400			{object}	response.ErrorResponse										"Invalid filter"
//	@Failure		429			{object}	response.ErrorResponse										"Too many requests"
//	@Failure		500			{object}	response.ErrorResponse										"Internal server error"
//	@Router			/marketplace [get]
func (h *MarketplaceHandler) ListMarketplace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query, err := marketplaceQuery(r)
		if err != nil {
			logger.Warn("Invalid marketplace query", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		timing := servertiming.FromContext(r.Context())

		var metric *servertiming.Metric
		if timing != nil {
			metric = timing.NewMetric("query").WithDesc("marketplace listing").Start()
		}

		listings, total, err := h.marketplaceService.ListMarketplace(r.Context(), query)

		if metric != nil {
			metric.Stop()
		}

		if err != nil {
			logger.Error("Failed to list marketplace", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		body, err := json.Marshal(response.Envelope(models.NewPage(listings, total, query.Page, query.PageSize)))
		if err != nil {
			response.Error(w, errors.InternalError("Failed to encode listings").WithError(err))
			return
		}

		etag := `W/"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
		w.Header().Set("ETag", etag)

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		logger.Info("Marketplace listed", slog.Int("count", len(listings)), slog.Int("total", total))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func marketplaceQuery(r *http.Request) (models.MarketplaceQuery, error) {
	values := r.URL.Query()

	query := models.MarketplaceQuery{
		Search:   values.Get("search"),
		Sort:     models.CommoditySort(values.Get("sort")),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	}

	if category := values.Get("category"); category != "" {
		c := models.CommodityType(category)
		query.Category = &c
	}

	for name, dest := range map[string]**decimal.Decimal{"minPrice": &query.MinPrice, "maxPrice": &query.MaxPrice} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}

		price, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errors.ValidationError("Invalid " + name).WithError(err)
		}

		*dest = &price
	}

	return query, nil
}

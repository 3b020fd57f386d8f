package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/aaravmahajanofficial/agroconnect/internal/validation"
	"github.com/go-playground/validator/v10"
)

type CommodityHandler struct {
	commodityService service.CommodityService
	validator        *validator.Validate
}

func NewCommodityHandler(commodityService service.CommodityService) *CommodityHandler {
	return &CommodityHandler{commodityService: commodityService, validator: validation.New()}
}

// CreateCommodity godoc
//	@Summary		List a new commodity
//	@Description	Creates a commodity owned by the authenticated farmer. New listings start as pending and are not visible on the marketplace until approved.
//	@Tags			Commodities
//	@Accept			json
//	@Produce		json
//	@Param			commodity	body		models.CreateCommodityRequest	true	"Commodity details"
//	@Success		201			{object}	models.Commodity				"Commodity created"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse			"Only active farmers may list commodities"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/commodities [post]
func (h *CommodityHandler) CreateCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			logger.Warn("Unauthenticated commodity creation attempt")
			response.Error(w, err)
			return
		}

		var req models.CreateCommodityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create commodity input")
			return
		}

		commodity, err := h.commodityService.CreateCommodity(r.Context(), caller, &req)
		if err != nil {
			logger.Error("Failed to create commodity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Commodity created", slog.String("commodityId", commodity.ID.String()))
		w.Header().Set("ETag", versionETag(commodity.Version))
		response.Success(w, http.StatusCreated, commodity)
	}
}

// GetCommodity godoc
//	@Summary		Get a commodity by ID
//	@Description	Approved commodities are public. Pending and rejected ones are visible to their owner and to admins only; for anyone else they do not exist.
//	@Tags			Commodities
//	@Produce		json
//	@Param			id	path		string					true	"Commodity ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Commodity		"Commodity"
//	@Success		304	"Not modified"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid commodity ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Invalid credential"
//	@Failure		404	{object}	response.ErrorResponse	"Commodity not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/commodities/{id} [get]
func (h *CommodityHandler) GetCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// anonymous callers are allowed here
		caller, _ := middleware.CallerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid commodity id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		commodity, err := h.commodityService.GetCommodity(r.Context(), caller, id)
		if err != nil {
			logger.Warn("Failed to get commodity", slog.String("commodityId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		etag := versionETag(commodity.Version)
		w.Header().Set("ETag", etag)

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		response.Success(w, http.StatusOK, commodity)
	}
}

// UpdateCommodity godoc
//	@Summary		Update a commodity
//	@Description	Partial update. Owners may change in_stock, price_per_unit, quantity and description; admins may change any field including status. Send the observed version in the body or as If-Match to detect concurrent edits.
//	@Tags			Commodities
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Commodity ID (UUID)"	Format(uuid)
//	@Param			If-Match	header		string							false	"Observed version, quoted"
//	@Param			commodity	body		models.UpdateCommodityRequest	true	"Fields to change"
//	@Success		200			{object}	models.Commodity				"Updated commodity"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse			"Field or record not editable by caller"
//	@Failure		404			{object}	response.ErrorResponse			"Commodity not found"
//	@Failure		409			{object}	response.ErrorResponse			"Version conflict"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/commodities/{id} [patch]
func (h *CommodityHandler) UpdateCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			logger.Warn("Unauthenticated commodity update attempt")
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid commodity id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("commodityId", id.String()))

		expected, err := parseIfMatch(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		// Field rules are checked by the service once ownership is known.
		var req models.UpdateCommodityRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid update commodity body", slog.String("error", err.Error()))
			response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		if req.Version == nil {
			req.Version = expected
		}

		commodity, err := h.commodityService.UpdateCommodity(r.Context(), caller, id, &req)
		if err != nil {
			logger.Warn("Failed to update commodity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Commodity updated", slog.Int64("version", commodity.Version))
		w.Header().Set("ETag", versionETag(commodity.Version))
		response.Success(w, http.StatusOK, commodity)
	}
}

// DeleteCommodity godoc
//	@Summary		Delete a commodity
//	@Description	Owners may delete their own commodities in any status; admins may delete any commodity.
//	@Tags			Commodities
//	@Produce		json
//	@Param			id	path		string					true	"Commodity ID (UUID)"	Format(uuid)
//	@Success		200	{object}	map[string]string		"Commodity deleted"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid commodity ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not allowed"
//	@Failure		404	{object}	response.ErrorResponse	"Commodity not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/commodities/{id} [delete]
func (h *CommodityHandler) DeleteCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			logger.Warn("Unauthenticated commodity delete attempt")
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid commodity id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.commodityService.DeleteCommodity(r.Context(), caller, id); err != nil {
			logger.Warn("Failed to delete commodity", slog.String("commodityId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Commodity deleted", slog.String("commodityId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Commodity deleted"})
	}
}

// ListCommodities godoc
//	@Summary		List commodities for management
//	@Description	Farmers get their own commodities in every status. Admins get all commodities.
//	@Tags			Commodities
//	@Produce		json
//	@Param			status		query		string												false	"Filter by status"	Enums(pending, approved, rejected)
//	@Param			category	query		string												false	"Filter by commodity type"
//	@Param			page		query		int													false	"Page number (default: 1)"			minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Commodity}	"Commodities"
//	@Failure		400			{object}	response.ErrorResponse								"Invalid filter"
//	@Failure		401			{object}	response.ErrorResponse								"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse								"Not allowed"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Security		BearerAuth
//	@Router			/commodities/mine [get]
//	@Router			/admin/commodities [get]
func (h *CommodityHandler) ListCommodities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			logger.Warn("Unauthenticated commodity list attempt")
			response.Error(w, err)
			return
		}

		query := models.CommodityListQuery{
			Page:     queryInt(r, "page"),
			PageSize: queryInt(r, "pageSize"),
		}

		if status := r.URL.Query().Get("status"); status != "" {
			s := models.CommodityStatus(status)
			query.Status = &s
		}

		if category := r.URL.Query().Get("category"); category != "" {
			c := models.CommodityType(category)
			query.Category = &c
		}

		commodities, total, err := h.commodityService.ListCommodities(r.Context(), caller, query)
		if err != nil {
			logger.Warn("Failed to list commodities", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Commodities listed", slog.Int("count", len(commodities)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.NewPage(commodities, total, query.Page, query.PageSize))
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/aaravmahajanofficial/agroconnect/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ModerationHandler struct {
	moderationService service.ModerationService
	validator         *validator.Validate
}

func NewModerationHandler(moderationService service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, validator: validation.New()}
}

type moderationFunc func(r *http.Request, caller *models.Caller, id uuid.UUID) (*models.Commodity, error)

// moderate runs the shared caller and path handling around one moderation call.
func (h *ModerationHandler) moderate(action string, fn moderationFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("action", action))

		caller, err := requireCaller(r)
		if err != nil {
			logger.Warn("Unauthenticated moderation attempt")
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

		commodity, err := fn(r, caller, id)
		if err != nil {
			logger.Warn("Moderation failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Moderation applied", slog.String("status", string(commodity.Status)))
		w.Header().Set("ETag", versionETag(commodity.Version))
		response.Success(w, http.StatusOK, commodity)
	}
}

// ModerateCommodity godoc
//	@Summary		Change a commodity's moderation status
//	@Description	Applies an action (approve, reject, revert) or a target status. Rejection requires a reason. Approving an approved commodity changes nothing.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Commodity ID (UUID)"	Format(uuid)
//	@Param			If-Match	header		string						false	"Observed version, quoted"
//	@Param			moderation	body		models.ModerationRequest	true	"Action or target status"
//	@Success		200			{object}	models.Commodity			"Commodity after moderation"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid transition or missing reason"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse		"Admins only"
//	@Failure		404			{object}	response.ErrorResponse		"Commodity not found"
//	@Failure		409			{object}	response.ErrorResponse		"Version conflict"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/commodities/{id}/status [patch]
func (h *ModerationHandler) ModerateCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		expected, err := parseIfMatch(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ModerationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			middleware.LoggerFromContext(r.Context()).Warn("Invalid moderation input")
			return
		}

		if req.Version == nil {
			req.Version = expected
		}

		h.moderate("moderate", func(r *http.Request, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
			return h.moderationService.Moderate(r.Context(), caller, id, &req)
		})(w, r)
	}
}

// ApproveCommodity godoc
//	@Summary		Approve a commodity
//	@Description	Makes the commodity visible on the marketplace.
//	@Tags			Moderation
//	@Produce		json
//	@Param			id	path		string					true	"Commodity ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Commodity		"Approved commodity"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admins only"
//	@Failure		404	{object}	response.ErrorResponse	"Commodity not found"
//	@Failure		409	{object}	response.ErrorResponse	"Concurrent modification"
//	@Security		BearerAuth
//	@Router			/admin/commodities/{id}/approve [post]
func (h *ModerationHandler) ApproveCommodity() http.HandlerFunc {
	return h.moderate("approve", func(r *http.Request, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
		return h.moderationService.Approve(r.Context(), caller, id)
	})
}

// RejectCommodity godoc
//	@Summary		Reject a commodity
//	@Description	Hides the commodity from the marketplace and records the reason shown to its owner.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Commodity ID (UUID)"	Format(uuid)
//	@Param			reason	body		models.RejectRequest	true	"Rejection reason"
//	@Success		200		{object}	models.Commodity		"Rejected commodity"
//	@Failure		400		{object}	response.ErrorResponse	"Missing reason"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Admins only"
//	@Failure		404		{object}	response.ErrorResponse	"Commodity not found"
//	@Security		BearerAuth
//	@Router			/admin/commodities/{id}/reject [post]
func (h *ModerationHandler) RejectCommodity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RejectRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			middleware.LoggerFromContext(r.Context()).Warn("Invalid reject input")
			return
		}

		h.moderate("reject", func(r *http.Request, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
			return h.moderationService.Reject(r.Context(), caller, id, req.Reason)
		})(w, r)
	}
}

// RevertCommodity godoc
//	@Summary		Send a commodity back to pending
//	@Description	Withdraws an approved or rejected commodity for another review.
//	@Tags			Moderation
//	@Produce		json
//	@Param			id	path		string					true	"Commodity ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Commodity		"Pending commodity"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admins only"
//	@Failure		404	{object}	response.ErrorResponse	"Commodity not found"
//	@Security		BearerAuth
//	@Router			/admin/commodities/{id}/revert [post]
func (h *ModerationHandler) RevertCommodity() http.HandlerFunc {
	return h.moderate("revert", func(r *http.Request, caller *models.Caller, id uuid.UUID) (*models.Commodity, error) {
		return h.moderationService.RevertToPending(r.Context(), caller, id)
	})
}

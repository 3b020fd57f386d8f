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
)

type AdminUserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewAdminUserHandler(userService service.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService, validator: validation.New()}
}

// ListUsers godoc
//	@Summary		List accounts
//	@Tags			Admin
//	@Produce		json
//	@Param			role		query		string										false	"Filter by role"	Enums(farmer, buyer, helper, admin)
//	@Param			page		query		int											false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int											false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.User}	"Accounts"
//	@Failure		400			{object}	response.ErrorResponse						"Invalid role filter"
//	@Failure		401			{object}	response.ErrorResponse						"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse						"Admins only"
//	@Failure		500			{object}	response.ErrorResponse						"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/users [get]
func (h *AdminUserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := models.UserListQuery{
			Page:     queryInt(r, "page"),
			PageSize: queryInt(r, "pageSize"),
		}

		if role := r.URL.Query().Get("role"); role != "" {
			rl := models.Role(role)
			query.Role = &rl
		}

		users, total, err := h.userService.ListUsers(r.Context(), query)
		if err != nil {
			logger.Warn("Failed to list users", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Users listed", slog.Int("count", len(users)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.NewPage(users, total, query.Page, query.PageSize))
	}
}

// UpdateUserStatus godoc
//	@Summary		Change an account's status
//	@Description	Inactive accounts keep read access to public data but cannot create, edit or moderate.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateUserStatusRequest	true	"New status"
//	@Success		200		{object}	models.User						"Updated account"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse			"Admins only"
//	@Failure		404		{object}	response.ErrorResponse			"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id}/status [patch]
func (h *AdminUserHandler) UpdateUserStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateUserStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid user status input")
			return
		}

		user, err := h.userService.UpdateUserStatus(r.Context(), caller, id, req.Status)
		if err != nil {
			logger.Warn("Failed to update user status", slog.String("targetUserId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User status updated", slog.String("targetUserId", id.String()), slog.String("status", string(user.Status)))
		response.Success(w, http.StatusOK, user)
	}
}

// DeleteUser godoc
//	@Summary		Delete an account
//	@Description	Removes the account and every commodity it owns.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"User ID (UUID)"	Format(uuid)
//	@Success		200	{object}	map[string]string		"Account deleted"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid user ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admins only"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/admin/users/{id} [delete]
func (h *AdminUserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.userService.DeleteUser(r.Context(), caller, id); err != nil {
			logger.Warn("Failed to delete user", slog.String("targetUserId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User deleted", slog.String("targetUserId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "User deleted"})
	}
}

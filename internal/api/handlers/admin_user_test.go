package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/services/mocks"
	"github.com/aaravmahajanofficial/agroconnect/internal/testutils"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminUserHandler_ListUsers(t *testing.T) {
	mockUserService := new(mocks.UserService)
	adminHandler := handlers.NewAdminUserHandler(mockUserService)
	admin := adminCaller()

	t.Run("Success - Role filter", func(t *testing.T) {
		// Arrange
		users := []*models.User{{ID: uuid.New(), Role: models.RoleFarmer}}

		mockUserService.On("ListUsers", mock.Anything, mock.MatchedBy(func(q models.UserListQuery) bool {
			return q.Role != nil && *q.Role == models.RoleFarmer && q.Page == 3 && q.PageSize == 10
		})).Return(users, 21, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/admin/users?role=farmer&page=3&pageSize=10", nil, admin, nil)
		rr := httptest.NewRecorder()

		// Act
		adminHandler.ListUsers().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		dataMap, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 21, dataMap["total"])
		assert.EqualValues(t, 3, dataMap["page"])

		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid role", func(t *testing.T) {
		mockUserService.On("ListUsers", mock.Anything, mock.Anything).
			Return(nil, 0, appErrors.ValidationError("Invalid role filter")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/admin/users?role=trader", nil, admin, nil)
		rr := httptest.NewRecorder()

		adminHandler.ListUsers().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminUserHandler_UpdateUserStatus(t *testing.T) {
	mockUserService := new(mocks.UserService)
	adminHandler := handlers.NewAdminUserHandler(mockUserService)
	admin := adminCaller()
	userID := uuid.New()
	pathParams := map[string]string{"id": userID.String()}

	t.Run("Success - Deactivate", func(t *testing.T) {
		mockUserService.On("UpdateUserStatus", mock.Anything, admin, userID, models.AccountStatusInactive).
			Return(&models.User{ID: userID, Status: models.AccountStatusInactive}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/admin/users/"+userID.String()+"/status",
			bytes.NewReader([]byte(`{"status": "inactive"}`)), admin, pathParams)
		rr := httptest.NewRecorder()

		adminHandler.UpdateUserStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown status", func(t *testing.T) {
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/admin/users/"+userID.String()+"/status",
			bytes.NewReader([]byte(`{"status": "banned"}`)), admin, pathParams)
		rr := httptest.NewRecorder()

		adminHandler.UpdateUserStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - User not found", func(t *testing.T) {
		mockUserService.On("UpdateUserStatus", mock.Anything, admin, userID, models.AccountStatusActive).
			Return(nil, appErrors.NotFoundError("User not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/admin/users/"+userID.String()+"/status",
			bytes.NewReader([]byte(`{"status": "active"}`)), admin, pathParams)
		rr := httptest.NewRecorder()

		adminHandler.UpdateUserStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAdminUserHandler_DeleteUser(t *testing.T) {
	mockUserService := new(mocks.UserService)
	adminHandler := handlers.NewAdminUserHandler(mockUserService)
	admin := adminCaller()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockUserService.On("DeleteUser", mock.Anything, admin, userID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/admin/users/"+userID.String(), nil, admin, map[string]string{"id": userID.String()})
		rr := httptest.NewRecorder()

		adminHandler.DeleteUser().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Own account", func(t *testing.T) {
		mockUserService.On("DeleteUser", mock.Anything, admin, admin.ID).
			Return(appErrors.ValidationError("Administrators cannot delete their own account")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/admin/users/"+admin.ID.String(), nil, admin, map[string]string{"id": admin.ID.String()})
		rr := httptest.NewRecorder()

		adminHandler.DeleteUser().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

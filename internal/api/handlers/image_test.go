package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/services/mocks"
	"github.com/aaravmahajanofficial/agroconnect/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, "tomatoes.png")
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	farmer := farmerCaller()

	t.Run("Success - Image stored", func(t *testing.T) {
		// Arrange
		mockImageService := new(mocks.ImageService)
		imageHandler := handlers.NewImageHandler(mockImageService, 1024)

		mockImageService.On("Upload", mock.Anything, farmer, pngBytes).
			Return(&models.ImageUploadResponse{URL: "https://cdn.example.com/commodities/x.png", ContentType: "image/png", Size: int64(len(pngBytes))}, nil).Once()

		body, contentType := multipartBody(t, "image", pngBytes)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/commodities/images", body, farmer, nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		// Act
		imageHandler.UploadImage().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var upload models.ImageUploadResponse
		decodeData(t, rr.Body.Bytes(), &upload)
		assert.Equal(t, "https://cdn.example.com/commodities/x.png", upload.URL)

		mockImageService.AssertExpectations(t)
	})

	t.Run("Failure - Wrong form field", func(t *testing.T) {
		mockImageService := new(mocks.ImageService)
		imageHandler := handlers.NewImageHandler(mockImageService, 1024)

		body, contentType := multipartBody(t, "photo", pngBytes)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/commodities/images", body, farmer, nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		imageHandler.UploadImage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, errorCode(t, rr.Body.Bytes()))
		mockImageService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Storage unavailable", func(t *testing.T) {
		mockImageService := new(mocks.ImageService)
		imageHandler := handlers.NewImageHandler(mockImageService, 1024)

		mockImageService.On("Upload", mock.Anything, farmer, mock.Anything).
			Return(nil, appErrors.StorageError("Failed to store image")).Once()

		body, contentType := multipartBody(t, "image", pngBytes)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/commodities/images", body, farmer, nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		imageHandler.UploadImage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Failure - Unauthenticated", func(t *testing.T) {
		mockImageService := new(mocks.ImageService)
		imageHandler := handlers.NewImageHandler(mockImageService, 1024)

		body, contentType := multipartBody(t, "image", pngBytes)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/commodities/images", body, nil)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		imageHandler.UploadImage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

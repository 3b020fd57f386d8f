package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/errors"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
)

// multipart framing allowance on top of the image itself
const multipartOverhead = 64 << 10

type ImageHandler struct {
	imageService service.ImageService
	maxBytes     int64
}

func NewImageHandler(imageService service.ImageService, maxBytes int64) *ImageHandler {
	return &ImageHandler{imageService: imageService, maxBytes: maxBytes}
}

// UploadImage godoc
//	@Summary		Upload a commodity image
//	@Description	Stores a PNG or JPEG image and returns its public URL for use as image_url. The content type is detected from the bytes.
//	@Tags			Commodities
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file						true	"PNG or JPEG image"
//	@Success		201		{object}	models.ImageUploadResponse	"Stored image"
//	@Failure		400		{object}	response.ErrorResponse		"Missing, oversized or unsupported file"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Farmers and admins only"
//	@Failure		502		{object}	response.ErrorResponse		"Storage unavailable"
//	@Security		BearerAuth
//	@Router			/commodities/images [post]
func (h *ImageHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		caller, err := requireCaller(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

		file, header, err := r.FormFile("image")
		if err != nil {
			logger.Warn("Invalid image upload", slog.String("error", err.Error()))
			response.Error(w, errors.ValidationError("Image file is required").WithDetail("send the file in the 'image' form field, at most the configured size"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
		if err != nil {
			response.Error(w, errors.BadRequestError("Failed to read image").WithError(err))
			return
		}

		upload, err := h.imageService.Upload(r.Context(), caller, data)
		if err != nil {
			logger.Warn("Image upload failed", slog.String("filename", header.Filename), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Image uploaded", slog.String("url", upload.URL), slog.Int64("size", upload.Size))
		response.Success(w, http.StatusCreated, upload)
	}
}

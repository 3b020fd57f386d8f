package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/metrics"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/aaravmahajanofficial/agroconnect/internal/policy"
	"github.com/aaravmahajanofficial/agroconnect/internal/storage"
	"github.com/gabriel-vasile/mimetype"
)

var acceptedImageTypes = []string{"image/png", "image/jpeg"}

type ImageService interface {
	Upload(ctx context.Context, caller *models.Caller, data []byte) (*models.ImageUploadResponse, error)
}

type imageService struct {
	store    storage.ObjectStorage
	maxBytes int64
}

func NewImageService(store storage.ObjectStorage, cfg *config.Storage) ImageService {
	return &imageService{store: store, maxBytes: cfg.MaxUploadBytes}
}

// Upload sniffs the content instead of trusting the client supplied type.
func (s *imageService) Upload(ctx context.Context, caller *models.Caller, data []byte) (resp *models.ImageUploadResponse, err error) {
	ctx, span := tracer.Start(ctx, "image.upload")
	defer func() { endSpan(span, err) }()

	if err := policy.CanAccess(caller, policy.OpUploadImage, nil); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, appErrors.ValidationError("Image file is required")
	}

	if int64(len(data)) > s.maxBytes {
		return nil, appErrors.ValidationError("Image is too large").
			WithDetail(fmt.Sprintf("maximum size is %d bytes", s.maxBytes))
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), acceptedImageTypes...) {
		return nil, appErrors.ValidationError("Only PNG and JPEG images are accepted").
			WithDetail("detected " + mtype.String())
	}

	url, err := s.store.Store(ctx, data, mtype.String())
	if err != nil {
		metrics.RecordUpload("failed")
		return nil, appErrors.StorageError("Failed to store image").WithError(err)
	}

	metrics.RecordUpload("stored")

	return &models.ImageUploadResponse{
		URL:         url,
		ContentType: mtype.String(),
		Size:        int64(len(data)),
	}, nil
}

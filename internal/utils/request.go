package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxJSONBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body cannot be empty")

// DecodeJSONBody reads a single JSON value of at most 1 MiB into dest.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))

	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}

		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.More() {
		return errors.New("request body must hold a single JSON object")
	}

	return nil
}

// ParseAndValidate decodes and validates the body, writing the error response
// itself when it returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	err := validate.Struct(dest)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn("Request validation failed", slog.String("path", r.URL.Path), slog.String("error", validationErrs.Error()))
		response.ValidationError(w, validationErrs)
		return false
	}

	logger.Error("Unexpected validation error", slog.String("error", err.Error()))
	response.Error(w, appErrors.InternalError("Failed to validate request").WithError(err))

	return false
}

// ParseID reads a UUID path value.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Invalid ID format").WithError(err)
	}

	return id, nil
}

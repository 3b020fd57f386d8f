package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/policy"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aaravmahajanofficial/agroconnect/internal/services")

const conflictMessage = "Commodity was modified by another request"

// validateRecord runs struct validation and reports failures as a single ValidationError.
func validateRecord(validate *validator.Validate, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return appErrors.ValidationError("Validation failed").
			WithDetail(strings.Join(response.ValidationMessages(validationErrs), "; ")).
			WithError(err)
	}

	return appErrors.InternalError("Failed to validate request").WithError(err)
}

func commodityLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return policy.CommodityNotFound().WithError(err)
	}

	return appErrors.DatabaseError("Failed to fetch commodity").WithError(err)
}

func commodityWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return appErrors.ConflictError(conflictMessage).WithError(err)
	case errors.Is(err, sql.ErrNoRows):
		return policy.CommodityNotFound().WithError(err)
	}

	return appErrors.DatabaseError(message).WithError(err)
}

// checkVersion compares the version a caller observed with the stored one.
func checkVersion(expected *int64, current int64) error {
	if expected != nil && *expected != current {
		return appErrors.ConflictError(conflictMessage).WithDetail(fmt.Sprintf("current version is %d", current))
	}

	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}

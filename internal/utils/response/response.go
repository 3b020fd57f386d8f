package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(body)
}

// Envelope wraps data the same way Success does, for callers that need the bytes first.
func Envelope(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, Envelope(data))
}

// Error renders an AppError with its own status. Anything else is reported as
// a bare 500 so internal messages never leak.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, APIResponse{Error: &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		}})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	writeJSON(w, appErr.StatusCode, APIResponse{Error: body})
}

var tagMessages = map[string]string{
	"required":    "Field %s is required",
	"required_if": "Field %s is required",
	"email":       "Field %s must be a valid email address",
	"url":         "Field %s must be a valid URL",
	"uuid":        "Field %s must be a valid UUID",
	"numeric":     "Field %s must contain only digits",
}

var paramMessages = map[string]string{
	"min":   "Field %s must be at least %s",
	"max":   "Field %s must be at most %s",
	"len":   "Field %s must be exactly %s characters",
	"gt":    "Field %s must be greater than %s",
	"gte":   "Field %s must be at least %s",
	"lt":    "Field %s must be less than %s",
	"lte":   "Field %s must be at most %s",
	"oneof": "Field %s must be one of [%s]",
}

// ValidationMessages turns validator errors into readable messages.
func ValidationMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))

	for _, err := range errs {
		if format, ok := tagMessages[err.Tag()]; ok {
			msgs = append(msgs, fmt.Sprintf(format, err.Field()))
			continue
		}

		if format, ok := paramMessages[err.Tag()]; ok {
			msgs = append(msgs, fmt.Sprintf(format, err.Field(), err.Param()))
			continue
		}

		msgs = append(msgs, fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param()))
	}

	return msgs
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, APIResponse{Error: &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: ValidationMessages(errs),
	}})
}

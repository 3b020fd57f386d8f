package errors

import (
	"errors"
	"log/slog"
	"net/http"
)

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeStorageError    = "STORAGE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
)

// AppError is the only error type rendered to clients. Err keeps the cause
// for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// LogValue lets a logger print the code and cause next to the message.
func (e *AppError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("message", e.Message),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

type kind struct {
	code   string
	status int
}

func (k kind) new(message string) *AppError {
	return &AppError{Code: k.code, Message: message, StatusCode: k.status}
}

var (
	validation      = kind{ErrCodeValidation, http.StatusBadRequest}
	badRequest      = kind{ErrCodeBadRequest, http.StatusBadRequest}
	notFound        = kind{ErrCodeNotFound, http.StatusNotFound}
	unauthorized    = kind{ErrCodeUnauthorized, http.StatusUnauthorized}
	forbidden       = kind{ErrCodeForbidden, http.StatusForbidden}
	conflict        = kind{ErrCodeConflict, http.StatusConflict}
	internal        = kind{ErrCodeInternal, http.StatusInternalServerError}
	database        = kind{ErrCodeDatabaseError, http.StatusInternalServerError}
	storage         = kind{ErrCodeStorageError, http.StatusBadGateway}
	duplicate       = kind{ErrCodeDuplicateEntry, http.StatusConflict}
	unavailable     = kind{ErrCodeUnavailable, http.StatusServiceUnavailable}
	tooManyRequests = kind{ErrCodeTooManyRequests, http.StatusTooManyRequests}
)

func ValidationError(message string) *AppError { return validation.new(message) }

func BadRequestError(message string) *AppError { return badRequest.new(message) }

func NotFoundError(message string) *AppError { return notFound.new(message) }

// UnauthorizedError is returned when the caller identity is missing or cannot be resolved.
func UnauthorizedError(message string) *AppError { return unauthorized.new(message) }

func ForbiddenError(message string) *AppError { return forbidden.new(message) }

// ConflictError signals that the record changed since the caller read it.
func ConflictError(message string) *AppError { return conflict.new(message) }

func InternalError(message string) *AppError { return internal.new(message) }

func DatabaseError(message string) *AppError { return database.new(message) }

// StorageError reports a failed call to object storage.
func StorageError(message string) *AppError { return storage.new(message) }

func DuplicateEntryError(message string) *AppError { return duplicate.new(message) }

// UnavailableError reports a dependency other than the database being down.
func UnavailableError(message string) *AppError { return unavailable.new(message) }

func TooManyRequestsError(message string) *AppError { return tooManyRequests.new(message) }

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

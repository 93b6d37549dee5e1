package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	// Geocoding
	ErrGeocodeNotFound     = errors.New("geocode_not_found")
	ErrUpstreamUnavailable = errors.New("upstream_unavailable")

	// Object storage
	ErrStorageUploadFailed = errors.New("storage_upload_failed")

	// Favorites
	ErrAlreadyFavorited = errors.New("already_favorited")

	// Generic entity lookups
	ErrNotFound = errors.New("not_found")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// NewAppError is a small helper so service code stays terse.
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message, Err: err}
}

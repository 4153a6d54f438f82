package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound          = errors.New("not_found")
	ErrDuplicateID       = errors.New("duplicate_id")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrEmptyExport       = errors.New("empty_export")
	ErrForbidden         = errors.New("forbidden")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")
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

// HandleAppError centralizes responding to AppErrors. Sentinel domain
// errors that escape the service layer without an AppError wrapper are
// still mapped to sensible statuses rather than a blanket 500.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, "Record not found", nil, err)
	case errors.Is(err, ErrDuplicateID):
		RespondErrorWithCode(w, http.StatusConflict, ErrCodeDuplicateID, "A record with this id already exists", nil, err)
	case errors.Is(err, ErrInvalidTransition):
		RespondErrorWithCode(w, http.StatusConflict, ErrCodeInvalidTransition, "Status transition not allowed", nil, err)
	case errors.Is(err, ErrRowVersionConflict):
		RespondErrorWithCode(w, http.StatusConflict, ErrCodeRowVersionConflict, "Record was modified concurrently", nil, err)
	case errors.Is(err, ErrEmptyExport):
		RespondErrorWithCode(w, http.StatusUnprocessableEntity, ErrCodeEmptyExport, "Nothing to export", nil, err)
	case errors.Is(err, ErrForbidden):
		RespondErrorWithCode(w, http.StatusForbidden, ErrCodeForbidden, "Not allowed for this role", nil, err)
	default:
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

package paperstash_errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("rate limited")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrAlreadyExists      = errors.New("already exists")
)

// Upload request errors. These are the only failures a caller of the
// upload request flow ever sees.
var (
	ErrBadInput     = errors.New("bad input")
	ErrFailedCreate = errors.New("failed to create")
)

// Wire codes for the upload request flow.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadInput     = "BAD_INPUT"
	CodeFailedCreate = "FAILED_CREATE"
)

// Stages of the upload request flow that can fail with ErrFailedCreate.
const (
	StageCreateUpload   = "create_upload"
	StageIssueSignedURL = "issue_signed_url"
	StageReconcilePage  = "reconcile_page"
)

// StageError records which downstream stage failed. It matches
// ErrFailedCreate so callers only ever see the collapsed code, while logs
// keep the stage and the underlying cause.
type StageError struct {
	Stage string
	Err   error
}

func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFailedCreate.Error(), e.Stage, e.Err)
}

func (e *StageError) Is(target error) bool {
	return target == ErrFailedCreate
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ErrorCode maps an upload request error to its wire code. Anything that is
// not explicitly unauthorized or bad input collapses to FAILED_CREATE.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrFailedCreate):
		return CodeFailedCreate
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrBadInput), errors.Is(err, ErrInvalidInput):
		return CodeBadInput
	default:
		return CodeFailedCreate
	}
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrFailedCreate):
		return http.StatusInternalServerError
	case errors.Is(err, ErrBadInput), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

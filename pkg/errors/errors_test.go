package paperstash_errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("request: %w", NewStageError(StageIssueSignedURL, cause))

	assert.ErrorIs(t, err, ErrFailedCreate)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrBadInput)

	var stageErr *StageError
	assert.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageIssueSignedURL, stageErr.Stage)
	assert.Contains(t, err.Error(), "issue_signed_url")
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUnauthorized, CodeUnauthorized},
		{ErrBadInput, CodeBadInput},
		{ErrInvalidInput, CodeBadInput},
		{fmt.Errorf("wrap: %w", ErrBadInput), CodeBadInput},
		{NewStageError(StageCreateUpload, errors.New("x")), CodeFailedCreate},
		{NewStageError(StageReconcilePage, ErrInvalidInput), CodeFailedCreate},
		{NewStageError(StageIssueSignedURL, context.DeadlineExceeded), CodeFailedCreate},
		{errors.New("anything else"), CodeFailedCreate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err), tt.err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrBadInput))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewStageError(StageReconcilePage, ErrNotFound)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrAlreadyExists))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(ErrRateLimited))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(ErrServiceUnavailable))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("x")))
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad input", nil), http.StatusBadRequest},
		{NewBadRequestError("bad request", nil), http.StatusBadRequest},
		{NewAuthError("not authenticated", nil), http.StatusUnauthorized},
		{NewRateLimitedError("Wait for a bit", nil), http.StatusUnauthorized},
		{NewUnauthorizedError("no permission", nil), http.StatusForbidden},
		{NewNotFoundError("gone", nil), http.StatusNotFound},
		{NewConflictError("exists", nil), http.StatusConflict},
		{NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{NewConfigError("bad config", nil), http.StatusInternalServerError},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
		{NewExternalServiceError("upstream down", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("db down", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTypeChecks(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("gone", nil))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))

	assert.True(t, IsAuthError(NewAuthError("nope", nil)))
	assert.True(t, IsRateLimited(NewRateLimitedError("Wait for a bit", nil)))
	assert.True(t, IsConflictError(NewConflictError("exists", nil)))
	assert.True(t, IsValidationError(NewValidationError("bad", nil)))
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pension/x", nil)

	WriteError(rec, req, NewNotFoundError("pension x not found", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"pension x not found"}`, rec.Body.String())
}

// The envelope must hide the underlying error detail from clients.
func TestWriteErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, NewDatabaseError("failed to get pensions", errors.New("dial tcp: secret-host refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-host")
}

func TestWriteErrorWrapsPlainErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"an unexpected error occurred"}`, rec.Body.String())
}

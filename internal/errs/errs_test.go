package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestHTTPError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("Speaker not found", true, nil))

	assert.True(t, errors.Is(err, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}

func TestNewOperationFailedError(t *testing.T) {
	err := NewOperationFailedError("Failed to fetch events")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Failed to fetch events", err.Error())
}

func TestToResponse(t *testing.T) {
	code := "SPEAKER_REQUIRED"
	err := NewBadRequestError("Validation failed", true, &code, []FieldError{{Field: "name", Error: "is required"}}, nil)

	resp := err.ToResponse()

	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, code, resp.Code)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.True(t, resp.Override)
	assert.Len(t, resp.Errors, 1)
}

package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
	Mail string `json:"email" validate:"omitempty,email"`
}

func (p *samplePayload) Validate() error { return Struct(p) }

type customPayload struct{}

func (customPayload) Validate() error {
	return CustomValidationErrors{{Field: "url", Message: "is required"}}
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
		wantErr    bool
	}{
		{name: "valid", body: `{"id":1,"name":"Jane Doe"}`},
		{name: "missing name", body: `{"id":1}`, wantErr: true, wantFields: []string{"name"}},
		{name: "bad email and id", body: `{"name":"x","email":"nope"}`, wantErr: true, wantFields: []string{"id", "email"}},
		{name: "malformed json", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(http.MethodPost, tt.body), &samplePayload{})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.NotEmpty(t, httpErr.Message)

			var fields []string
			for _, fe := range httpErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestExtractValidationError_Custom(t *testing.T) {
	msg, fields := validateStruct(customPayload{})
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fields, 1)
	assert.Equal(t, "url", fields[0].Field)
}

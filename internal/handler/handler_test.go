package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/procurement-cms/internal/config"
	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "local"}},
		Logger: &logger,
	}
}

func serve(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	if err := h(c); err != nil {
		e.DefaultHTTPErrorHandler(err, c)
	}
	return rec
}

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []dependencyCheck
		wantCode   int
		wantStatus string
	}{
		{"all up", []dependencyCheck{{name: "database", required: true, ping: ok}, {name: "redis", ping: ok}}, http.StatusOK, "healthy"},
		{"optional down", []dependencyCheck{{name: "database", required: true, ping: ok}, {name: "redis", ping: down}}, http.StatusOK, "degraded"},
		{"required down", []dependencyCheck{{name: "database", required: true, ping: down}, {name: "redis", ping: ok}}, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Handler: NewHandler(testServer()), checks: tt.checks, timeout: time.Second}

			rec := serve(h.CheckHealth, "/status")

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, "local", body["environment"])
			assert.Len(t, body["checks"], len(tt.checks))
		})
	}
}

func TestCheckHealth_PassesTimeout(t *testing.T) {
	var deadline bool
	h := &HealthHandler{
		Handler: NewHandler(testServer()),
		timeout: 50 * time.Millisecond,
		checks: []dependencyCheck{{name: "database", required: true, ping: func(ctx context.Context) error {
			_, deadline = ctx.Deadline()
			return nil
		}}},
	}

	serve(h.CheckHealth, "/status")
	assert.True(t, deadline)
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o644))

	h := &OpenAPIHandler{Handler: NewHandler(testServer()), dir: dir}
	rec := serve(h.ServeOpenAPIUI, "/docs")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
}

func TestServeOpenAPIUI_Missing(t *testing.T) {
	h := &OpenAPIHandler{Handler: NewHandler(testServer()), dir: t.TempDir()}
	assert.Error(t, h.ServeOpenAPIUI(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())))
}

func TestEmailPreview(t *testing.T) {
	e := echo.New()
	e.GET("/dev/emails/:template", (&EmailPreviewHandler{}).Preview)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dev/emails/record_changed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dev/emails/nope", nil), httptest.NewRecorder())
	c.SetParamNames("template")
	c.SetParamValues("nope")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, (&EmailPreviewHandler{}).Preview(c), &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

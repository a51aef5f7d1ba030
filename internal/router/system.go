package router

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/deppfellow/procurement-cms/internal/config"
	"github.com/deppfellow/procurement-cms/internal/handler"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/storage"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not part of the CMS API:
// health, docs, static assets, and the dev-only helpers.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	// Memory-store URLs point back at this server.
	if s.Storage != nil && s.Storage.Driver() == storage.DriverMemory {
		r.GET(filesPath(s.Config.Storage)+"/*", handler.HandleFile(h.Upload.Handler, h.Upload.Serve, http.StatusOK,
			func() *handler.EmptyRequest { return &handler.EmptyRequest{} }))
	}

	if s.Config.Primary.Env == "local" {
		r.GET("/dev/emails/:template", h.EmailPreview.Preview)
	}
}

// filesPath is the path part of the public base URL, "/files" by default.
func filesPath(cfg *config.StorageConfig) string {
	if cfg != nil {
		if u, err := url.Parse(cfg.PublicBaseURL); err == nil && strings.Trim(u.Path, "/") != "" {
			return "/" + strings.Trim(u.Path, "/")
		}
	}
	return "/files"
}

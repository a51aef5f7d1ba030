// Package router builds the echo instance: global middlewares, system
// routes and the /api resource routes.
package router

import (
	"github.com/deppfellow/procurement-cms/internal/handler"
	"github.com/deppfellow/procurement-cms/internal/middleware"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middlewares and routes. Order matters: the request id
// comes first so every later log line carries it, and New Relic starts the
// transaction before the context enhancer reads its trace ids.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api", middlewares.RateLimit.Limit())
	registerAPIRoutes(api, h, middlewares)

	return router
}

func registerAPIRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	h.Consultants.Register(api, "/consultants")
	h.Events.Register(api, "/events")
	h.Speakers.Register(api, "/speakers")
	h.VenuePartners.Register(api, "/venue-partners")
	h.LegalCompliance.Register(api, "/legal-compliance")
	h.Procuretech.Register(api, "/procuretech")
	h.InnovationVault.Register(api, "/innovation-vault")
	h.IntelligenceReports.Register(api, "/intelligence-reports")
	h.ExclusivePartners.Register(api, "/exclusive-partners")
	h.TalentHiring.Register(api, "/talent-hiring")
	h.VipRecruitmentPartners.Register(api, "/vip-recruitment-partners")

	h.Lookups.Register(api)
	h.Upload.Register(api, m.Global.UploadBodyLimit())
}

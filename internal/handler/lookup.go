package handler

import (
	"net/http"

	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/service"
	"github.com/labstack/echo/v4"
)

// LookupHandler serves the dropdown tables (industries, locations, ...).
type LookupHandler struct {
	Handler
	service *service.LookupService
}

func NewLookupHandler(s *server.Server, svc *service.LookupService) *LookupHandler {
	return &LookupHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *LookupHandler) List(c echo.Context, req *LookupRequest) (DataResponse[[]model.LookupItem], error) {
	items, err := h.service.List(c.Request().Context(), req.Name)
	if err != nil {
		return DataResponse[[]model.LookupItem]{}, err
	}
	return DataResponse[[]model.LookupItem]{Data: items}, nil
}

func (h *LookupHandler) Add(c echo.Context, req *AddLookupRequest) (DataResponse[model.LookupItem], error) {
	item, err := h.service.Add(c.Request().Context(), req.Name, req.Value)
	if err != nil {
		return DataResponse[model.LookupItem]{}, err
	}
	return DataResponse[model.LookupItem]{Data: item}, nil
}

func (h *LookupHandler) Register(g *echo.Group) {
	g.GET("/lookups/:name", Handle(h.Handler, h.List, http.StatusOK, func() *LookupRequest { return &LookupRequest{} }))
	g.POST("/lookups/:name", Handle(h.Handler, h.Add, http.StatusCreated, func() *AddLookupRequest { return &AddLookupRequest{} }))
}

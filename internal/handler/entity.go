package handler

import (
	"net/http"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/service"
	"github.com/labstack/echo/v4"
)

// EntityHandler serves the list/add/update/delete endpoints of one
// resource. All four share one path; the method picks the operation.
type EntityHandler[T model.Entity] struct {
	Handler
	service   *service.EntityService[T]
	newRecord func() T
}

func NewEntityHandler[T model.Entity](s *server.Server, svc *service.EntityService[T], newRecord func() T) *EntityHandler[T] {
	return &EntityHandler[T]{
		Handler:   NewHandler(s),
		service:   svc,
		newRecord: newRecord,
	}
}

// Register mounts GET, POST, PUT and DELETE on path.
func (h *EntityHandler[T]) Register(g *echo.Group, path string) {
	g.GET(path, h.List())
	g.POST(path, h.Add())
	g.PUT(path, h.Update())
	g.DELETE(path, h.Delete())
}

// List returns every live record, or a single one when ?id= is given.
func (h *EntityHandler[T]) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListRequest) (any, error) {
		ctx := c.Request().Context()
		if req.ID > 0 {
			rec, err := h.service.Get(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			return DataResponse[T]{Data: rec}, nil
		}

		records, err := h.service.List(ctx)
		if err != nil {
			return nil, err
		}
		return DataResponse[[]T]{Data: records}, nil
	}, http.StatusOK, func() *ListRequest { return &ListRequest{} })
}

// Add creates a record and echoes it back with its id and timestamps.
func (h *EntityHandler[T]) Add() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, rec T) (DataResponse[T], error) {
		created, err := h.service.Add(c.Request().Context(), rec)
		if err != nil {
			return DataResponse[T]{}, err
		}
		return DataResponse[T]{Data: created}, nil
	}, http.StatusCreated, h.newRecord)
}

// Update overwrites the record named by the body's id. Fields left out of
// the body are cleared.
func (h *EntityHandler[T]) Update() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, rec T) (MessageResponse, error) {
		if rec.Meta().ID <= 0 {
			return MessageResponse{}, errs.NewBadRequestError("Validation failed", true, nil,
				[]errs.FieldError{{Field: "id", Error: "is required"}}, nil)
		}

		if err := h.service.Update(c.Request().Context(), rec); err != nil {
			return MessageResponse{}, err
		}
		return MessageResponse{Message: h.service.Name() + " updated successfully"}, nil
	}, http.StatusOK, h.newRecord)
}

func (h *EntityHandler[T]) Delete() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *DeleteRequest) (MessageResponse, error) {
		if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
			return MessageResponse{}, err
		}
		return MessageResponse{Message: h.service.Name() + " deleted successfully"}, nil
	}, http.StatusOK, func() *DeleteRequest { return &DeleteRequest{} })
}

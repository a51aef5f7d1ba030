package handler

import (
	"errors"
	"net/http"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/server"
	"github.com/deppfellow/procurement-cms/internal/service"
	"github.com/deppfellow/procurement-cms/internal/storage"
	"github.com/labstack/echo/v4"
)

// UploadHandler accepts image and document uploads and deletes them by URL.
type UploadHandler struct {
	Handler
	upload *service.UploadService
	store  storage.Store
}

func NewUploadHandler(s *server.Server, upload *service.UploadService, store storage.Store) *UploadHandler {
	return &UploadHandler{
		Handler: NewHandler(s),
		upload:  upload,
		store:   store,
	}
}

// Upload stores the multipart "file" field and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context, req *UploadRequest) (UploadResponse, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return UploadResponse{}, errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: "file", Error: "is required"}}, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return UploadResponse{}, err
	}
	defer f.Close()

	url, err := h.upload.Upload(c.Request().Context(), req.Folder, fh.Filename, fh.Header.Get(echo.HeaderContentType), f)
	if err != nil {
		return UploadResponse{}, err
	}
	return UploadResponse{URL: url}, nil
}

func (h *UploadHandler) Delete(c echo.Context, req *DeleteFileRequest) (MessageResponse, error) {
	if err := h.upload.Delete(c.Request().Context(), req.URL); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{Message: "File deleted successfully"}, nil
}

// Serve streams an object from the store. Only mounted for the memory
// driver, whose public URLs point back at this server.
func (h *UploadHandler) Serve(c echo.Context, _ *EmptyRequest) (FileResponse, error) {
	obj, body, err := h.store.Get(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			code := "FILE_NOT_FOUND"
			return FileResponse{}, errs.NewNotFoundError("File not found", true, &code)
		}
		return FileResponse{}, err
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return FileResponse{ContentType: contentType, Size: obj.Size, Body: body}, nil
}

func (h *UploadHandler) Register(g *echo.Group, bodyLimit echo.MiddlewareFunc) {
	g.POST("/upload", Handle(h.Handler, h.Upload, http.StatusOK, func() *UploadRequest { return &UploadRequest{} }), bodyLimit)
	g.POST("/upload/delete", Handle(h.Handler, h.Delete, http.StatusOK, func() *DeleteFileRequest { return &DeleteFileRequest{} }))
}

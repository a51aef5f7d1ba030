package service

import (
	"bufio"
	"context"
	"io"
	"net/http"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/logger"
	"github.com/deppfellow/procurement-cms/internal/storage"
)

// UploadService puts files into the object store and removes them by URL.
type UploadService struct {
	store storage.Store
}

func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{store: store}
}

// Upload stores r under a fresh key in folder and returns its public URL.
// When contentType is empty or generic it is sniffed from the first bytes.
func (s *UploadService) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, 512)
	if contentType == "" || contentType == "application/octet-stream" {
		head, _ := br.Peek(512)
		if len(head) > 0 {
			contentType = http.DetectContentType(head)
		}
	}

	key := storage.NewKey(folder, filename)
	obj, err := s.store.Put(ctx, key, br, contentType)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("key", key).Msg("Failed to upload file")
		return "", errs.NewOperationFailedError("Failed to upload file")
	}

	logger.FromContext(ctx).Info().
		Str("key", obj.Key).
		Str("content_type", obj.ContentType).
		Int64("size", obj.Size).
		Msg("file uploaded")

	return obj.URL, nil
}

// Delete removes the object behind rawURL. URLs the store did not issue
// are rejected; a missing object is not an error.
func (s *UploadService) Delete(ctx context.Context, rawURL string) error {
	key, ok := s.store.KeyFromURL(rawURL)
	if !ok {
		code := "INVALID_FILE_URL"
		return errs.NewBadRequestError("URL does not point to an uploaded file", true, &code, nil, nil)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("key", key).Msg("Failed to delete file")
		return errs.NewOperationFailedError("Failed to delete file")
	}

	return nil
}

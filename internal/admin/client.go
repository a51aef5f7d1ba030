// Package admin is the editor side of the CMS: a typed client for the HTTP
// API plus the form, list and card behaviour an admin panel builds on.
//
// Every mutation is a plain sequence of awaited calls followed by a full
// refetch. Nothing is cached or patched locally.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client talks to the CMS API mounted at baseURL (e.g. http://localhost:8080/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger failed actions are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload sends one file as multipart form data and returns its public URL.
func (c *Client) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			return "", err
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload", w.FormDataContentType(), &body, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// DeleteFile removes a previously uploaded file by its URL.
func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	return c.sendJSON(ctx, http.MethodPost, "/upload/delete", map[string]string{"url": fileURL}, nil)
}

// Lookup lists the values of one lookup table.
func (c *Client) Lookup(ctx context.Context, name string) ([]model.LookupItem, error) {
	var out struct {
		Data []model.LookupItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/lookups/"+url.PathEscape(name), "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(b), out)
}

// do performs the request. Non-2xx answers are decoded into *errs.HTTPError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body errs.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(resp.StatusCode)),
			Message: http.StatusText(resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}
	status := body.Status
	if status == 0 {
		status = resp.StatusCode
	}
	return &errs.HTTPError{
		Code:     body.Code,
		Message:  body.Error,
		Status:   status,
		Override: body.Override,
		Errors:   body.Errors,
		Action:   body.Action,
	}
}

// Resources binds the client to one entity collection.
type Resources[T model.Entity] struct {
	client   *Client
	resource Resource[T]
}

// For returns the typed API of one resource.
func For[T model.Entity](c *Client, r Resource[T]) *Resources[T] {
	return &Resources[T]{client: c, resource: r}
}

func (r *Resources[T]) Resource() Resource[T] { return r.resource }

func (r *Resources[T]) path() string { return "/" + r.resource.Path }

func (r *Resources[T]) List(ctx context.Context) ([]T, error) {
	var out struct {
		Data []T `json:"data"`
	}
	if err := r.client.do(ctx, http.MethodGet, r.path(), "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r *Resources[T]) Get(ctx context.Context, id int64) (T, error) {
	out := struct {
		Data T `json:"data"`
	}{Data: r.resource.New()}
	if err := r.client.do(ctx, http.MethodGet, r.path()+"?id="+strconv.FormatInt(id, 10), "", nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out.Data, nil
}

// Add creates rec and returns the stored record.
func (r *Resources[T]) Add(ctx context.Context, rec T) (T, error) {
	out := struct {
		Data T `json:"data"`
	}{Data: r.resource.New()}
	if err := r.client.sendJSON(ctx, http.MethodPost, r.path(), rec, &out); err != nil {
		var zero T
		return zero, err
	}
	return out.Data, nil
}

// Update overwrites the record with rec's id.
func (r *Resources[T]) Update(ctx context.Context, rec T) error {
	return r.client.sendJSON(ctx, http.MethodPut, r.path(), rec, nil)
}

func (r *Resources[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, r.path()+"?id="+strconv.FormatInt(id, 10), "", nil, nil)
}

// Package storage keeps uploaded images and documents in an object store.
//
// Records only ever hold the public URL of an object. Put turns a key into
// that URL and KeyFromURL turns it back, so deleting "by URL" works no
// matter which driver is configured.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/deppfellow/procurement-cms/internal/config"
	"github.com/google/uuid"
)

// Driver names a Store implementation.
type Driver string

const (
	DriverS3     Driver = "s3"
	DriverMemory Driver = "memory"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("storage: object not found")

// Object describes a stored file.
type Object struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// Store is the object store the CMS writes uploads to.
type Store interface {
	Driver() Driver
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Object, error)
	Get(ctx context.Context, key string) (Object, io.ReadCloser, error)
	// Delete is idempotent: a missing key is not an error.
	Delete(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, bool)
}

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.StorageConfig) (Store, error) {
	switch Driver(cfg.Driver) {
	case DriverS3:
		return NewS3(ctx, S3Config{
			Bucket:          cfg.Bucket,
			Region:          cfg.Region,
			Endpoint:        cfg.Endpoint,
			PathStyle:       cfg.PathStyle,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			PublicBaseURL:   cfg.PublicBaseURL,
		})
	case DriverMemory:
		return NewMemory(cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	dashes      = regexp.MustCompile(`-{2,}`)
)

// DefaultFolder is used when an upload names no folder.
const DefaultFolder = "uploads"

// NewKey builds "<folder>/<uuid>-<sanitized filename>". The uuid keeps two
// uploads of "logo.png" apart.
func NewKey(folder, filename string) string {
	folder = SanitizeFolder(folder)
	if folder == "" {
		folder = DefaultFolder
	}
	return folder + "/" + uuid.NewString() + "-" + SanitizeFilename(filename)
}

// SanitizeFilename reduces a client-supplied name to a safe key segment.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = dashes.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "file"
	}
	return strings.ToLower(name)
}

// SanitizeFolder keeps nested folders but drops empty, "." and ".." parts.
func SanitizeFolder(folder string) string {
	var parts []string
	for _, p := range strings.Split(strings.ReplaceAll(folder, "\\", "/"), "/") {
		p = strings.Trim(unsafeChars.ReplaceAllString(p, "-"), "-.")
		if p == "" {
			continue
		}
		parts = append(parts, strings.ToLower(p))
	}
	return strings.Join(parts, "/")
}

// publicURLs maps keys to URLs under a base URL and back.
type publicURLs struct {
	base string
}

func newPublicURLs(base string) publicURLs {
	return publicURLs{base: strings.TrimRight(base, "/")}
}

func (p publicURLs) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return p.base + "/" + strings.Join(segments, "/")
}

func (p publicURLs) KeyFromURL(rawURL string) (string, bool) {
	prefix := p.base + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	rest := strings.TrimPrefix(rawURL, prefix)
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return "", false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", false
		}
	}
	return key, true
}

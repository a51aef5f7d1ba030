package handler

import "github.com/deppfellow/procurement-cms/internal/validation"

// Response envelopes.
type (
	DataResponse[T any] struct {
		Data T `json:"data"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	UploadResponse struct {
		URL string `json:"url"`
	}
)

// ListRequest optionally narrows a GET to one record; zero lists all.
type ListRequest struct {
	ID int64 `query:"id" json:"id" validate:"gte=0"`
}

func (r *ListRequest) Validate() error { return validation.Struct(r) }

// DeleteRequest takes the id from the query string or a JSON body.
type DeleteRequest struct {
	ID int64 `query:"id" json:"id" validate:"required,gt=0"`
}

func (r *DeleteRequest) Validate() error { return validation.Struct(r) }

type LookupRequest struct {
	Name string `param:"name" json:"-" validate:"required"`
}

func (r *LookupRequest) Validate() error { return validation.Struct(r) }

type AddLookupRequest struct {
	Name  string `param:"name" json:"-" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (r *AddLookupRequest) Validate() error { return validation.Struct(r) }

// UploadRequest is the non-file part of the multipart upload form.
type UploadRequest struct {
	Folder string `form:"folder" json:"folder" validate:"max=200"`
}

func (r *UploadRequest) Validate() error { return validation.Struct(r) }

type DeleteFileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (r *DeleteFileRequest) Validate() error { return validation.Struct(r) }

// EmptyRequest is for endpoints whose input is only path parameters read
// directly from the context.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

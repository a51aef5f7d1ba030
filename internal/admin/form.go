package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
)

var (
	// ErrInvalid is returned by Submit when the required field is empty.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrSubmitting is returned when Submit is called while one is running.
	ErrSubmitting = errors.New("form is already submitting")
	// ErrUpload wraps every failure to store the pending file.
	ErrUpload = errors.New("upload failed")
)

// pendingFile is read into data on the first attempt so a retry after a
// failed upload sends the same bytes.
type pendingFile struct {
	field string
	name  string
	r     io.Reader
	data  []byte
}

func (p *pendingFile) body() (io.Reader, error) {
	if p.data == nil {
		b, err := io.ReadAll(p.r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p.name, err)
		}
		p.data, p.r = b, nil
	}
	return bytes.NewReader(p.data), nil
}

// Form holds the draft of one record being added or edited.
//
// The draft is keyed by JSON field name so OnChange works the same for every
// entity. It is converted to a typed record only when submitted.
type Form[T model.Entity] struct {
	api     *Resources[T]
	draft   map[string]any
	initial map[string]any
	editing bool

	invalid    map[string]bool
	pending    *pendingFile
	submitting bool

	// Refetch and Close run in that order after a successful save.
	Refetch func(ctx context.Context) error
	Close   func()
	// Alert, when set, receives a message for the admin on failure.
	Alert func(message string)
}

// NewAddForm starts a blank draft seeded from defaults.
func NewAddForm[T model.Entity](api *Resources[T], defaults map[string]any) *Form[T] {
	draft := make(map[string]any, len(defaults)+1)
	for k, v := range defaults {
		draft[k] = v
	}
	if _, ok := draft[api.resource.LabelField]; !ok {
		draft[api.resource.LabelField] = ""
	}
	return newForm(api, draft, false)
}

// NewEditForm starts a draft holding every field of rec.
func NewEditForm[T model.Entity](api *Resources[T], rec T) (*Form[T], error) {
	draft, err := toDraft(rec)
	if err != nil {
		return nil, err
	}
	return newForm(api, draft, true), nil
}

func newForm[T model.Entity](api *Resources[T], draft map[string]any, editing bool) *Form[T] {
	initial := make(map[string]any, len(draft))
	for k, v := range draft {
		initial[k] = v
	}
	return &Form[T]{
		api:     api,
		draft:   draft,
		initial: initial,
		editing: editing,
		invalid: make(map[string]bool),
	}
}

func (f *Form[T]) Editing() bool    { return f.editing }
func (f *Form[T]) Submitting() bool { return f.submitting }

// Value returns the draft value of a field.
func (f *Form[T]) Value(field string) any { return f.draft[field] }

// Invalid reports whether the last validation flagged field.
func (f *Form[T]) Invalid(field string) bool { return f.invalid[field] }

// OnChange sets a draft field. A string that becomes non-blank clears the
// field's validation flag.
func (f *Form[T]) OnChange(field string, value any) {
	f.draft[field] = value
	if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
		delete(f.invalid, field)
	}
}

// Validate checks the required name or title and flags it when blank.
func (f *Form[T]) Validate() bool {
	field := f.api.resource.LabelField
	if s, _ := f.draft[field].(string); strings.TrimSpace(s) == "" {
		f.invalid[field] = true
		return false
	}
	delete(f.invalid, field)
	return true
}

// SetFile queues a file to upload into field on the next Submit. The file
// stays queued until an upload succeeds.
func (f *Form[T]) SetFile(field, filename string, r io.Reader) {
	f.pending = &pendingFile{field: field, name: filename, r: r}
}

// Submit saves the draft: upload the pending file, delete the file it
// replaces, write the record, then refetch and close. An invalid form
// returns ErrInvalid without any network call.
func (f *Form[T]) Submit(ctx context.Context) error {
	if f.submitting {
		return ErrSubmitting
	}
	if !f.Validate() {
		return ErrInvalid
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := f.submit(ctx); err != nil {
		f.api.client.logger.Error().Err(err).
			Str("resource", f.api.resource.Name).
			Bool("editing", f.editing).
			Msg("failed to save record")
		if f.Alert != nil {
			f.Alert(alertMessage(err, "Failed to save "+strings.ToLower(f.api.resource.Name)))
		}
		return err
	}
	return nil
}

func (f *Form[T]) submit(ctx context.Context) error {
	if p := f.pending; p != nil {
		body, err := p.body()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUpload, err)
		}
		url, err := f.api.client.Upload(ctx, f.api.resource.Folder, p.name, body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUpload, err)
		}

		if old, _ := f.initial[p.field].(string); f.editing && old != "" && old != url {
			if err := f.api.client.DeleteFile(ctx, old); err != nil {
				return fmt.Errorf("failed to delete replaced file: %w", err)
			}
		}

		f.draft[p.field] = url
		f.pending = nil
	}

	rec, err := f.record()
	if err != nil {
		return err
	}

	if f.editing {
		err = f.api.Update(ctx, rec)
	} else {
		_, err = f.api.Add(ctx, rec)
	}
	if err != nil {
		return err
	}

	if f.Refetch != nil {
		if err := f.Refetch(ctx); err != nil {
			return err
		}
	}
	if f.Close != nil {
		f.Close()
	}
	return nil
}

// record converts the draft into a typed record.
func (f *Form[T]) record() (T, error) {
	rec := f.api.resource.New()
	b, err := json.Marshal(f.draft)
	if err != nil {
		return rec, fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := json.Unmarshal(b, rec); err != nil {
		return rec, fmt.Errorf("failed to build %s: %w", f.api.resource.Name, err)
	}
	return rec, nil
}

// toDraft flattens rec to its JSON fields. Numbers stay json.Number so ids
// survive the round trip exactly.
func toDraft(rec any) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	draft := make(map[string]any)
	if err := dec.Decode(&draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// fieldString reads a string field of rec by its JSON name.
func fieldString(rec any, field string) string {
	if field == "" {
		return ""
	}
	draft, err := toDraft(rec)
	if err != nil {
		return ""
	}
	s, _ := draft[field].(string)
	return s
}

func alertMessage(err error, fallback string) string {
	if errors.Is(err, ErrUpload) {
		return "Failed to upload file"
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return fallback
}

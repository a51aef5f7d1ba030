package admin

import (
	"context"
	"strings"

	"github.com/deppfellow/procurement-cms/internal/model"
)

// Container is the list view of one resource: the fetched records, a text
// filter and at most one open form.
type Container[T model.Entity] struct {
	api   *Resources[T]
	items []T
	form  *Form[T]

	// Alert is handed to every form and card the container opens.
	Alert func(message string)
}

func NewContainer[T model.Entity](api *Resources[T]) *Container[T] {
	return &Container[T]{api: api}
}

// Refetch replaces the list with the server's current one.
func (c *Container[T]) Refetch(ctx context.Context) error {
	items, err := c.api.List(ctx)
	if err != nil {
		c.api.client.logger.Error().Err(err).Str("resource", c.api.resource.Name).Msg("failed to fetch records")
		return err
	}
	c.items = items
	return nil
}

func (c *Container[T]) Items() []T { return c.items }

// Filtered returns the records where any search field contains query,
// ignoring case. A blank query returns everything.
func (c *Container[T]) Filtered(query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.items
	}

	var out []T
	for _, item := range c.items {
		for _, v := range c.api.resource.Search(item) {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Cards wraps the filtered records.
func (c *Container[T]) Cards(query string) []*Card[T] {
	items := c.Filtered(query)
	cards := make([]*Card[T], 0, len(items))
	for _, item := range items {
		cards = append(cards, &Card[T]{Record: item, container: c})
	}
	return cards
}

// Form is the open add or edit form, nil when closed.
func (c *Container[T]) Form() *Form[T] { return c.form }

// OpenAdd opens a blank form.
func (c *Container[T]) OpenAdd(defaults map[string]any) *Form[T] {
	return c.open(NewAddForm(c.api, defaults))
}

// OpenEdit opens a form pre-filled with rec.
func (c *Container[T]) OpenEdit(rec T) (*Form[T], error) {
	form, err := NewEditForm(c.api, rec)
	if err != nil {
		return nil, err
	}
	return c.open(form), nil
}

func (c *Container[T]) open(form *Form[T]) *Form[T] {
	form.Refetch = c.Refetch
	form.Close = c.CloseForm
	form.Alert = c.Alert
	c.form = form
	return form
}

func (c *Container[T]) CloseForm() { c.form = nil }

// Card is one record in the list.
type Card[T model.Entity] struct {
	Record    T
	container *Container[T]
}

func (k *Card[T]) Edit() (*Form[T], error) {
	return k.container.OpenEdit(k.Record)
}

// Delete asks confirm, deletes the record, removes its file and refetches.
// It returns false when the admin cancelled. A failed file delete is logged
// and does not undo the record delete.
func (k *Card[T]) Delete(ctx context.Context, confirm func(label string) bool) (bool, error) {
	if confirm != nil && !confirm(k.Record.Label()) {
		return false, nil
	}

	c := k.container
	logger := c.api.client.logger.With().
		Str("resource", c.api.resource.Name).
		Int64("id", k.Record.Meta().ID).
		Logger()

	if err := c.api.Delete(ctx, k.Record.Meta().ID); err != nil {
		logger.Error().Err(err).Msg("failed to delete record")
		if c.Alert != nil {
			c.Alert(alertMessage(err, "Failed to delete "+strings.ToLower(c.api.resource.Name)))
		}
		return false, err
	}

	if url := fieldString(k.Record, c.api.resource.FileField); url != "" {
		if err := c.api.client.DeleteFile(ctx, url); err != nil {
			logger.Warn().Err(err).Str("url", url).Msg("failed to delete file of deleted record")
		}
	}

	return true, c.Refetch(ctx)
}

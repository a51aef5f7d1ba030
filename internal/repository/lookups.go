package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/sqlerr"
	"github.com/rs/zerolog"
)

// LookupRepository reads and extends the id/value lookup tables.
type LookupRepository struct {
	db DBTX
}

func NewLookupRepository(db DBTX) *LookupRepository {
	return &LookupRepository{db: db}
}

// List returns every value of the lookup table, alphabetically.
func (r *LookupRepository) List(ctx context.Context, name string) ([]model.LookupItem, error) {
	if err := checkLookup(name); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf("SELECT id, value FROM %s ORDER BY value", name))
	if err != nil {
		return nil, r.fail(ctx, err, name, "Failed to fetch "+name)
	}
	defer rows.Close()

	items := make([]model.LookupItem, 0)
	for rows.Next() {
		var item model.LookupItem
		if err := rows.Scan(&item.ID, &item.Value); err != nil {
			return nil, r.fail(ctx, err, name, "Failed to fetch "+name)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, err, name, "Failed to fetch "+name)
	}

	return items, nil
}

// Add inserts a new value. Duplicates are rejected by the unique index
// and come back as a 400.
func (r *LookupRepository) Add(ctx context.Context, name, value string) (model.LookupItem, error) {
	if err := checkLookup(name); err != nil {
		return model.LookupItem{}, err
	}

	item := model.LookupItem{Value: value}
	err := r.db.QueryRow(ctx, fmt.Sprintf("INSERT INTO %s (value) VALUES ($1) RETURNING id", name), value).Scan(&item.ID)
	if err != nil {
		return model.LookupItem{}, r.fail(ctx, err, name, "Failed to add "+name+" value")
	}

	return item, nil
}

// checkLookup guards the table name, which is interpolated into SQL.
func checkLookup(name string) error {
	if !model.IsLookupTable(name) {
		code := "LOOKUP_NOT_FOUND"
		return errs.NewNotFoundError(fmt.Sprintf("Unknown lookup %q", name), true, &code)
	}
	return nil
}

func (r *LookupRepository) fail(ctx context.Context, err error, table, message string) error {
	zerolog.Ctx(ctx).Error().Err(err).Str("table", table).Msg(message)
	return sqlerr.HandleOperationError(err, message)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DBTX is the subset of pgxpool.Pool the repositories use. pgx.Tx and
// pgxmock satisfy it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Clock returns the timestamp written to created_at, updated_at and
// deleted_at.
type Clock func() time.Time

// DefaultClock is UTC with microsecond precision, matching what Postgres
// stores, so a returned record equals the one read back.
func DefaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Lookup resolves a foreign key to the display value of a lookup table.
type Lookup struct {
	Column string // e.g. industry_id
	Table  string // e.g. industries
	As     string // e.g. industry_name
}

// FileColumn holds object-store URLs; it is cleared on delete. List
// columns hold a JSON array of URLs.
type FileColumn struct {
	Name string
	List bool
}

// Table describes how one entity maps onto its table.
//
// Values returns the values for Columns, in order. Targets returns scan
// destinations for Columns followed by one per Lookup.
type Table[T model.Entity] struct {
	Name     string
	Singular string
	Plural   string
	Columns  []string
	Lookups  []Lookup
	Files    []FileColumn
	New      func() T
	Values   func(T) []any
	Targets  func(T) []any
}

// DisplayName is the capitalised singular, e.g. "Venue Partner".
func (t Table[T]) DisplayName() string {
	return cases.Title(language.English, cases.NoLower).String(t.Singular)
}

// CRUD implements list/get/add/update/soft-delete for one table.
type CRUD[T model.Entity] struct {
	db    DBTX
	table Table[T]
	now   Clock

	listSQL   string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewCRUD prepares the statements for table. A nil clock uses DefaultClock.
func NewCRUD[T model.Entity](db DBTX, table Table[T], now Clock) *CRUD[T] {
	if now == nil {
		now = DefaultClock
	}

	r := &CRUD[T]{db: db, table: table, now: now}
	r.buildSQL()
	return r
}

// Table returns the descriptor the repository was built with.
func (r *CRUD[T]) Table() Table[T] {
	return r.table
}

func (r *CRUD[T]) buildSQL() {
	t := r.table

	selectCols := make([]string, 0, len(t.Columns)+len(t.Lookups)+3)
	selectCols = append(selectCols, "t.id")
	for _, c := range t.Columns {
		selectCols = append(selectCols, "t."+c)
	}
	for i, l := range t.Lookups {
		selectCols = append(selectCols, fmt.Sprintf("l%d.value AS %s", i, l.As))
	}
	selectCols = append(selectCols, "t.created_at", "t.updated_at")

	var from strings.Builder
	fmt.Fprintf(&from, "FROM %s t", t.Name)
	for i, l := range t.Lookups {
		fmt.Fprintf(&from, " LEFT JOIN %s l%d ON l%d.id = t.%s", l.Table, i, i, l.Column)
	}

	base := "SELECT " + strings.Join(selectCols, ", ") + " " + from.String() + " WHERE t.deleted_at IS NULL"
	r.listSQL = base + " ORDER BY t.id DESC"
	r.getSQL = base + " AND t.id = $1"

	n := len(t.Columns)
	insertCols := append(append([]string{}, t.Columns...), "created_at", "updated_at")
	r.insertSQL = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.Name, strings.Join(insertCols, ", "), placeholders(1, n+2))

	sets := make([]string, 0, n+1)
	for i, c := range t.Columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", n+1))
	r.updateSQL = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND deleted_at IS NULL",
		t.Name, strings.Join(sets, ", "), n+2)

	cleared := []string{"deleted_at = $1"}
	prevCols := []string{"id"}
	returning := []string{"prev.id"}
	for _, f := range t.Files {
		cleared = append(cleared, f.Name+" = NULL")
		prevCols = append(prevCols, f.Name)
		returning = append(returning, "prev."+f.Name)
	}
	r.deleteSQL = fmt.Sprintf(
		"UPDATE %s AS t SET %s FROM (SELECT %s FROM %s WHERE id = $2 AND deleted_at IS NULL FOR UPDATE) AS prev WHERE t.id = prev.id RETURNING %s",
		t.Name, strings.Join(cleared, ", "), strings.Join(prevCols, ", "), t.Name, strings.Join(returning, ", "))
}

func placeholders(from, count int) string {
	ps := make([]string, count)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ", ")
}

func (r *CRUD[T]) scanTargets(rec T) []any {
	meta := rec.Meta()
	targets := make([]any, 0, len(r.table.Columns)+len(r.table.Lookups)+3)
	targets = append(targets, &meta.ID)
	targets = append(targets, r.table.Targets(rec)...)
	return append(targets, &meta.CreatedAt, &meta.UpdatedAt)
}

// List returns every live record, newest id first.
func (r *CRUD[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, r.listSQL)
	if err != nil {
		return nil, r.fail(ctx, err, "list", "Failed to fetch "+r.table.Plural)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec := r.table.New()
		if err := rows.Scan(r.scanTargets(rec)...); err != nil {
			return nil, r.fail(ctx, err, "list", "Failed to fetch "+r.table.Plural)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, err, "list", "Failed to fetch "+r.table.Plural)
	}

	return out, nil
}

// Get returns one live record.
func (r *CRUD[T]) Get(ctx context.Context, id int64) (T, error) {
	rec := r.table.New()
	if err := r.db.QueryRow(ctx, r.getSQL, id).Scan(r.scanTargets(rec)...); err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, r.notFound()
		}
		return zero, r.fail(ctx, err, "get", "Failed to fetch "+r.table.Singular)
	}
	return rec, nil
}

// Add inserts rec and returns it with the generated id and timestamps.
// Lookup names are not resolved; the next List does that.
func (r *CRUD[T]) Add(ctx context.Context, rec T) (T, error) {
	now := r.now()

	args := append(r.table.Values(rec), now, now)

	var id int64
	if err := r.db.QueryRow(ctx, r.insertSQL, args...).Scan(&id); err != nil {
		var zero T
		return zero, r.fail(ctx, err, "add", "Failed to add "+r.table.Singular)
	}

	meta := rec.Meta()
	meta.ID = id
	meta.CreatedAt = now
	meta.UpdatedAt = now

	return rec, nil
}

// Update overwrites every column of the live row rec.Meta().ID. Nil
// fields are written as NULL.
func (r *CRUD[T]) Update(ctx context.Context, rec T) error {
	now := r.now()
	meta := rec.Meta()

	args := append(r.table.Values(rec), now, meta.ID)

	tag, err := r.db.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return r.fail(ctx, err, "update", "Failed to update "+r.table.Singular)
	}
	if tag.RowsAffected() == 0 {
		return r.notFound()
	}

	meta.UpdatedAt = now
	return nil
}

// Delete soft-deletes the row and clears its file columns in the same
// statement. It returns the URLs that were cleared so the caller can remove
// the stored objects.
func (r *CRUD[T]) Delete(ctx context.Context, id int64) ([]string, error) {
	var deletedID int64
	files := make([]*string, len(r.table.Files))
	targets := make([]any, 0, len(files)+1)
	targets = append(targets, &deletedID)
	for i := range files {
		targets = append(targets, &files[i])
	}

	if err := r.db.QueryRow(ctx, r.deleteSQL, r.now(), id).Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFound()
		}
		return nil, r.fail(ctx, err, "delete", "Failed to delete "+r.table.Singular)
	}

	var urls []string
	for i, f := range r.table.Files {
		if files[i] == nil || *files[i] == "" {
			continue
		}
		if f.List {
			for _, u := range model.ParseStringList([]byte(*files[i])) {
				if u != "" {
					urls = append(urls, u)
				}
			}
			continue
		}
		urls = append(urls, *files[i])
	}

	return urls, nil
}

func (r *CRUD[T]) notFound() error {
	code := strings.ToUpper(strings.ReplaceAll(r.table.Singular, " ", "_")) + "_NOT_FOUND"
	return errs.NewNotFoundError(r.table.DisplayName()+" not found", true, &code)
}

// fail logs the driver error with the request logger and returns the
// client-safe version.
func (r *CRUD[T]) fail(ctx context.Context, err error, op, message string) error {
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("table", r.table.Name).
		Str("operation", op).
		Msg(message)

	return sqlerr.HandleOperationError(err, message)
}

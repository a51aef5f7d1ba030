package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRepository_List(t *testing.T) {
	mock := newMock(t)
	r := NewLookupRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, value FROM industries ORDER BY value")).
		WillReturnRows(mock.NewRows([]string{"id", "value"}).
			AddRow(int64(2), "Healthcare").
			AddRow(int64(1), "Manufacturing"))

	items, err := r.List(context.Background(), "industries")
	require.NoError(t, err)
	assert.Equal(t, []model.LookupItem{{ID: 2, Value: "Healthcare"}, {ID: 1, Value: "Manufacturing"}}, items)
}

func TestLookupRepository_UnknownTable(t *testing.T) {
	r := NewLookupRepository(newMock(t))

	_, err := r.List(context.Background(), "users; DROP TABLE speakers")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))

	_, err = r.Add(context.Background(), "pg_user", "x")
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestLookupRepository_Add(t *testing.T) {
	mock := newMock(t)
	r := NewLookupRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO locations (value) VALUES ($1) RETURNING id")).
		WithArgs("Berlin").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(11)))

	item, err := r.Add(context.Background(), "locations", "Berlin")
	require.NoError(t, err)
	assert.Equal(t, model.LookupItem{ID: 11, Value: "Berlin"}, item)

	mock.ExpectQuery("INSERT INTO locations").
		WithArgs("Berlin").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "locations", ConstraintName: "locations_value_key"})

	_, err = r.Add(context.Background(), "locations", "Berlin")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	assert.Equal(t, "A location with this Value already exists", err.Error())
}

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/procurement-cms/internal/database"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDatabaseURLEnv points the integration tests at a disposable database.
const TestDatabaseURLEnv = "PROCURECMS_TEST_DATABASE_URL"

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("Skipping integration test. Set %s to run.", TestDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := zerolog.Nop()
	require.NoError(t, database.MigrateDSN(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func findSpeaker(list []*model.Speaker, id int64) *model.Speaker {
	for _, s := range list {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func TestIntegration_SpeakerLifecycle(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := New(pool, nil)

	added, err := repos.Speakers.Add(ctx, &model.Speaker{Name: "Jane Doe", Company: ptr("Acme")})
	require.NoError(t, err)
	require.NotZero(t, added.ID)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM speakers WHERE id = $1", added.ID)
	})

	list, err := repos.Speakers.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, added.ID, list[0].ID, "newest record is listed first")
	assert.Equal(t, "Jane Doe", list[0].Name)
	assert.Equal(t, "Acme", *list[0].Company)
	assert.Nil(t, list[0].Img)

	firstUpdated := list[0].UpdatedAt
	time.Sleep(2 * time.Millisecond)

	edit := list[0]
	edit.Company = ptr("Acme Corp")
	require.NoError(t, repos.Speakers.Update(ctx, edit))

	got, err := repos.Speakers.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Acme Corp", *got.Company)
	assert.True(t, got.UpdatedAt.After(firstUpdated))

	_, err = repos.Speakers.Delete(ctx, added.ID)
	require.NoError(t, err)

	list, err = repos.Speakers.List(ctx)
	require.NoError(t, err)
	assert.Nil(t, findSpeaker(list, added.ID))
}

func TestIntegration_UpdateNullsOmittedFields(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := New(pool, nil)

	added, err := repos.Speakers.Add(ctx, &model.Speaker{Name: "Sam", Title: ptr("CPO"), Bio: ptr("Bio")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM speakers WHERE id = $1", added.ID)
	})

	require.NoError(t, repos.Speakers.Update(ctx, &model.Speaker{Base: model.Base{ID: added.ID}, Name: "Sam"}))

	got, err := repos.Speakers.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Title)
	assert.Nil(t, got.Bio)
}

func TestIntegration_ArraysRoundTripAndLookupNames(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := New(pool, nil)

	industries, err := repos.Lookups.List(ctx, model.LookupIndustries)
	require.NoError(t, err)
	require.NotEmpty(t, industries)

	added, err := repos.ExclusivePartners.Add(ctx, &model.ExclusivePartner{
		Name:        "Acme",
		KeyFeatures: model.StringList{"A", "B"},
		IndustryID:  &industries[0].ID,
		Logo:        ptr("https://cdn.example.com/logo.png"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM exclusive_partners WHERE id = $1", added.ID)
	})

	got, err := repos.ExclusivePartners.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"A", "B"}, got.KeyFeatures)
	require.NotNil(t, got.IndustryName)
	assert.Equal(t, industries[0].Value, *got.IndustryName)

	urls, err := repos.ExclusivePartners.Delete(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/logo.png"}, urls)

	var logo *string
	require.NoError(t, pool.QueryRow(ctx, "SELECT logo FROM exclusive_partners WHERE id = $1", added.ID).Scan(&logo))
	assert.Nil(t, logo, "file column is cleared on delete")

	_, err = repos.ExclusivePartners.Delete(ctx, added.ID)
	assert.Error(t, err, "deleting twice reports not found")
}

package catalog_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/modules/catalog"
	"github.com/dmitrymomot/rowfilter/pkg/logger"
	"github.com/dmitrymomot/rowfilter/pkg/pg"
)

// TestPGStorage runs against a disposable database named by CATALOG_TEST_PG_URL.
func TestPGStorage(t *testing.T) {
	connURL := os.Getenv("CATALOG_TEST_PG_URL")
	if connURL == "" {
		t.Skip("CATALOG_TEST_PG_URL is not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString: connURL,
		RetryAttempts:    1,
		MigrationsTable:  "catalog_test_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, cfg, catalog.Migrations(), logger.Discard()))
	require.NoError(t, pg.Healthcheck(pool)(ctx))

	storage := catalog.NewPGStorage(pool)

	students, err := storage.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Alice", students[0].Name)

	books, err := storage.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, len(catalog.SeedBooks()))

	librarians, err := storage.ListLibrarians(ctx)
	require.NoError(t, err)
	require.Len(t, librarians, len(catalog.SeedLibrarians()))
	for i, want := range []string{"Meera Nayak", "Priya Shetty", "Rahul Kamath"} {
		assert.Equal(t, want, librarians[i].Name)
	}
	assert.True(t, librarians[1].JoinDate.Equal(catalog.SeedLibrarians()[0].JoinDate))
}

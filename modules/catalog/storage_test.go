package catalog_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/modules/catalog"
)

func TestMemoryStorageSortsListings(t *testing.T) {
	t.Parallel()

	s := catalog.NewMemoryStorage(catalog.SeedBooks(), []catalog.Student{
		{ID: 1, Name: "Charlie"},
		{ID: 2, Name: "Alice"},
		{ID: 3, Name: "Bob"},
	}, catalog.SeedLibrarians())

	students, err := s.ListStudents(context.Background())
	require.NoError(t, err)
	names := make([]string, len(students))
	for i, st := range students {
		names[i] = st.Name
	}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)

	books, err := s.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 5)
	assert.Equal(t, "Database System Concepts", books[0].Title)

	librarians, err := s.ListLibrarians(context.Background())
	require.NoError(t, err)
	require.Len(t, librarians, 3)
	assert.Equal(t, "Meera Nayak", librarians[0].Name)
}

func TestMemoryStorageHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.NewMemoryStorage(nil, nil, nil).ListBooks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStorageAddBookAssignsID(t *testing.T) {
	t.Parallel()

	s := catalog.NewMemoryStorage(nil, nil, nil)
	s.AddBook(catalog.Book{Title: "A"})
	s.AddBook(catalog.Book{Title: "B"})

	books, err := s.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(2), books[1].ID)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(catalog.Migrations(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_catalog.sql", "00002_seed_catalog.sql", "00003_create_librarians.sql"}, names)
}

package rowfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/pkg/rowfilter"
)

type memDocument struct {
	inputs map[string]string
	tables map[string]rowfilter.Table
}

func (d memDocument) InputValue(id string) (string, bool) {
	v, ok := d.inputs[id]
	return v, ok
}

func (d memDocument) Table(id string) (rowfilter.Table, bool) {
	t, ok := d.tables[id]
	return t, ok
}

func TestFilterByID(t *testing.T) {
	t.Parallel()

	t.Run("filters the named table with the named input", func(t *testing.T) {
		t.Parallel()
		grid := names()
		doc := memDocument{
			inputs: map[string]string{rowfilter.DefaultInputID: "li"},
			tables: map[string]rowfilter.Table{rowfilter.DefaultTableID: grid},
		}

		stats, err := rowfilter.FilterByID(doc, rowfilter.DefaultInputID, rowfilter.DefaultTableID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Charlie"}, grid.VisibleRows())
		assert.Equal(t, 2, stats.Shown)
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()
		grid := names()
		doc := memDocument{tables: map[string]rowfilter.Table{"table": grid}}

		_, err := rowfilter.FilterByID(doc, "search-box", "table")
		require.ErrorIs(t, err, rowfilter.ErrInputNotFound)
		assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, grid.VisibleRows(), "table untouched")
	})

	t.Run("missing table", func(t *testing.T) {
		t.Parallel()
		doc := memDocument{inputs: map[string]string{"search-box": "a"}}

		_, err := rowfilter.FilterByID(doc, "search-box", "table")
		require.ErrorIs(t, err, rowfilter.ErrTableNotFound)
		assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)
	})

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()
		_, err := rowfilter.FilterByID(nil, "search-box", "table")
		assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)
	})

	t.Run("nil document pointer", func(t *testing.T) {
		t.Parallel()
		var doc *memDocument
		_, err := rowfilter.FilterByID(doc, "search-box", "table")
		assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)
	})

	t.Run("nil table pointer", func(t *testing.T) {
		t.Parallel()
		var grid *rowfilter.Grid
		doc := memDocument{
			inputs: map[string]string{"search-box": "a"},
			tables: map[string]rowfilter.Table{"table": grid},
		}

		_, err := rowfilter.FilterByID(doc, "search-box", "table")
		require.ErrorIs(t, err, rowfilter.ErrTableNotFound)
		assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)
	})
}

package htmltable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/pkg/htmltable"
	"github.com/dmitrymomot/rowfilter/pkg/rowfilter"
)

const page = `<!DOCTYPE html>
<html><body>
<input type="text" id="search-box" value="li">
<table id="table">
  <thead><tr><th>Name</th><th>Dept</th></tr></thead>
  <tbody>
    <tr><td>Alice</td><td>CS</td></tr>
    <tr style="color: red; display: none"><td>Bob</td><td>EE</td></tr>
    <tr><td><b>Char</b>lie</td><td>ME</td></tr>
  </tbody>
</table>
</body></html>`

func visibility(t *testing.T, doc *htmltable.Document) []bool {
	t.Helper()
	table, ok := doc.Table("table")
	require.True(t, ok)
	var out []bool
	for _, row := range table.Rows() {
		out = append(out, row.Visible())
	}
	return out
}

func TestFilterByID(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(page)
	require.NoError(t, err)

	stats, err := rowfilter.FilterByID(doc, rowfilter.DefaultInputID, rowfilter.DefaultTableID)
	require.NoError(t, err)
	assert.Equal(t, rowfilter.Stats{Shown: 2, Hidden: 1, Skipped: 1}, stats)
	assert.Equal(t, []bool{true, true, false, true}, visibility(t, doc))

	out := doc.String()
	assert.Contains(t, out, `<tr style="color: red; display: none"><td>Bob</td>`)
	assert.Contains(t, out, `<tr><td>Alice</td>`)
}

func TestFilterShowsPreviouslyHiddenRows(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(page)
	require.NoError(t, err)
	require.True(t, doc.SetInputValue("search-box", "bob"))

	_, err = rowfilter.FilterByID(doc, "search-box", "table")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, visibility(t, doc))

	out := doc.String()
	assert.Contains(t, out, `<tr style="color: red"><td>Bob</td>`)
	assert.Contains(t, out, `<tr style="display: none"><td>Alice</td>`)
}

func TestFilterEmptyQueryShowsAllAndDropsStyle(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(`<table id="table">
		<tr style="display:none"><td>Alice</td></tr>
		<tr><td>Bob</td></tr></table>
		<input id="search-box">`)
	require.NoError(t, err)

	_, err = rowfilter.FilterByID(doc, "search-box", "table")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, visibility(t, doc))
	assert.NotContains(t, doc.String(), "style=")
}

func TestFirstCellUsesTextContent(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(`<table id="table"><tr><td><span>Char</span>lie</td><td>x</td></tr></table>`)
	require.NoError(t, err)

	table, ok := doc.Table("table")
	require.True(t, ok)
	rows := table.Rows()
	require.Len(t, rows, 1)
	c, ok := rows[0].FirstCell()
	require.True(t, ok)
	assert.Equal(t, "Charlie", c.Text())
}

func TestFirstCellIgnoresScriptAndStyle(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(`<input id="search-box" value="alice">
		<table id="table">
		<tr><td>Bob<script>var alice = 1</script></td></tr>
		<tr><td><style>.alice{}</style>Carol<template>alice</template></td></tr>
		<tr><td>Alice</td></tr>
		</table>`)
	require.NoError(t, err)

	table, _ := doc.Table("table")
	c, ok := table.Rows()[0].FirstCell()
	require.True(t, ok)
	assert.Equal(t, "Bob", c.Text())

	stats, err := rowfilter.FilterByID(doc, "search-box", "table")
	require.NoError(t, err)
	assert.Equal(t, rowfilter.Stats{Shown: 1, Hidden: 2}, stats)
	assert.Equal(t, []bool{false, false, true}, visibility(t, doc))
}

func TestNilDocument(t *testing.T) {
	t.Parallel()

	var doc *htmltable.Document

	_, err := rowfilter.FilterByID(doc, "search-box", "table")
	assert.ErrorIs(t, err, rowfilter.ErrElementNotFound)

	_, ok := doc.InputValue("search-box")
	assert.False(t, ok)
	_, ok = doc.Table("table")
	assert.False(t, ok)
	assert.False(t, doc.SetInputValue("search-box", "x"))
	assert.Empty(t, doc.String())
	assert.Empty(t, (*htmltable.Table)(nil).Rows())
}

func TestHeaderRowsAreSkipped(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(`<table id="table">
		<tr style="display: none"><th>Name</th></tr>
		<tr><td>Alice</td></tr></table>`)
	require.NoError(t, err)

	table, _ := doc.Table("table")
	stats, err := rowfilter.Apply("", table)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, []bool{false, true}, visibility(t, doc), "header row keeps its hidden state")
}

func TestMissingElements(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.ParseString(`<table id="other"><tr><td>A</td></tr></table>`)
	require.NoError(t, err)

	_, err = rowfilter.FilterByID(doc, "search-box", "table")
	assert.ErrorIs(t, err, rowfilter.ErrInputNotFound)

	require.False(t, doc.SetInputValue("search-box", "x"))

	doc, err = htmltable.ParseString(`<input id="search-box" value="a">`)
	require.NoError(t, err)
	_, err = rowfilter.FilterByID(doc, "search-box", "table")
	assert.ErrorIs(t, err, rowfilter.ErrTableNotFound)
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc, err := htmltable.Parse(strings.NewReader(`<p id="x">hi</p>`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, `<html><head></head><body><p id="x">hi</p></body></html>`, buf.String())
}

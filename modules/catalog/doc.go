// Package catalog serves the library catalog as searchable HTML tables.
//
// Each listing (books, students, librarians) is rendered as a table with id "table"
// below a search input with id "search-box". The first column is the search
// key: on every request the rows are run through rowfilter, and rows that do
// not match the query are rendered with "display: none", exactly as the
// browser-side filter would leave them.
//
// Regular requests receive the full page. DataStar requests, issued by the
// search input on every keystroke, receive only the table body and the row
// counter as element patches.
//
//	svc := catalog.NewService(catalog.NewSeededMemoryStorage(), catalog.DefaultViews(""), log)
//	r.Mount("/", svc.Handle())
package catalog

// Package rowfilter hides and shows table rows by matching a search query
// against the text of each row's first cell.
//
// The package is deliberately small: a Table is any ordered list of rows, a
// Row exposes its first cell and a visibility flag, and Filter walks the rows
// once, setting each flag. Rows without a first cell (header or spacer rows)
// are left as they are.
//
// # Matching
//
// Both the query and the cell text are folded to upper case before a plain
// substring test. An empty query matches every row.
//
//	rowfilter.Match("li", "Alice")   // true
//	rowfilter.Match("XYZ", "Alice")  // false
//	rowfilter.Match("", "anything")  // true
//
// # Usage
//
//	grid := rowfilter.NewGrid([][]string{
//	    {"Alice", "CS"},
//	    {"Bob", "EE"},
//	    {"Charlie", "ME"},
//	})
//	if err := rowfilter.Filter("li", grid); err != nil {
//	    return err
//	}
//	// grid.VisibleRows() == ["Alice", "Charlie"]
//
// Documents that locate the search input and the table by identifier satisfy
// the Document interface and can be filtered in one call:
//
//	stats, err := rowfilter.FilterByID(doc, rowfilter.DefaultInputID, rowfilter.DefaultTableID)
//	if errors.Is(err, rowfilter.ErrElementNotFound) {
//	    // input or table is missing
//	}
//
// # Concurrency
//
// Filter runs synchronously and mutates the rows it is given. Callers must not
// filter the same Table from several goroutines at once.
package rowfilter

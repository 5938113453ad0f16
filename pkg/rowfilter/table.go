package rowfilter

import "reflect"

// Cell is a single element of a row addressable by position.
type Cell interface {
	Text() string
}

// Row is one entry of a table. The filter reads the first cell and
// mutates only the visibility flag.
type Row interface {
	// FirstCell returns the cell at position 0 and false if the row has none.
	FirstCell() (Cell, bool)
	Visible() bool
	SetVisible(visible bool)
}

// Table is an ordered sequence of rows.
type Table interface {
	Rows() []Row
}

// Document locates the search input and tables by identifier.
type Document interface {
	// InputValue returns the current value of the input with the given id.
	InputValue(id string) (string, bool)
	// Table returns the table with the given id.
	Table(id string) (Table, bool)
}

// isNil reports whether v is nil or holds a nil pointer or func, so that a
// typed nil table or document is reported as not found.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

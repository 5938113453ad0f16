package rowfilter

const (
	// DefaultInputID is the identifier of the search input.
	DefaultInputID = "search-box"
	// DefaultTableID is the identifier of the filtered table.
	DefaultTableID = "table"
)

// Stats summarizes a single filter pass.
type Stats struct {
	Shown   int // rows with a first cell that matched
	Hidden  int // rows with a first cell that did not match
	Skipped int // rows without a first cell, left unchanged
}

// Total returns the number of rows visited.
func (s Stats) Total() int {
	return s.Shown + s.Hidden + s.Skipped
}

// Filter sets every row of table visible iff its first cell contains query,
// ignoring case. Rows without a first cell keep their visibility.
// It returns ErrTableNotFound if table is nil or a nil pointer.
func Filter(query string, table Table) error {
	_, err := Apply(query, table)
	return err
}

// Apply works like Filter and reports how many rows were shown, hidden and skipped.
func Apply(query string, table Table) (Stats, error) {
	var stats Stats
	if isNil(table) {
		return stats, ErrTableNotFound
	}

	folded := Fold(query)
	for _, row := range table.Rows() {
		if row == nil {
			stats.Skipped++
			continue
		}
		cell, ok := row.FirstCell()
		if !ok || cell == nil {
			stats.Skipped++
			continue
		}
		if matchFolded(folded, cell.Text()) {
			row.SetVisible(true)
			stats.Shown++
		} else {
			row.SetVisible(false)
			stats.Hidden++
		}
	}
	return stats, nil
}

// FilterByID reads the query from the input inputID of doc and filters the
// table tableID with it. Missing elements are reported as ErrInputNotFound or
// ErrTableNotFound, both matching ErrElementNotFound.
func FilterByID(doc Document, inputID, tableID string) (Stats, error) {
	if isNil(doc) {
		return Stats{}, ErrElementNotFound
	}
	query, ok := doc.InputValue(inputID)
	if !ok {
		return Stats{}, ErrInputNotFound
	}
	table, ok := doc.Table(tableID)
	if !ok || isNil(table) {
		return Stats{}, ErrTableNotFound
	}
	return Apply(query, table)
}

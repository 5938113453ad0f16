package rowfilter

// textCell is a Cell backed by a plain string.
type textCell string

func (c textCell) Text() string { return string(c) }

// GridRow is an in-memory row. Hidden is the zero-value-friendly inverse of
// the visibility flag so freshly built rows are shown.
type GridRow struct {
	Cells  []string
	Hidden bool
}

// FirstCell returns the cell at position 0.
func (r *GridRow) FirstCell() (Cell, bool) {
	if len(r.Cells) == 0 {
		return nil, false
	}
	return textCell(r.Cells[0]), true
}

// Visible reports whether the row is shown.
func (r *GridRow) Visible() bool { return !r.Hidden }

// SetVisible shows or hides the row.
func (r *GridRow) SetVisible(visible bool) { r.Hidden = !visible }

// Grid is an in-memory Table.
type Grid struct {
	rows []*GridRow
}

// NewGrid builds a Grid from rows of cell texts. A nil or empty inner slice
// produces a row without cells.
func NewGrid(rows [][]string) *Grid {
	g := &Grid{rows: make([]*GridRow, 0, len(rows))}
	for _, cells := range rows {
		g.Append(cells...)
	}
	return g
}

// Append adds a visible row with the given cells and returns it.
func (g *Grid) Append(cells ...string) *GridRow {
	row := &GridRow{Cells: append([]string(nil), cells...)}
	g.rows = append(g.rows, row)
	return row
}

// Rows implements Table. A nil Grid has no rows.
func (g *Grid) Rows() []Row {
	if g == nil {
		return nil
	}
	out := make([]Row, len(g.rows))
	for i, r := range g.rows {
		out[i] = r
	}
	return out
}

// Row returns the i-th row.
func (g *Grid) Row(i int) *GridRow { return g.rows[i] }

// Len returns the number of rows.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// VisibleRows returns the first-cell text of every visible row that has one.
func (g *Grid) VisibleRows() []string {
	var out []string
	for _, r := range g.rows {
		if r.Visible() && len(r.Cells) > 0 {
			out = append(out, r.Cells[0])
		}
	}
	return out
}

package tables

import (
	"fmt"
)

// Table is an ordered collection of rows with named columns. All cell
// values are text; numeric interpretation is left to the consumer.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates a table from a header and row data. Rows shorter than
// the header are padded with blank cells, longer rows are truncated,
// so every row has exactly one cell per column.
func New(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("duplicate column %q in header", col)
		}
		index[col] = i
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(columns))
		copy(cells, row)
		normalized[i] = cells
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    normalized,
	}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the value at the given row for the named column. It
// panics if the column does not exist; callers are expected to have
// validated columns up front.
func (t *Table) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		panic(fmt.Sprintf("tables: unknown column %q", column))
	}
	return t.rows[row][i]
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) []string {
	i, ok := t.index[name]
	if !ok {
		panic(fmt.Sprintf("tables: unknown column %q", name))
	}
	values := make([]string, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values
}

// Row is a view of a single table row, used by filter predicates.
type Row struct {
	table *Table
	i     int
}

// Get returns the row's value for the named column.
func (r Row) Get(column string) string {
	return r.table.Cell(r.i, column)
}

// Filter returns a new table containing the rows for which pred is
// true. The source table is unchanged.
func (t *Table) Filter(pred func(Row) bool) *Table {
	var rows [][]string
	for i := range t.rows {
		if pred(Row{table: t, i: i}) {
			rows = append(rows, t.rows[i])
		}
	}
	out, _ := New(t.columns, rows)
	return out
}

// CountWhere returns the number of rows for which pred is true.
func (t *Table) CountWhere(pred func(Row) bool) int {
	n := 0
	for i := range t.rows {
		if pred(Row{table: t, i: i}) {
			n++
		}
	}
	return n
}

// Select returns a new table restricted to the named columns, in the
// order given.
func (t *Table) Select(columns ...string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, col := range columns {
		idx, ok := t.index[col]
		if !ok {
			return nil, fmt.Errorf("select: unknown column %q", col)
		}
		indices[i] = idx
	}

	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells := make([]string, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		rows[r] = cells
	}

	return New(columns, rows)
}

// Records returns the row data as a slice of string slices, suitable
// for handing to a writer. The returned slices are copies.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.rows))
	for i, row := range t.rows {
		records[i] = append([]string(nil), row...)
	}
	return records
}

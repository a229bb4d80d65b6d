package tables

import (
	"fmt"
	"strings"
)

// StudentID is a normalized student identifier: leading zeros
// stripped, so "00123" and "123" compare equal. Metric functions key
// their set intersections on this type rather than on raw cell text,
// which keeps un-normalized identifiers out of joins.
type StudentID string

// NormalizeID strips leading zeros from a raw identifier cell. An
// all-zero identifier normalizes to the empty StudentID, which set
// construction treats as missing.
func NormalizeID(raw string) StudentID {
	return StudentID(strings.TrimLeft(raw, "0"))
}

// IDSet collects the distinct non-blank identifiers of a column into a
// set. Values are normalized on the way in, so the set is safe to
// intersect with any other IDSet regardless of the source table's
// formatting.
func IDSet(t *Table, column string) map[StudentID]struct{} {
	set := make(map[StudentID]struct{})
	for _, raw := range t.Column(column) {
		id := NormalizeID(raw)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// Intersect returns the intersection of two identifier sets.
func Intersect(a, b map[StudentID]struct{}) map[StudentID]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[StudentID]struct{})
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// NormalizeIDs returns a copy of the table with leading zeros stripped
// from the identifier column. The source table is unchanged.
func NormalizeIDs(t *Table, column string) (*Table, error) {
	idx, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("%s column is not present in the table", column)
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := append([]string(nil), row...)
		cells[idx] = string(NormalizeID(cells[idx]))
		rows[i] = cells
	}

	return New(t.columns, rows)
}

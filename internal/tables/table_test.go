package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(
		[]string{"ID", "Academic Period", "Time Status"},
		[][]string{
			{"00123", "202580", "FT"},
			{"456", "202580", "PT"},
			{"789", "202480", "FT"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNew(t *testing.T) {
	t.Run("pads short rows", func(t *testing.T) {
		tbl, err := New([]string{"A", "B", "C"}, [][]string{{"1"}})
		require.NoError(t, err)
		assert.Equal(t, "", tbl.Cell(0, "B"))
		assert.Equal(t, "", tbl.Cell(0, "C"))
	})

	t.Run("truncates long rows", func(t *testing.T) {
		tbl, err := New([]string{"A"}, [][]string{{"1", "extra"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, tbl.Records()[0])
	})

	t.Run("rejects duplicate columns", func(t *testing.T) {
		_, err := New([]string{"A", "A"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate column")
	})
}

func TestTableAccessors(t *testing.T) {
	tbl := newTestTable(t)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"ID", "Academic Period", "Time Status"}, tbl.Columns())
	assert.True(t, tbl.HasColumn("Time Status"))
	assert.False(t, tbl.HasColumn("Degree"))
	assert.Equal(t, "456", tbl.Cell(1, "ID"))
	assert.Equal(t, []string{"202580", "202580", "202480"}, tbl.Column("Academic Period"))
}

func TestFilter(t *testing.T) {
	tbl := newTestTable(t)

	filtered := tbl.Filter(func(r Row) bool {
		return r.Get("Academic Period") == "202580" && r.Get("Time Status") == "FT"
	})

	assert.Equal(t, 1, filtered.Len())
	assert.Equal(t, "00123", filtered.Cell(0, "ID"))
	// source table unchanged
	assert.Equal(t, 3, tbl.Len())
}

func TestCountWhere(t *testing.T) {
	tbl := newTestTable(t)
	n := tbl.CountWhere(func(r Row) bool { return r.Get("Time Status") == "FT" })
	assert.Equal(t, 2, n)
}

func TestSelect(t *testing.T) {
	tbl := newTestTable(t)

	projected, err := tbl.Select("Time Status", "ID")
	require.NoError(t, err)
	assert.Equal(t, []string{"Time Status", "ID"}, projected.Columns())
	assert.Equal(t, [][]string{{"FT", "00123"}, {"PT", "456"}, {"FT", "789"}}, projected.Records())

	_, err = tbl.Select("Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown column "Nope"`)
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		raw      string
		expected StudentID
	}{
		{"00123", "123"},
		{"123", "123"},
		{"0000", ""},
		{"", ""},
		{"10", "10"},
		{"0102030", "102030"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeID(tt.raw), "raw %q", tt.raw)
	}
}

func TestIDSet(t *testing.T) {
	tbl, err := New([]string{"ID"}, [][]string{
		{"00123"}, {"123"}, {"456"}, {"0000"}, {""},
	})
	require.NoError(t, err)

	set := IDSet(tbl, "ID")
	// duplicates collapse after normalization and blank/all-zero IDs drop
	assert.Len(t, set, 2)
	assert.Contains(t, set, StudentID("123"))
	assert.Contains(t, set, StudentID("456"))
}

func TestIntersect(t *testing.T) {
	a := map[StudentID]struct{}{"1": {}, "2": {}, "3": {}}
	b := map[StudentID]struct{}{"2": {}, "3": {}, "4": {}}

	got := Intersect(a, b)
	assert.Len(t, got, 2)
	assert.Contains(t, got, StudentID("2"))
	assert.Contains(t, got, StudentID("3"))

	assert.Empty(t, Intersect(a, map[StudentID]struct{}{}))
}

func TestNormalizeIDs(t *testing.T) {
	tbl, err := New([]string{"ID", "Value"}, [][]string{
		{"00123", "a"},
		{"0000", "b"},
	})
	require.NoError(t, err)

	normalized, err := NormalizeIDs(tbl, "ID")
	require.NoError(t, err)
	assert.Equal(t, "123", normalized.Cell(0, "ID"))
	assert.Equal(t, "", normalized.Cell(1, "ID"))
	assert.Equal(t, "a", normalized.Cell(0, "Value"))
	// source table unchanged
	assert.Equal(t, "00123", tbl.Cell(0, "ID"))

	_, err = NormalizeIDs(tbl, "Student")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Student column is not present")
}

func TestValidateColumns(t *testing.T) {
	tbl := newTestTable(t)

	t.Run("passes with required plus identifier present", func(t *testing.T) {
		err := ValidateColumns(tbl, "ID", []string{"Academic Period", "Time Status"})
		require.NoError(t, err)
	})

	t.Run("names every missing column", func(t *testing.T) {
		err := ValidateColumns(tbl, "Person Uid", []string{"Degree", "Student Level"})
		require.Error(t, err)

		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"Degree", "Person Uid", "Student Level"}, missing.Columns)
		assert.Equal(t, "missing required columns: [Degree, Person Uid, Student Level]", err.Error())
	})

	t.Run("identifier column alone", func(t *testing.T) {
		err := ValidateColumns(tbl, "ID", nil)
		require.NoError(t, err)
	})
}

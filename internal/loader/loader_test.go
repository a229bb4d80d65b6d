package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestValidateExtension(t *testing.T) {
	for _, ext := range []string{".csv", ".txt", ".xlsx"} {
		got, err := ValidateExtension(ext)
		require.NoError(t, err)
		assert.Equal(t, ext, got)
	}

	_, err := ValidateExtension(".gibberish")
	require.Error(t, err)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".gibberish", unsupported.Ext)
	assert.Contains(t, err.Error(), ".xlsx")
}

func TestReadTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pell.csv")
	content := "ID,AID_YEAR\n00123,2526\n456,2425\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "AID_YEAR"}, tbl.Columns())
	assert.Equal(t, 2, tbl.Len())
	// cells stay text, zeros untouched
	assert.Equal(t, "00123", tbl.Cell(0, "ID"))
}

func TestReadTableCSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pell.csv")
	content := "\xEF\xBB\xBFID,AID_YEAR\n123,2526\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("ID"))
}

func TestReadTableTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollment.txt")
	content := "ID\tAcademic Period\n123\t202580\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Academic Period"}, tbl.Columns())
	assert.Equal(t, "202580", tbl.Cell(0, "Academic Period"))
}

func TestReadTableXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retention.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ID", "Cohort Name"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"00123", "2025 Fall, First-Time, Full-Time"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Cohort Name"}, tbl.Columns())
	assert.Equal(t, "00123", tbl.Cell(0, "ID"))
	assert.Equal(t, "2025 Fall, First-Time, Full-Time", tbl.Cell(0, "Cohort Name"))
}

func TestReadTableShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "ID,Cohort Name,Years to Graduation\n123,\"2025 Fall, First-Time, Full-Time\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "", tbl.Cell(0, "Years to Graduation"))
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file does not exist")
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.parquet")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := ReadTable(path)
	require.Error(t, err)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".parquet", unsupported.Ext)
}

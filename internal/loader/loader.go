// Package loader reads the institutional source files into tables.
// The file format is inferred from the extension; every cell is loaded
// as text regardless of what the spreadsheet thinks the type is.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"pellcli/internal/tables"
)

// allowedExtensions are the input and output file types the pipeline
// understands.
var allowedExtensions = []string{".csv", ".txt", ".xlsx"}

// UnsupportedTypeError reports a file extension outside the allowed
// set.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: allowed extensions are [%s]",
		e.Ext, strings.Join(allowedExtensions, ", "))
}

// ValidateExtension checks that ext (including the leading dot) is an
// allowed file type and returns it unchanged.
func ValidateExtension(ext string) (string, error) {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", &UnsupportedTypeError{Ext: ext}
}

// ReadTable infers the file type of path from its extension and loads
// it as a table. The first row is the header; .txt files are read as
// tab-separated.
func ReadTable(path string) (*tables.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file does not exist: %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return readExcel(path)
	case ".csv":
		return readDelimited(path, ',')
	case ".txt":
		return readDelimited(path, '\t')
	default:
		return nil, &UnsupportedTypeError{Ext: ext}
	}
}

func readExcel(path string) (*tables.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s contains no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q has no header row", path, sheets[0])
	}

	return tables.New(rows[0], rows[1:])
}

func readDelimited(path string, comma rune) (*tables.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	// Writers aimed at Excel prefix a UTF-8 BOM; strip it so the first
	// column name compares clean.
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")

	return tables.New(records[0], records[1:])
}

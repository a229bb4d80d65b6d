package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"pellcli/internal/loader"
	"pellcli/internal/tables"
)

// ResultsSheet is the worksheet name results land on in xlsx output.
const ResultsSheet = "Report Output"

// Writer writes tables to report files.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a table writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteTable writes the table to path, dispatching on the file
// extension. Unsupported extensions are rejected before anything is
// created on disk.
func (w *Writer) WriteTable(path string, t *tables.Table) error {
	ext, err := loader.ValidateExtension(strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w.logger.Info("writing table",
		slog.String("path", path),
		slog.Int("rows", t.Len()))

	switch ext {
	case ".csv":
		return w.writeDelimited(path, t, ',', true)
	case ".txt":
		return w.writeDelimited(path, t, '\t', false)
	default:
		return w.writeExcel(path, t)
	}
}

func (w *Writer) writeDelimited(path string, t *tables.Table, comma rune, bom bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if bom {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	writer.Comma = comma
	defer writer.Flush()

	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range t.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

func (w *Writer) writeExcel(path string, t *tables.Table) error {
	var f *excelize.File
	var err error

	fresh := false
	if _, statErr := os.Stat(path); statErr == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to open existing workbook %s: %w", path, err)
		}
	} else {
		f = excelize.NewFile()
		fresh = true
	}
	defer f.Close()

	if err := replaceSheet(f, ResultsSheet, fresh); err != nil {
		return err
	}

	header := make([]any, 0, len(t.Columns()))
	for _, col := range t.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range t.Records() {
		cells := make([]any, len(record))
		for j, v := range record {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ResultsSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// replaceSheet leaves f with a single fresh sheet of the given name
// plus whatever other sheets the workbook already had. fresh marks a
// brand-new workbook whose default sheet should not survive.
func replaceSheet(f *excelize.File, name string, fresh bool) error {
	if idx, _ := f.GetSheetIndex(name); idx != -1 {
		// DeleteSheet refuses to remove the last sheet, so park a
		// placeholder first when the target is the only one.
		const placeholder = "__pellcli_tmp__"
		parked := false
		if len(f.GetSheetList()) == 1 {
			if _, err := f.NewSheet(placeholder); err != nil {
				return fmt.Errorf("failed to stage sheet replacement: %w", err)
			}
			parked = true
		}
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("failed to replace sheet %q: %w", name, err)
		}
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to recreate sheet %q: %w", name, err)
		}
		if parked {
			if err := f.DeleteSheet(placeholder); err != nil {
				return fmt.Errorf("failed to drop placeholder sheet: %w", err)
			}
		}
		return nil
	}

	idx, err := f.NewSheet(name)
	if err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	f.SetActiveSheet(idx)

	// A brand-new workbook starts with a default sheet we do not want.
	if fresh {
		for _, existing := range f.GetSheetList() {
			if existing != name {
				if err := f.DeleteSheet(existing); err != nil {
					return fmt.Errorf("failed to drop default sheet: %w", err)
				}
			}
		}
	}
	return nil
}

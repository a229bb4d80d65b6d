// Package exporter writes result and extract tables to disk.
//
// The output format follows the file extension: CSV with a UTF-8 BOM
// for Excel compatibility, tab-separated TXT, or XLSX where the table
// lands on a dedicated "Report Output" sheet, replacing that sheet
// when the workbook already exists so manually maintained sheets
// survive a re-run.
//
// ResultsFilename builds the results file name, optionally suffixed
// with the run date and pipeline version.
package exporter

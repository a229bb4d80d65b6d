package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pellcli/internal/loader"
	"pellcli/internal/version"
)

// ResultsFilename builds the results file name from a bare filename,
// optionally appending the run date (YYYY-MM-DD) and the pipeline
// version before the extension:
//
//	ResultsFilename("results.xlsx", true, true)
//	  -> "results_2025-12-13_v0-1-0.xlsx"
//
// The argument must be a filename with a supported extension, not a
// path.
func ResultsFilename(name string, appendDate, appendVersion bool) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("argument must be a filename, not a path: %q", name)
	}

	ext := filepath.Ext(name)
	if ext == "" {
		return "", fmt.Errorf("filename must have an extension: %q", name)
	}
	if _, err := loader.ValidateExtension(strings.ToLower(ext)); err != nil {
		return "", err
	}

	parts := []string{strings.TrimSuffix(name, ext)}
	if appendDate {
		parts = append(parts, time.Now().Format("2006-01-02"))
	}
	if appendVersion {
		parts = append(parts, "v"+strings.ReplaceAll(version.Pipeline, ".", "-"))
	}

	return strings.Join(parts, "_") + ext, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := Default()
	cfg.Files.PellFile = "pell.csv"
	cfg.Files.RetentionFile = "retention.xlsx"
	cfg.Files.EnrollmentFile = "enrollment.csv"
	cfg.Params.Term = "202580"
	cfg.Params.IPEDSAcademicYear = "2025-2026"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "ID", cfg.Params.IDColumn)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "results.csv", cfg.Files.ResultsFile)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing pell file", func(t *testing.T) {
		cfg := validConfig()
		cfg.Files.PellFile = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("bad term", func(t *testing.T) {
		cfg := validConfig()
		cfg.Params.Term = "2025FA"
		err := cfg.Validate()
		require.Error(t, err)
	})

	t.Run("short term", func(t *testing.T) {
		cfg := validConfig()
		cfg.Params.Term = "20258"
		require.Error(t, cfg.Validate())
	})

	t.Run("bad academic year format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Params.IPEDSAcademicYear = "2526"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2025-2026")
	})
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
files:
  pell_file: data/pell.csv
  retention_file: data/retention.xlsx
  enrollment_file: data/enrollment.csv
  results_dir: out
  results_file: results.xlsx
  append_date: true
params:
  term: "202580"
  ipeds_acad_year: "2025-2026"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/pell.csv", cfg.Files.PellFile)
	assert.Equal(t, "results.xlsx", cfg.Files.ResultsFile)
	assert.True(t, cfg.Files.AppendDate)
	assert.Equal(t, "202580", cfg.Params.Term)
	// defaults survive where the file is silent
	assert.Equal(t, "ID", cfg.Params.IDColumn)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
files:
  pell_file: data/pell.csv
  retention_file: data/retention.xlsx
  enrollment_file: data/enrollment.csv
  results_dir: out
  results_file: results.csv
params:
  term: "202480"
  ipeds_acad_year: "2024-2025"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("PELL_PARAMS_TERM", "202580")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "202580", cfg.Params.Term)
	assert.Equal(t, "2024-2025", cfg.Params.IPEDSAcademicYear)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  term: \"bad\"\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"pell.csv", "retention.csv", "enrollment.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("ID\n"), 0644))
	}
	resultsDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(resultsDir, 0755))

	cfg := validConfig()
	cfg.Files.PellFile = filepath.Join(dir, "pell.csv")
	cfg.Files.RetentionFile = filepath.Join(dir, "retention.csv")
	cfg.Files.EnrollmentFile = filepath.Join(dir, "enrollment.csv")
	cfg.Files.ResultsDir = resultsDir

	require.NoError(t, cfg.ValidatePaths())

	t.Run("missing input", func(t *testing.T) {
		bad := cfg
		bad.Files.RetentionFile = filepath.Join(dir, "missing.csv")
		err := bad.ValidatePaths()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retention file does not exist")
	})

	t.Run("missing results dir", func(t *testing.T) {
		bad := cfg
		bad.Files.ResultsDir = filepath.Join(dir, "missing-out")
		err := bad.ValidatePaths()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "results path does not exist")
	})
}

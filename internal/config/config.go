// Package config loads and validates the pipeline configuration from a
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pellcli/internal/terms"
)

// envPrefix is the prefix of every environment override, e.g.
// PELL_PARAMS_TERM.
const envPrefix = "PELL"

// Config is the complete pipeline configuration.
type Config struct {
	Files   FilesConfig   `yaml:"files" envconfig:"FILES"`
	Params  ParamsConfig  `yaml:"params" envconfig:"PARAMS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// FilesConfig locates the three input files and the results location.
type FilesConfig struct {
	PellFile       string `yaml:"pell_file" envconfig:"PELL_FILE" validate:"required"`
	RetentionFile  string `yaml:"retention_file" envconfig:"RETENTION_FILE" validate:"required"`
	EnrollmentFile string `yaml:"enrollment_file" envconfig:"ENROLLMENT_FILE" validate:"required"`
	ResultsDir     string `yaml:"results_dir" envconfig:"RESULTS_DIR" validate:"required"`
	ResultsFile    string `yaml:"results_file" envconfig:"RESULTS_FILE" validate:"required"`
	AppendDate     bool   `yaml:"append_date" envconfig:"APPEND_DATE"`
	AppendVersion  bool   `yaml:"append_version" envconfig:"APPEND_VERSION"`
}

// ParamsConfig carries the report parameters threaded through every
// metric call.
type ParamsConfig struct {
	Term              string `yaml:"term" envconfig:"TERM" validate:"required,len=6,numeric"`
	IPEDSAcademicYear string `yaml:"ipeds_acad_year" envconfig:"IPEDS_ACAD_YEAR" validate:"required"`
	IDColumn          string `yaml:"id_column" envconfig:"ID_COLUMN" validate:"required"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the configuration defaults applied before the file
// and environment are consulted.
func Default() Config {
	return Config{
		Files: FilesConfig{
			ResultsDir:  "results",
			ResultsFile: "results.csv",
		},
		Params: ParamsConfig{
			IDColumn: "ID",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/pell-report.log",
		},
	}
}

// Load reads configuration in precedence order: defaults, then the
// YAML file at path (when it exists), then PELL_* environment
// variables. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config file not found at %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

var acadYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

// Validate checks field-level constraints. Path existence is checked
// separately by ValidatePaths so configurations can be validated
// without touching the filesystem.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if err := terms.Validate(c.Params.Term); err != nil {
		return err
	}
	if !acadYearRe.MatchString(c.Params.IPEDSAcademicYear) {
		return fmt.Errorf("ipeds_acad_year %q is invalid: needs the format '2025-2026'", c.Params.IPEDSAcademicYear)
	}
	return nil
}

// ValidatePaths verifies every input file and the results directory
// exist before any computation starts.
func (c *Config) ValidatePaths() error {
	for _, input := range []struct {
		name string
		path string
	}{
		{"pell", c.Files.PellFile},
		{"retention", c.Files.RetentionFile},
		{"enrollment", c.Files.EnrollmentFile},
	} {
		if _, err := os.Stat(input.path); err != nil {
			return fmt.Errorf("input %s file does not exist: %s", input.name, input.path)
		}
	}

	info, err := os.Stat(c.Files.ResultsDir)
	if err != nil {
		return fmt.Errorf("results path does not exist: %s", c.Files.ResultsDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("results path is not a directory: %s", c.Files.ResultsDir)
	}
	return nil
}

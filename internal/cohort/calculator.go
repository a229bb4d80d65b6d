package cohort

import (
	"fmt"
	"log/slog"

	"pellcli/internal/tables"
)

// Calculator computes cohort metrics. It carries the configured
// student identifier column name so every join keys on the same
// column across all three tables.
type Calculator struct {
	idColumn string
	logger   *slog.Logger
}

// NewCalculator creates a calculator joining tables on the given
// identifier column.
func NewCalculator(idColumn string, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{idColumn: idColumn, logger: logger}
}

// IDColumn returns the identifier column the calculator joins on.
func (c *Calculator) IDColumn() string {
	return c.idColumn
}

// EmptyCohortError reports a rate calculation whose denominator cohort
// has no members.
type EmptyCohortError struct {
	Cohort string
}

func (e *EmptyCohortError) Error() string {
	return fmt.Sprintf("cohort %q is empty: rate denominator is zero", e.Cohort)
}

func (c *Calculator) validateCohort(dfr *tables.Table) error {
	if err := tables.ValidateColumns(dfr, c.idColumn, tables.RequiredCohortColumns()); err != nil {
		return fmt.Errorf("retention table: %w", err)
	}
	return nil
}

func (c *Calculator) validateEnrollment(dfe *tables.Table) error {
	if err := tables.ValidateColumns(dfe, c.idColumn, tables.RequiredEnrollmentColumns()); err != nil {
		return fmt.Errorf("enrollment table: %w", err)
	}
	return nil
}

func (c *Calculator) validatePell(dfp *tables.Table) error {
	if err := tables.ValidateColumns(dfp, c.idColumn, tables.RequiredPellColumns()); err != nil {
		return fmt.Errorf("pell table: %w", err)
	}
	return nil
}

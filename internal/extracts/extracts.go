// Package extracts builds the auxiliary student-ID tables handed to
// the financial aid office for manual annotation: one listing every
// enrolled full-time student of a term, one listing every cohorted
// student of an academic year. Both are derived views over the source
// tables; writing them is the exporter's job.
package extracts

import (
	"fmt"

	"pellcli/internal/cohort"
	"pellcli/internal/tables"
	"pellcli/internal/terms"
)

// Extract couples a derived ID table with the spreadsheet filename it
// should be written under.
type Extract struct {
	Table    *tables.Table
	Filename string
}

// EnrollmentIDs builds the ID list of every full-time, degree-seeking
// undergraduate enrolled in the given term, with the term and its
// hyphenated aid year attached to every row.
func EnrollmentIDs(dfe *tables.Table, term, idColumn string) (*Extract, error) {
	if err := tables.ValidateColumns(dfe, idColumn, append(tables.RequiredEnrollmentColumns(), tables.ColPersonUID)); err != nil {
		return nil, fmt.Errorf("enrollment table: %w", err)
	}

	filtered := cohort.FilterEnrollment(dfe, term)
	aidYear := terms.AcademicYearHyphen(term)

	rows := make([][]string, filtered.Len())
	for i := 0; i < filtered.Len(); i++ {
		rows[i] = []string{
			filtered.Cell(i, idColumn),
			filtered.Cell(i, tables.ColPersonUID),
			term,
			aidYear,
		}
	}

	out, err := tables.New([]string{idColumn, tables.ColPersonUID, tables.ColAcademicPeriod, "Aid Year"}, rows)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s Enrolled Full-Time Student IDs from Census Data Enrollment.xlsx", terms.FallLabel(term))
	return &Extract{Table: out, Filename: filename}, nil
}

// CohortIDs builds the ID list of every student cohorted into any term
// of the given hyphenated academic year, matched on the retention
// table's fiscal year column.
func CohortIDs(dfr *tables.Table, acadYear, idColumn string) (*Extract, error) {
	required := []string{tables.ColCohortFiscalYear, tables.ColPersonUID, tables.ColCohort, tables.ColCohortPeriod}
	if err := tables.ValidateColumns(dfr, idColumn, required); err != nil {
		return nil, fmt.Errorf("retention table: %w", err)
	}

	fiscalYear := acadYear[len(acadYear)-4:]
	matched := dfr.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColCohortFiscalYear) == fiscalYear
	})

	rows := make([][]string, matched.Len())
	for i := 0; i < matched.Len(); i++ {
		rows[i] = []string{
			matched.Cell(i, idColumn),
			matched.Cell(i, tables.ColPersonUID),
			matched.Cell(i, tables.ColCohort),
			matched.Cell(i, tables.ColCohortPeriod),
		}
	}

	out, err := tables.New([]string{idColumn, tables.ColPersonUID, tables.ColCohort, "Cohort Term"}, rows)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s All-Cohorts Student IDs from Undergraduate Retention and Graduation.xlsx", acadYear)
	return &Extract{Table: out, Filename: filename}, nil
}

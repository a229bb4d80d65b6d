package tables

import (
	"fmt"
	"sort"
	"strings"
)

// RequiredCohortColumns returns the columns of the Undergraduate
// Retention and Graduation file that every cohort metric needs.
func RequiredCohortColumns() []string {
	return []string{ColCohortName}
}

// RequiredEnrollmentColumns returns the columns of the Census Date
// Enrollment file needed to identify full-time degree-seeking
// undergraduates.
func RequiredEnrollmentColumns() []string {
	return []string{ColAcademicPeriod, ColTimeStatus, ColStudentLevel, ColDegree}
}

// RequiredPellColumns returns the columns of the Pell recipient file
// needed to match recipients to an aid year.
func RequiredPellColumns() []string {
	return []string{ColAidYear}
}

// MissingColumnsError reports every required column absent from an
// input table.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]", strings.Join(e.Columns, ", "))
}

// ValidateColumns checks that the table has every required column plus
// the identifier column. It returns nil when all are present and a
// *MissingColumnsError naming the full missing set otherwise.
func ValidateColumns(t *Table, idColumn string, required []string) error {
	var missing []string
	seen := map[string]bool{}
	for _, col := range append(append([]string(nil), required...), idColumn) {
		if seen[col] {
			continue
		}
		seen[col] = true
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

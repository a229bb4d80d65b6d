// Package terms provides arithmetic over Banner-style academic period
// codes: a 4-digit calendar year followed by a 2-digit period code,
// e.g. "202580" for Fall 2025.
package terms

import (
	"fmt"
	"strconv"
)

// Cohort type descriptions as they appear in the Cohort Name column of
// the Undergraduate Retention and Graduation file.
const (
	DefaultCohortType  = "Fall, First-Time, Full-Time"
	TransferCohortType = "Fall, Transfer, Full-Time"
)

// TermLength is the required length of an academic period code.
const TermLength = 6

// Validate checks that term is a 6-character numeric period code.
func Validate(term string) error {
	if len(term) != TermLength {
		return fmt.Errorf("term %q is invalid: needs to be a 6 digit numeric, e.g. '202580'", term)
	}
	if _, err := strconv.Atoi(term); err != nil {
		return fmt.Errorf("term %q is invalid: needs to be a 6 digit numeric, e.g. '202580'", term)
	}
	return nil
}

// Adjust returns the academic period a given number of years away from
// term, keeping the period code. Years may be negative: Adjust("202580", -4)
// yields "202180", the cohort whose 4-year graduation rate can be
// calculated during 202580.
func Adjust(term string, years int) string {
	year, _ := strconv.Atoi(term[:4])
	return strconv.Itoa(year+years) + term[len(term)-2:]
}

// AcademicYear returns the aid year of term in the two-digit-pair
// format used by the AID_YEAR column: "202580" -> "2526".
func AcademicYear(term string) string {
	yy, _ := strconv.Atoi(term[2:4])
	return term[2:4] + strconv.Itoa(yy+1)
}

// AcademicYearHyphen returns the academic year of term in the
// hyphenated format: "202580" -> "2025-2026".
func AcademicYearHyphen(term string) string {
	year, _ := strconv.Atoi(term[:4])
	return term[:4] + "-" + strconv.Itoa(year+1)
}

// Cohort prepends the year of term to a cohort type description,
// matching the Cohort Name format of the retention file:
// Cohort("202580", DefaultCohortType) -> "2025 Fall, First-Time, Full-Time".
func Cohort(term, cohortType string) string {
	return term[:4] + " " + cohortType
}

// FallLabel returns the human-readable cohort label used in the
// results table: "202580" -> "Fall 2025".
func FallLabel(term string) string {
	return "Fall " + term[:4]
}

// PriorAcademicYearHyphen shifts a hyphenated academic year back one
// year: "2025-2026" -> "2024-2025".
func PriorAcademicYearHyphen(acadYear string) string {
	first, _ := strconv.Atoi(acadYear[:4])
	second, _ := strconv.Atoi(acadYear[len(acadYear)-4:])
	return strconv.Itoa(first-1) + "-" + strconv.Itoa(second-1)
}

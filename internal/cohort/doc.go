// Package cohort computes enrollment, retention, and graduation-rate
// statistics over the three institutional source tables: the Pell
// recipient file, the Undergraduate Retention and Graduation file, and
// the Census Date Enrollment file.
//
// All headcounts that join tables operate on sets of distinct
// normalized student identifiers, never on raw row counts, so a
// student with multiple aid-year or enrollment rows is counted once.
// Rate denominators are cohort sizes; an empty cohort yields an
// *EmptyCohortError rather than a division fault.
//
// Every method of Calculator validates its input tables' required
// columns before computing anything and returns a
// *tables.MissingColumnsError naming the full missing set when a
// source file does not satisfy the column contract.
package cohort

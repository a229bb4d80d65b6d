package tables

// Column names of the three institutional source files. The student
// identifier column is configurable and therefore not listed here.
const (
	// Undergraduate Retention and Graduation file
	ColCohortName        = "Cohort Name"
	ColYearsToGraduation = "Years to Graduation"
	ColSecondFall        = "Academic Period 2nd Fall"
	ColCohortFiscalYear  = "Cohort Fiscal Year"
	ColCohort            = "Cohort"
	ColCohortPeriod      = "Cohort Academic Period"

	// Census Date Enrollment file
	ColAcademicPeriod = "Academic Period"
	ColTimeStatus     = "Time Status"
	ColStudentLevel   = "Student Level"
	ColDegree         = "Degree"

	// Pell recipient file
	ColAidYear = "AID_YEAR"

	// Shared across files
	ColPersonUID = "Person Uid"
)

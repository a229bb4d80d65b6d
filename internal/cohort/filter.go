package cohort

import (
	"pellcli/internal/tables"
)

// FilterEnrollment restricts the census enrollment table to full-time,
// degree-seeking undergraduates of the given academic period. This is
// the single definition of enrollment eligibility; every headcount and
// extract derives from it.
func FilterEnrollment(dfe *tables.Table, term string) *tables.Table {
	return dfe.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColAcademicPeriod) == term &&
			r.Get(tables.ColTimeStatus) == "FT" &&
			r.Get(tables.ColStudentLevel) == "UG" &&
			r.Get(tables.ColDegree) != "Non Degree"
	})
}

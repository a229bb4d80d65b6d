package cohort

import (
	"log/slog"
	"strconv"
	"strings"

	"pellcli/internal/tables"
	"pellcli/internal/terms"
)

// pellIDs returns the distinct identifiers of Pell recipients for the
// aid year implied by term.
func (c *Calculator) pellIDs(dfp *tables.Table, term string) map[tables.StudentID]struct{} {
	aidYear := terms.AcademicYear(term)
	matched := dfp.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColAidYear) == aidYear
	})
	return tables.IDSet(matched, c.idColumn)
}

// cohortIDs returns the distinct identifiers of retention-table rows
// carrying the given cohort label.
func (c *Calculator) cohortIDs(dfr *tables.Table, label string) map[tables.StudentID]struct{} {
	matched := dfr.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label
	})
	return tables.IDSet(matched, c.idColumn)
}

// graduatedWithin reports whether a Years to Graduation cell is
// numeric and at most years. Blank and non-numeric cells are excluded.
func graduatedWithin(cell string, years int) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return false
	}
	return v <= float64(years)
}

// GRSCohort returns the size of the First-Time, Full-Time cohort for
// the given academic period: the number of retention-table rows whose
// cohort label matches the term.
func (c *Calculator) GRSCohort(dfr *tables.Table, term string) (int, error) {
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	return dfr.CountWhere(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label
	}), nil
}

// GRSCohortPell returns the number of Pell recipients for the term's
// aid year that belong to the term's First-Time, Full-Time cohort.
func (c *Calculator) GRSCohortPell(dfp, dfr *tables.Table, term string) (int, error) {
	if err := c.validatePell(dfp); err != nil {
		return 0, err
	}
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	overlap := tables.Intersect(c.pellIDs(dfp, term), c.cohortIDs(dfr, label))
	return len(overlap), nil
}

// TotalHeadcount returns the distinct full-time, degree-seeking
// undergraduate headcount enrolled in the given academic period.
func (c *Calculator) TotalHeadcount(dfe *tables.Table, term string) (int, error) {
	if err := c.validateEnrollment(dfe); err != nil {
		return 0, err
	}

	return len(tables.IDSet(FilterEnrollment(dfe, term), c.idColumn)), nil
}

// FallEnrollment returns one of four disjoint subpopulation headcounts
// of the term's full-time undergraduate enrollment, selected by the
// pell and transfer switches:
//
//	pell=false transfer=false  everyone but incoming transfers
//	pell=true  transfer=false  Pell recipients but incoming transfers
//	pell=false transfer=true   incoming transfers
//	pell=true  transfer=true   Pell recipients that are incoming transfers
//
// Incoming transfers are students whose retention-table cohort label
// matches the term's transfer cohort name.
func (c *Calculator) FallEnrollment(dfp, dfr, dfe *tables.Table, term string, pell, transfer bool) (int, error) {
	if err := c.validatePell(dfp); err != nil {
		return 0, err
	}
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}
	if err := c.validateEnrollment(dfe); err != nil {
		return 0, err
	}

	transferLabel := terms.Cohort(term, terms.TransferCohortType)

	pids := c.pellIDs(dfp, term)
	eids := tables.IDSet(FilterEnrollment(dfe, term), c.idColumn)
	tids := c.cohortIDs(dfr, transferLabel)

	pellEnrolled := tables.Intersect(pids, eids)
	nPellTransfer := len(tables.Intersect(pellEnrolled, tids))

	// The non-transfer populations subtract the transfer count from the
	// enrollment count instead of taking a set difference: students
	// whose cohorts predate the retention file's coverage are absent
	// from it and must still land in the non-transfer group.
	var size int
	switch {
	case !pell && !transfer:
		size = len(eids) - len(tids)
	case pell && !transfer:
		size = len(pellEnrolled) - nPellTransfer
	case !pell && transfer:
		size = len(tables.Intersect(eids, tids))
	default:
		size = nPellTransfer
	}

	c.logger.Debug("fall enrollment subpopulation",
		slog.Bool("pell", pell),
		slog.Bool("transfer", transfer),
		slog.Int("size", size))

	return size, nil
}

package cohort

import (
	"fmt"
	"math"

	"pellcli/internal/tables"
	"pellcli/internal/terms"
)

// rateDecimals is the precision of every retention and graduation rate.
const rateDecimals = 3

// roundTo rounds x to the given number of decimal places, halves away
// from zero.
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Percent returns num/denom rounded to roundDecimals places. A zero
// denominator is rejected rather than propagated as Inf.
func Percent(num, denom float64, roundDecimals int) (float64, error) {
	if denom == 0 {
		return 0, fmt.Errorf("percent: denominator is zero")
	}
	if roundDecimals < 0 {
		roundDecimals = -roundDecimals
	}
	return roundTo(num/denom, roundDecimals), nil
}

// GRSCohortGrad returns the share of the term's First-Time, Full-Time
// cohort that graduated within yearsToGrad years, rounded to 3
// decimals. Rows with a blank or non-numeric Years to Graduation cell
// count as not graduated.
func (c *Calculator) GRSCohortGrad(dfr *tables.Table, term string, yearsToGrad int) (float64, error) {
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	nGrad := dfr.CountWhere(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label &&
			graduatedWithin(r.Get(tables.ColYearsToGraduation), yearsToGrad)
	})

	nTotal, err := c.GRSCohort(dfr, term)
	if err != nil {
		return 0, err
	}
	if nTotal == 0 {
		return 0, &EmptyCohortError{Cohort: label}
	}

	return roundTo(float64(nGrad)/float64(nTotal), rateDecimals), nil
}

// GRSCohortPellGrad returns the share of the term's Pell First-Time,
// Full-Time cohort that graduated within yearsToGrad years, rounded to
// 3 decimals.
func (c *Calculator) GRSCohortPellGrad(dfp, dfr *tables.Table, term string, yearsToGrad int) (float64, error) {
	if err := c.validatePell(dfp); err != nil {
		return 0, err
	}
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	graduated := dfr.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label &&
			graduatedWithin(r.Get(tables.ColYearsToGraduation), yearsToGrad)
	})

	nGrad := len(tables.Intersect(c.pellIDs(dfp, term), tables.IDSet(graduated, c.idColumn)))

	nTotal, err := c.GRSCohortPell(dfp, dfr, term)
	if err != nil {
		return 0, err
	}
	if nTotal == 0 {
		return 0, &EmptyCohortError{Cohort: "Pell " + label}
	}

	return roundTo(float64(nGrad)/float64(nTotal), rateDecimals), nil
}

// SecondYearRetention returns the share of the term's First-Time,
// Full-Time cohort enrolled again the following fall, rounded to 3
// decimals.
func (c *Calculator) SecondYearRetention(dfr *tables.Table, term string) (float64, error) {
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	secondFall := terms.Adjust(term, 1)
	nRetained := dfr.CountWhere(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label &&
			r.Get(tables.ColSecondFall) == secondFall
	})

	nTotal, err := c.GRSCohort(dfr, term)
	if err != nil {
		return 0, err
	}
	if nTotal == 0 {
		return 0, &EmptyCohortError{Cohort: label}
	}

	return roundTo(float64(nRetained)/float64(nTotal), rateDecimals), nil
}

// SecondYearRetentionPell returns the share of the term's Pell
// First-Time, Full-Time cohort enrolled again the following fall,
// rounded to 3 decimals.
func (c *Calculator) SecondYearRetentionPell(dfp, dfr *tables.Table, term string) (float64, error) {
	if err := c.validatePell(dfp); err != nil {
		return 0, err
	}
	if err := c.validateCohort(dfr); err != nil {
		return 0, err
	}

	label := terms.Cohort(term, terms.DefaultCohortType)
	secondFall := terms.Adjust(term, 1)
	retained := dfr.Filter(func(r tables.Row) bool {
		return r.Get(tables.ColCohortName) == label &&
			r.Get(tables.ColSecondFall) == secondFall
	})

	nRetained := len(tables.Intersect(c.pellIDs(dfp, term), tables.IDSet(retained, c.idColumn)))

	nTotal, err := c.GRSCohortPell(dfp, dfr, term)
	if err != nil {
		return 0, err
	}
	if nTotal == 0 {
		return 0, &EmptyCohortError{Cohort: "Pell " + label}
	}

	return roundTo(float64(nRetained)/float64(nTotal), rateDecimals), nil
}

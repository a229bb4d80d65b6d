// Package report orchestrates a reporting run: it derives the cohort
// terms from the configured census term, computes every metric,
// assembles the long-format results table, and writes the results file
// and the annotation extracts.
package report

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"pellcli/internal/cohort"
	"pellcli/internal/exporter"
	"pellcli/internal/extracts"
	"pellcli/internal/tables"
	"pellcli/internal/terms"
)

// Params are the configured report parameters.
type Params struct {
	// Term is the census term the report is run for, e.g. "202580".
	Term string
	// IPEDSAcademicYear selects the cohort extract's fiscal year, in
	// the hyphenated form "2025-2026".
	IPEDSAcademicYear string
	// IDColumn names the student identifier column shared by all three
	// input tables.
	IDColumn string
}

// RetentionTerm is the cohort whose second-year retention can be
// measured during the census term: one year back.
func (p Params) RetentionTerm() string {
	return terms.Adjust(p.Term, -1)
}

// GradTerm is the cohort whose graduation rate at the given number of
// years can be measured during the census term.
func (p Params) GradTerm(years int) string {
	return terms.Adjust(p.Term, -years)
}

// Tables bundles the three loaded input tables.
type Tables struct {
	Pell       *tables.Table
	Retention  *tables.Table
	Enrollment *tables.Table
}

// normalized returns a copy of the bundle with the identifier column
// of every table stripped of leading zeros.
func (t Tables) normalized(idColumn string) (Tables, error) {
	pell, err := tables.NormalizeIDs(t.Pell, idColumn)
	if err != nil {
		return Tables{}, fmt.Errorf("pell table: %w", err)
	}
	retention, err := tables.NormalizeIDs(t.Retention, idColumn)
	if err != nil {
		return Tables{}, fmt.Errorf("retention table: %w", err)
	}
	enrollment, err := tables.NormalizeIDs(t.Enrollment, idColumn)
	if err != nil {
		return Tables{}, fmt.Errorf("enrollment table: %w", err)
	}
	return Tables{Pell: pell, Retention: retention, Enrollment: enrollment}, nil
}

// Service runs the report pipeline.
type Service struct {
	calc   *cohort.Calculator
	writer *exporter.Writer
	logger *slog.Logger
}

// NewService creates a report service computing with calc and writing
// output files with writer.
func NewService(calc *cohort.Calculator, writer *exporter.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{calc: calc, writer: writer, logger: logger}
}

type row struct {
	cohort string
	metric string
	value  string
}

// BuildResults computes every metric and assembles the results table
// with columns Cohort, Metric, Value. Counts are whole numbers, rates
// carry 3 decimals, and the first-generation placeholder metrics stay
// blank.
func (s *Service) BuildResults(in Tables, p Params) (*tables.Table, error) {
	term := p.Term
	retentionTerm := p.RetentionTerm()
	gradTerm4 := p.GradTerm(4)
	gradTerm6 := p.GradTerm(6)

	s.logger.Info("computing cohort metrics",
		slog.String("term", term),
		slog.String("retention_term", retentionTerm),
		slog.String("grad_term_4yr", gradTerm4),
		slog.String("grad_term_6yr", gradTerm6))

	cohortSize, err := s.calc.GRSCohort(in.Retention, term)
	if err != nil {
		return nil, err
	}
	cohortPell, err := s.calc.GRSCohortPell(in.Pell, in.Retention, term)
	if err != nil {
		return nil, err
	}

	headcount, err := s.calc.TotalHeadcount(in.Enrollment, term)
	if err != nil {
		return nil, err
	}
	nonTransfer, err := s.calc.FallEnrollment(in.Pell, in.Retention, in.Enrollment, term, false, false)
	if err != nil {
		return nil, err
	}
	pellNonTransfer, err := s.calc.FallEnrollment(in.Pell, in.Retention, in.Enrollment, term, true, false)
	if err != nil {
		return nil, err
	}
	transfer, err := s.calc.FallEnrollment(in.Pell, in.Retention, in.Enrollment, term, false, true)
	if err != nil {
		return nil, err
	}
	pellTransfer, err := s.calc.FallEnrollment(in.Pell, in.Retention, in.Enrollment, term, true, true)
	if err != nil {
		return nil, err
	}

	retention, err := s.calc.SecondYearRetention(in.Retention, retentionTerm)
	if err != nil {
		return nil, err
	}
	retentionPell, err := s.calc.SecondYearRetentionPell(in.Pell, in.Retention, retentionTerm)
	if err != nil {
		return nil, err
	}

	grad4, err := s.calc.GRSCohortGrad(in.Retention, gradTerm4, 4)
	if err != nil {
		return nil, err
	}
	gradPell4, err := s.calc.GRSCohortPellGrad(in.Pell, in.Retention, gradTerm4, 4)
	if err != nil {
		return nil, err
	}
	grad6, err := s.calc.GRSCohortGrad(in.Retention, gradTerm6, 6)
	if err != nil {
		return nil, err
	}
	gradPell6, err := s.calc.GRSCohortPellGrad(in.Pell, in.Retention, gradTerm6, 6)
	if err != nil {
		return nil, err
	}

	s.logPellShares(cohortPell, cohortSize, pellNonTransfer, nonTransfer, pellTransfer, transfer)

	currentLabel := terms.FallLabel(term)
	rows := []row{
		{currentLabel, MetricGRSCohort, exporter.FormatCount(cohortSize)},
		{currentLabel, MetricGRSCohortPell, exporter.FormatCount(cohortPell)},
		{currentLabel, MetricFallEnrollment, exporter.FormatCount(nonTransfer)},
		{currentLabel, MetricFallEnrollmentPell, exporter.FormatCount(pellNonTransfer)},
		{currentLabel, MetricFallTransferEnrollment, exporter.FormatCount(transfer)},
		{currentLabel, MetricFallTransferEnrollPell, exporter.FormatCount(pellTransfer)},
		{currentLabel, MetricTotalEnrollment, exporter.FormatCount(headcount)},
		{currentLabel, MetricFirstGenEnroll, ""},
		{currentLabel, MetricFirstGenEnrollPell, ""},
		{currentLabel, MetricContinuingGenEnroll, ""},
		{currentLabel, MetricUnknownFirstGenEnroll, ""},
		{currentLabel, MetricFirstGenDefinition, ""},
		{currentLabel, MetricCompleteFirstGen, ""},

		{terms.FallLabel(retentionTerm), MetricRetentionRate, exporter.FormatRate(retention)},
		{terms.FallLabel(retentionTerm), MetricRetentionRatePell, exporter.FormatRate(retentionPell)},

		{terms.FallLabel(gradTerm4), MetricGRSCohortGrad4, exporter.FormatRate(grad4)},
		{terms.FallLabel(gradTerm4), MetricGRSCohortPellGrad4, exporter.FormatRate(gradPell4)},

		{terms.FallLabel(gradTerm6), MetricGRSCohortGrad6, exporter.FormatRate(grad6)},
		{terms.FallLabel(gradTerm6), MetricGRSCohortPellGrad6, exporter.FormatRate(gradPell6)},
	}

	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r.cohort, r.metric, r.value}
	}
	return tables.New([]string{"Cohort", "Metric", "Value"}, records)
}

// logPellShares reports the Pell share of the cohort and of each
// enrollment group. The shares are informational and do not land in
// the results table.
func (s *Service) logPellShares(cohortPell, cohortSize, pellNonTransfer, nonTransfer, pellTransfer, transfer int) {
	log := func(name string, num, denom int) {
		share, err := cohort.Percent(float64(num), float64(denom), 2)
		if err != nil {
			s.logger.Warn("pell share unavailable", slog.String("share", name), slog.String("reason", err.Error()))
			return
		}
		s.logger.Info("pell share", slog.String("share", name), slog.String("value", exporter.FormatShare(share)))
	}
	log("cohort", cohortPell, cohortSize)
	log("fall_enrollment", pellNonTransfer, nonTransfer)
	log("fall_transfer_enrollment", pellTransfer, transfer)
}

// OutputFiles locates the run's output.
type OutputFiles struct {
	ResultsDir    string
	ResultsFile   string
	AppendDate    bool
	AppendVersion bool
}

// Run executes the whole pipeline: identifier normalization, results
// assembly, the results file, the enrollment extract, and the cohort
// extracts for the IPEDS academic year and the year before it.
func (s *Service) Run(in Tables, p Params, files OutputFiles) error {
	normalized, err := in.normalized(p.IDColumn)
	if err != nil {
		return err
	}

	results, err := s.BuildResults(normalized, p)
	if err != nil {
		return err
	}

	resultsName, err := exporter.ResultsFilename(files.ResultsFile, files.AppendDate, files.AppendVersion)
	if err != nil {
		return err
	}
	resultsPath := filepath.Join(files.ResultsDir, resultsName)
	if err := s.writer.WriteTable(resultsPath, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	s.logger.Info("results written", slog.String("path", resultsPath))

	return s.writeExtracts(normalized, p, files.ResultsDir)
}

func (s *Service) writeExtracts(in Tables, p Params, outDir string) error {
	enrollment, err := extracts.EnrollmentIDs(in.Enrollment, p.Term, p.IDColumn)
	if err != nil {
		return err
	}

	cohortCurrent, err := extracts.CohortIDs(in.Retention, p.IPEDSAcademicYear, p.IDColumn)
	if err != nil {
		return err
	}
	cohortPrior, err := extracts.CohortIDs(in.Retention, terms.PriorAcademicYearHyphen(p.IPEDSAcademicYear), p.IDColumn)
	if err != nil {
		return err
	}

	for _, extract := range []*extracts.Extract{enrollment, cohortCurrent, cohortPrior} {
		path := filepath.Join(outDir, extract.Filename)
		if err := s.writer.WriteTable(path, extract.Table); err != nil {
			return fmt.Errorf("failed to write extract %s: %w", extract.Filename, err)
		}
		s.logger.Info("extract written",
			slog.String("path", path),
			slog.Int("rows", extract.Table.Len()))
	}
	return nil
}

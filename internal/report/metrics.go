package report

// Metric names as they appear in the Metric column of the results
// table. The first-generation metrics are placeholders left blank for
// manual annotation by the financial aid office.
const (
	MetricGRSCohort              = "grs_cohort"
	MetricGRSCohortPell          = "grs_cohort_pell"
	MetricFallEnrollment         = "fall_enrollment"
	MetricFallEnrollmentPell     = "fall_enrollment_pell"
	MetricFallTransferEnrollment = "fall_transfer_enrollment"
	MetricFallTransferEnrollPell = "fall_transfer_enroll_pell"
	MetricTotalEnrollment        = "total_enrollment"

	MetricFirstGenEnroll        = "firstgen_enroll"
	MetricFirstGenEnrollPell    = "firstgen_enroll_pell"
	MetricContinuingGenEnroll   = "continuing_gen_enroll"
	MetricUnknownFirstGenEnroll = "unknown_firstgen_enroll"
	MetricFirstGenDefinition    = "firstgen_definition"
	MetricCompleteFirstGen      = "complete_firstgen"

	MetricRetentionRate     = "retention_rate"
	MetricRetentionRatePell = "retention_rate_pell"

	MetricGRSCohortGrad4     = "grs_cohort_grad_4yr"
	MetricGRSCohortPellGrad4 = "grs_cohort_pell_grad_4yr"
	MetricGRSCohortGrad6     = "grs_cohort_grad_6yr"
	MetricGRSCohortPellGrad6 = "grs_cohort_pell_grad_6yr"
)

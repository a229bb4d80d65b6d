// Package version records the pipeline release, stamped into results
// filenames so a spreadsheet can be traced back to the code that
// produced it.
package version

// Pipeline is the current pipeline version.
const Pipeline = "0.1.0"

// Package tables provides the in-memory table model shared by every
// stage of the report pipeline: an immutable collection of rows with
// named columns where every cell is text, plus the student identifier
// normalization and required-column validation that the metric
// functions rely on.
//
// Tables are never mutated in place. Filter and Select return new
// tables over copied row data, so each metric function can apply its
// own filtering without affecting the caller's view.
package tables

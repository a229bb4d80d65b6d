package exporter

import (
	"fmt"
)

// FormatCount formats a headcount for a results cell.
func FormatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

// FormatRate formats a retention or graduation rate with exactly 3
// decimal places, so 0.7 appears as 0.700.
func FormatRate(r float64) string {
	return fmt.Sprintf("%.3f", r)
}

// FormatShare formats a percentage share with exactly 2 decimal
// places.
func FormatShare(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

package verify

import (
	"fmt"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

// CompareColumnSets compares two ordered header-label sequences position by
// position and returns only the discrepancies. When the lengths differ a
// single high-severity count-mismatch issue is emitted first and comparison
// continues over the common prefix. Identical pairs are not reported.
//
// The result is ordered by column position and is deterministic: comparing
// the same inputs twice yields the same issues.
func CompareColumnSets(category string, expected, actual []string, threshold float64) []Issue {
	var issues []Issue

	if len(expected) != len(actual) {
		issues = append(issues, Issue{
			Category: category,
			Expected: fmt.Sprintf("%d columns", len(expected)),
			Actual:   fmt.Sprintf("%d columns", len(actual)),
			Kind:     KindCountMismatch,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("column count mismatch: design=%d, report=%d", len(expected), len(actual)),
		})
	}

	n := min(len(expected), len(actual))
	for i := 0; i < n; i++ {
		result := diff.Classify(expected[i], actual[i], threshold)
		if result.Kind == diff.KindIdentical {
			continue
		}

		issues = append(issues, Issue{
			Category:   category,
			Position:   i + 1,
			Expected:   expected[i],
			Actual:     actual[i],
			Kind:       result.Kind,
			Similarity: result.Similarity,
			Severity:   severityFor(result.Kind),
		})
	}

	return issues
}

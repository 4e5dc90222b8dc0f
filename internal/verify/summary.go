package verify

import (
	"fmt"
	"strconv"
	"strings"
)

// CountCheck pins one numeric cell of the summary sheet to a count computed
// from the standard report sheets.
type CountCheck struct {
	Section  string // e.g. "7-day visits"
	Row      int    // 1-based row in the summary sheet
	Column   int    // 1-based column holding the count
	Expected int    // count derived from the source sheet's body rows
}

// VerifySummaryCounts checks each configured summary cell against the count
// derived from the standard report sheets. A cell that is empty or not a
// whole number is reported as missing; a wrong count is a high-severity
// content issue carrying both numbers.
func VerifySummaryCounts(category string, cellAt func(row, col int) (string, bool), checks []CountCheck) []Issue {
	var issues []Issue

	for _, check := range checks {
		raw, ok := cellAt(check.Row, check.Column)
		cell := strings.TrimSpace(raw)
		if !ok || cell == "" {
			issues = append(issues, Issue{
				Category: category,
				Position: check.Row,
				Expected: strconv.Itoa(check.Expected),
				Actual:   "",
				Kind:     KindMissing,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("%s: summary cell (row %d, col %d) is empty", check.Section, check.Row, check.Column),
			})
			continue
		}

		// Counts sometimes come through the loader as "4" and sometimes as
		// "4.0" depending on the cell's number format.
		got, err := strconv.ParseFloat(cell, 64)
		if err != nil || got != float64(int(got)) {
			issues = append(issues, Issue{
				Category: category,
				Position: check.Row,
				Expected: strconv.Itoa(check.Expected),
				Actual:   cell,
				Kind:     KindMissing,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("%s: summary cell (row %d, col %d) is not a whole number: %q", check.Section, check.Row, check.Column, cell),
			})
			continue
		}

		if int(got) == check.Expected {
			continue
		}
		issues = append(issues, Issue{
			Category: category,
			Position: check.Row,
			Expected: strconv.Itoa(check.Expected),
			Actual:   strconv.Itoa(int(got)),
			Kind:     KindCountMismatch,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("%s: summary reports %d, standard sheets contain %d", check.Section, int(got), check.Expected),
		})
	}

	return issues
}

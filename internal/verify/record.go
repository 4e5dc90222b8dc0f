package verify

import (
	"fmt"
	"strings"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

// Record is one body row of a report sheet, keyed by header label.
type Record map[string]string

// ValidateRecord checks that every required field of a record is present and
// non-empty. A missing or empty field is reported as a content difference
// with similarity 0.0: the design expected the field, the report produced
// nothing.
func ValidateRecord(category, recordID string, record Record, required []string) []Issue {
	var issues []Issue

	for _, field := range required {
		value, ok := record[field]
		if ok && strings.TrimSpace(value) != "" {
			continue
		}

		issues = append(issues, Issue{
			Category:   category,
			Expected:   field,
			Actual:     "",
			Kind:       diff.KindContent,
			Similarity: 0.0,
			Severity:   SeverityHigh,
			Message:    fmt.Sprintf("record %s: required field %q is missing or empty", recordID, field),
		})
	}

	return issues
}

// ValidateCaseRows looks up the configured case numbers in the given body
// rows and checks each matching row for required-field completeness.
//
// Duplicate case numbers are not deduplicated: every matching row is
// validated and reported separately, since surfacing anomalies is the whole
// point of the tool. Case numbers with no matching row at all become missing
// issues.
func ValidateCaseRows(category string, rows []Record, caseField string, caseNumbers []string, required []string) []Issue {
	var issues []Issue

	found := make(map[string]int, len(caseNumbers))
	for _, row := range rows {
		caseNum := strings.TrimSpace(row[caseField])
		if caseNum == "" || !contains(caseNumbers, caseNum) {
			continue
		}

		found[caseNum]++
		issues = append(issues, ValidateRecord(category, caseNum, row, required)...)
	}

	for _, caseNum := range caseNumbers {
		switch found[caseNum] {
		case 0:
			issues = append(issues, Issue{
				Category:   category,
				Expected:   caseNum,
				Actual:     "",
				Kind:       KindMissing,
				Similarity: 0.0,
				Severity:   SeverityHigh,
				Message:    fmt.Sprintf("case %s not found in column %q", caseNum, caseField),
			})
		case 1:
			// expected
		default:
			issues = append(issues, Issue{
				Category: category,
				Expected: caseNum,
				Actual:   fmt.Sprintf("%d rows", found[caseNum]),
				Kind:     KindCountMismatch,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("case %s appears in %d rows", caseNum, found[caseNum]),
			})
		}
	}

	return issues
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

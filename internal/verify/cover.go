package verify

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

// etlTimestampLayout is the timestamp format the reporting pipeline stamps on
// the cover page, e.g. "14-Mar-2025 09:41:07 AM".
const etlTimestampLayout = "02-Jan-2006 03:04:05 PM"

var (
	versionPattern = regexp.MustCompile(`Version: (\d+\.\d+)`)
	etlPattern     = regexp.MustCompile(`ETL - Started: (\d{2}-[A-Za-z]{3}-\d{4} \d{2}:\d{2}:\d{2} [AP]M); CM - Completed: (\d{2}-[A-Za-z]{3}-\d{4} \d{2}:\d{2}:\d{2} [AP]M)`)
)

// CheckCoverTitle looks for the expected report title in the cover page lines
// and classifies any near miss. A line that contains the title
// case-insensitively but does not match it exactly is run through the
// classifier so the issue says what kind of drift occurred; a title that
// never appears at all is a missing issue.
func CheckCoverTitle(category string, lines []string, expectedTitle string, threshold float64) []Issue {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), strings.ToLower(expectedTitle)) {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == expectedTitle {
			return nil
		}

		result := diff.Classify(expectedTitle, trimmed, threshold)
		return []Issue{{
			Category:   category,
			Expected:   expectedTitle,
			Actual:     trimmed,
			Kind:       result.Kind,
			Similarity: result.Similarity,
			Severity:   severityFor(result.Kind),
			Message:    "cover title does not match the design spec exactly",
		}}
	}

	return []Issue{{
		Category:   category,
		Expected:   expectedTitle,
		Actual:     "",
		Kind:       KindMissing,
		Similarity: 0.0,
		Severity:   SeverityHigh,
		Message:    "cover title not found",
	}}
}

// CheckCoverVersion extracts the "Version: N.N" marker from the cover page
// and compares it against the expected version string.
func CheckCoverVersion(category string, lines []string, expectedVersion string) []Issue {
	for _, line := range lines {
		m := versionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if m[1] == expectedVersion {
			return nil
		}
		return []Issue{{
			Category:   category,
			Expected:   expectedVersion,
			Actual:     m[1],
			Kind:       diff.KindContent,
			Similarity: diff.Similarity(expectedVersion, m[1]),
			Severity:   SeverityHigh,
			Message:    fmt.Sprintf("version mismatch: expected %s, found %s", expectedVersion, m[1]),
		}}
	}

	return []Issue{{
		Category: category,
		Expected: expectedVersion,
		Actual:   "",
		Kind:     KindMissing,
		Severity: SeverityHigh,
		Message:  "version marker not found on cover page",
	}}
}

// CheckETLDates finds the ETL started/completed timestamps on the cover page
// and verifies that the run started before it completed. The ordering check
// is a plain pass/fail invariant, not part of the text cascade.
func CheckETLDates(category string, lines []string) []Issue {
	for _, line := range lines {
		m := etlPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		started, err := time.Parse(etlTimestampLayout, m[1])
		if err != nil {
			return []Issue{etlParseIssue(category, m[1], err)}
		}
		completed, err := time.Parse(etlTimestampLayout, m[2])
		if err != nil {
			return []Issue{etlParseIssue(category, m[2], err)}
		}

		if started.Before(completed) {
			return nil
		}
		return []Issue{{
			Category: category,
			Expected: fmt.Sprintf("started before %s", m[2]),
			Actual:   fmt.Sprintf("started %s", m[1]),
			Kind:     diff.KindContent,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("ETL started %s is not before completed %s", m[1], m[2]),
		}}
	}

	return []Issue{{
		Category: category,
		Expected: "ETL - Started/Completed timestamps",
		Actual:   "",
		Kind:     KindMissing,
		Severity: SeverityHigh,
		Message:  "ETL date pattern not found on cover page",
	}}
}

func etlParseIssue(category, value string, err error) Issue {
	return Issue{
		Category: category,
		Expected: etlTimestampLayout,
		Actual:   value,
		Kind:     diff.KindContent,
		Severity: SeverityHigh,
		Message:  fmt.Sprintf("could not parse ETL timestamp %q: %v", value, err),
	}
}

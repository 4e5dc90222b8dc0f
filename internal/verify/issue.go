package verify

import "github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"

// Severity is the priority bucket attached to an issue for downstream
// reporting.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// KindCountMismatch marks a column or field count discrepancy. It is produced
// by the comparator when the two sequences have different lengths, never by
// the classifier.
const KindCountMismatch diff.Kind = "count_mismatch"

// KindMissing marks a required sheet, column, record, or field that is absent
// from the report entirely.
const KindMissing diff.Kind = "missing"

// Issue is a single reported discrepancy between expected and actual data.
type Issue struct {
	Category   string    `json:"category"`
	Position   int       `json:"position,omitempty"` // 1-based column/row, 0 when not positional
	Expected   string    `json:"expected"`
	Actual     string    `json:"actual"`
	Kind       diff.Kind `json:"kind"`
	Similarity float64   `json:"similarity"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message,omitempty"`
}

// severityFor maps a difference kind to its priority bucket: whitespace and
// casing drift is cosmetic, reordering and spelling need review, and content
// divergence or structural problems block sign-off.
func severityFor(kind diff.Kind) Severity {
	switch kind {
	case diff.KindSpace, diff.KindCase:
		return SeverityLow
	case diff.KindWordOrder, diff.KindSpelling:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

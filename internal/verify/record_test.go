package verify

import (
	"testing"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

func TestValidateRecord(t *testing.T) {
	required := []string{"Case #", "30 Day Private Visit Due Date", "Contact Log Start Date"}

	tests := []struct {
		name       string
		record     Record
		wantIssues int
	}{
		{
			name: "complete record",
			record: Record{
				"Case #":                        "12891050",
				"30 Day Private Visit Due Date": "2025-03-14",
				"Contact Log Start Date":        "2025-03-01",
			},
			wantIssues: 0,
		},
		{
			name: "empty field",
			record: Record{
				"Case #":                        "12891050",
				"30 Day Private Visit Due Date": "  ",
				"Contact Log Start Date":        "2025-03-01",
			},
			wantIssues: 1,
		},
		{
			name:       "all fields absent",
			record:     Record{},
			wantIssues: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateRecord("case_records", "12891050", tt.record, required)
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d", len(issues), tt.wantIssues)
			}
			for _, issue := range issues {
				if issue.Kind != diff.KindContent {
					t.Errorf("kind = %s, want content", issue.Kind)
				}
				if issue.Similarity != 0.0 {
					t.Errorf("similarity = %v, want 0.0", issue.Similarity)
				}
				if issue.Actual != "" {
					t.Errorf("actual = %q, want empty", issue.Actual)
				}
			}
		})
	}
}

func TestValidateCaseRows(t *testing.T) {
	required := []string{"Due Date"}
	rows := []Record{
		{"Case #": "111", "Due Date": "2025-01-02"},
		{"Case #": "222", "Due Date": ""},
		{"Case #": "333", "Due Date": "2025-01-05"},
		{"Case #": "333", "Due Date": "2025-01-06"},
		{"Case #": "999", "Due Date": "2025-01-09"}, // not under check
	}

	issues := ValidateCaseRows("case_records", rows, "Case #", []string{"111", "222", "333", "444"}, required)

	var missingCase, emptyField, duplicate int
	for _, issue := range issues {
		switch issue.Kind {
		case KindMissing:
			missingCase++
			if issue.Expected != "444" {
				t.Errorf("missing case = %q, want 444", issue.Expected)
			}
		case KindCountMismatch:
			duplicate++
			if issue.Expected != "333" {
				t.Errorf("duplicate case = %q, want 333", issue.Expected)
			}
		default:
			emptyField++
		}
	}

	if missingCase != 1 {
		t.Errorf("missing-case issues = %d, want 1", missingCase)
	}
	if emptyField != 1 {
		t.Errorf("empty-field issues = %d, want 1", emptyField)
	}
	if duplicate != 1 {
		t.Errorf("duplicate issues = %d, want 1", duplicate)
	}
}

func TestValidateCaseRowsDuplicatesAllValidated(t *testing.T) {
	rows := []Record{
		{"Case #": "111", "Due Date": ""},
		{"Case #": "111", "Due Date": ""},
	}

	issues := ValidateCaseRows("case_records", rows, "Case #", []string{"111"}, []string{"Due Date"})

	// Both duplicate rows get their own completeness issue, plus one
	// duplicate-count issue.
	var fieldIssues int
	for _, issue := range issues {
		if issue.Kind == diff.KindContent {
			fieldIssues++
		}
	}
	if fieldIssues != 2 {
		t.Errorf("field issues = %d, want one per duplicate row", fieldIssues)
	}
}

package verify

import "testing"

func TestVerifySummaryCounts(t *testing.T) {
	cells := map[[2]int]string{
		{3, 2}:  "12",
		{8, 2}:  "7",
		{13, 2}: "4.0", // general-format cells sometimes read back with a decimal
		{19, 2}: "four",
	}
	cellAt := func(row, col int) (string, bool) {
		v, ok := cells[[2]int{row, col}]
		return v, ok
	}

	checks := []CountCheck{
		{Section: "7-day visits", Row: 3, Column: 2, Expected: 12},
		{Section: "30-day visits", Row: 8, Column: 2, Expected: 9},
		{Section: "90-day visits", Row: 13, Column: 2, Expected: 4},
		{Section: "whereabouts unknown", Row: 19, Column: 2, Expected: 2},
		{Section: "exclusions", Row: 24, Column: 2, Expected: 5},
	}

	issues := VerifySummaryCounts("summary_counts", cellAt, checks)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}

	if issues[0].Kind != KindCountMismatch || issues[0].Position != 8 {
		t.Errorf("issue 0 = %s at row %d, want count_mismatch at 8", issues[0].Kind, issues[0].Position)
	}
	if issues[1].Kind != KindMissing || issues[1].Position != 19 {
		t.Errorf("issue 1 = %s at row %d, want missing at 19 (non-numeric cell)", issues[1].Kind, issues[1].Position)
	}
	if issues[2].Kind != KindMissing || issues[2].Position != 24 {
		t.Errorf("issue 2 = %s at row %d, want missing at 24 (absent cell)", issues[2].Kind, issues[2].Position)
	}
}

func TestVerifySummaryCountsAllMatch(t *testing.T) {
	cellAt := func(row, col int) (string, bool) { return "10", true }

	checks := []CountCheck{
		{Section: "7-day visits", Row: 3, Column: 2, Expected: 10},
		{Section: "30-day visits", Row: 8, Column: 2, Expected: 10},
	}

	if issues := VerifySummaryCounts("summary_counts", cellAt, checks); len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
}

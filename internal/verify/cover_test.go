package verify

import (
	"testing"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

const coverTitle = "CQ091 - QIP 9, 11 - KS2 - Kinship Service/Child in Care"

func TestCheckCoverTitle(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantKind diff.Kind // "" means no issue expected
	}{
		{
			name:     "exact title",
			lines:    []string{"some header", coverTitle, "Version: 1.3"},
			wantKind: "",
		},
		{
			// The suffix keeps the similarity high, so the drift reads as a
			// near-miss rather than different content.
			name:     "title with trailing text",
			lines:    []string{coverTitle + " DRAFT"},
			wantKind: diff.KindSpelling,
		},
		{
			name:     "title not present",
			lines:    []string{"a completely different report"},
			wantKind: KindMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckCoverTitle("cover_page", tt.lines, coverTitle, diff.DefaultThreshold)
			if tt.wantKind == "" {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 {
				t.Fatalf("expected 1 issue, got %d", len(issues))
			}
			if issues[0].Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", issues[0].Kind, tt.wantKind)
			}
		})
	}
}

func TestCheckCoverTitleCaseDrift(t *testing.T) {
	lines := []string{"cq091 - qip 9, 11 - ks2 - kinship service/child in care"}

	issues := CheckCoverTitle("cover_page", lines, coverTitle, diff.DefaultThreshold)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Kind != diff.KindCase {
		t.Errorf("kind = %s, want case", issues[0].Kind)
	}
	if issues[0].Severity != SeverityLow {
		t.Errorf("severity = %s, want low", issues[0].Severity)
	}
}

func TestCheckCoverVersion(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
		wantKind diff.Kind
	}{
		{"matching version", []string{"Report", "Version: 1.3"}, "1.3", ""},
		{"wrong version", []string{"Version: 1.2"}, "1.3", diff.KindContent},
		{"no version marker", []string{"Report"}, "1.3", KindMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckCoverVersion("cover_page", tt.lines, tt.expected)
			if tt.wantKind == "" {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Kind != tt.wantKind {
				t.Fatalf("got %+v, want one %s issue", issues, tt.wantKind)
			}
		})
	}
}

func TestCheckETLDates(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantOK  bool
		missing bool
	}{
		{
			name:   "started before completed",
			line:   "ETL - Started: 14-Mar-2025 09:41:07 AM; CM - Completed: 14-Mar-2025 11:02:55 AM",
			wantOK: true,
		},
		{
			name:   "started after completed",
			line:   "ETL - Started: 14-Mar-2025 11:02:55 PM; CM - Completed: 14-Mar-2025 09:41:07 AM",
			wantOK: false,
		},
		{
			name:   "started equals completed",
			line:   "ETL - Started: 14-Mar-2025 09:41:07 AM; CM - Completed: 14-Mar-2025 09:41:07 AM",
			wantOK: false,
		},
		{
			name:    "pattern absent",
			line:    "no timestamps here",
			wantOK:  false,
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckETLDates("cover_page", []string{"header", tt.line})
			if tt.wantOK {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 {
				t.Fatalf("expected 1 issue, got %d", len(issues))
			}
			if tt.missing && issues[0].Kind != KindMissing {
				t.Errorf("kind = %s, want missing", issues[0].Kind)
			}
			if issues[0].Severity != SeverityHigh {
				t.Errorf("severity = %s, want high", issues[0].Severity)
			}
		})
	}
}

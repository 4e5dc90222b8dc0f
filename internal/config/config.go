package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
)

// SheetPair names one design-spec sheet and its counterpart in the generated
// report, along with the 1-based row each one keeps its column headers on.
type SheetPair struct {
	Design          string `yaml:"design"`
	Report          string `yaml:"report"`
	DesignHeaderRow int    `yaml:"design_header_row"`
	ReportHeaderRow int    `yaml:"report_header_row"`
}

// SummaryPair names the summary sheets and how many first-column field labels
// to compare between them.
type SummaryPair struct {
	Design string `yaml:"design"`
	Report string `yaml:"report"`
	Rows   int    `yaml:"rows"`
}

// CaseChecks configures the case-row completeness checks: which report sheet
// holds the cases, which column identifies them, and which columns must be
// populated for each configured case number.
type CaseChecks struct {
	Sheet           string   `yaml:"sheet"`
	HeaderRow       int      `yaml:"header_row"`
	CaseColumn      string   `yaml:"case_column"`
	CaseNumbers     []string `yaml:"case_numbers"`
	RequiredColumns []string `yaml:"required_columns"`
}

// CountRule pins one numeric summary cell to the body-row count of a report
// sheet.
type CountRule struct {
	Section     string `yaml:"section"`
	SummaryRow  int    `yaml:"summary_row"`
	SummaryCol  int    `yaml:"summary_col"`
	SourceSheet string `yaml:"source_sheet"`
	HeaderRow   int    `yaml:"header_row"`
}

// Config is the full verification run configuration.
type Config struct {
	SimilarityThreshold float64     `yaml:"similarity_threshold"`
	ExpectedTitle       string      `yaml:"expected_title"`
	ExpectedVersion     string      `yaml:"expected_version"`
	Sheets              []SheetPair `yaml:"sheets"`
	Summary             SummaryPair `yaml:"summary"`
	Cases               CaseChecks  `yaml:"cases"`
	Counts              []CountRule `yaml:"counts"`
}

// Default returns the configuration for the CQ091 verification run: three
// standard report sheets, the summary field block, and the case numbers the
// analysts flagged for follow-up.
func Default() *Config {
	return &Config{
		SimilarityThreshold: diff.DefaultThreshold,
		ExpectedVersion:     "1.3",
		Sheets: []SheetPair{
			{Design: "Standard Report 1", Report: "Standard 1 Report", DesignHeaderRow: 9, ReportHeaderRow: 2},
			{Design: "Standard Report 2", Report: "Standard 2 Report", DesignHeaderRow: 9, ReportHeaderRow: 2},
			{Design: "Standard Report 3", Report: "Standard 3 Report", DesignHeaderRow: 9, ReportHeaderRow: 2},
		},
		Summary: SummaryPair{Design: "Summary Report", Report: "Summary Total", Rows: 37},
	}
}

// Load reads a YAML configuration file on top of the defaults and validates
// the result. Zero-valued fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make a run meaningless. Invalid
// configuration is fatal before any comparison begins.
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be between 0 and 1, got %v", c.SimilarityThreshold)
	}

	for i, pair := range c.Sheets {
		if pair.Design == "" || pair.Report == "" {
			return fmt.Errorf("sheets[%d]: both design and report sheet names are required", i)
		}
		if pair.DesignHeaderRow < 1 || pair.ReportHeaderRow < 1 {
			return fmt.Errorf("sheets[%d]: header rows are 1-based and must be positive", i)
		}
	}

	for i, rule := range c.Counts {
		if rule.SummaryRow < 1 || rule.SummaryCol < 1 {
			return fmt.Errorf("counts[%d]: summary_row and summary_col are 1-based and must be positive", i)
		}
		if rule.SourceSheet == "" {
			return fmt.Errorf("counts[%d]: source_sheet is required", i)
		}
	}

	return nil
}

package verifycmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command for verifying a report against its design
// spec.
func NewRunCmd() *cobra.Command {
	var designPath string
	var reportPath string
	var configPath string
	var outputDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Verify a generated report against its design specification",
		Long: `Verify a generated Excel report against the design-specification workbook.

Every test category runs in one pass: cover page metadata, per-sheet column
headers, summary field labels, configured case records, and summary count
cross-checks. Discrepancies are classified (space, case, word order,
spelling, content) with a similarity score and a severity bucket.`,
		Example: `  # Verify with the built-in CQ091 defaults
  repverify verify run --design "CQ091 - Design Spec.xlsx" --report "Final verification-CQ091.xlsx"

  # Verify with a custom configuration and save results elsewhere
  repverify verify run --design spec.xlsx --report report.xlsx --config cq091.yaml --output ./results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(designPath); os.IsNotExist(err) {
				return fmt.Errorf("design spec file not found: %s", designPath)
			}
			if _, err := os.Stat(reportPath); os.IsNotExist(err) {
				return fmt.Errorf("report file not found: %s", reportPath)
			}

			return executeRun(designPath, reportPath, configPath, outputDir, verbose)
		},
	}

	cmd.Flags().StringVar(&designPath, "design", "", "Path to the design-specification workbook (required)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path to the generated report workbook (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration (defaults to the built-in CQ091 profile)")
	cmd.Flags().StringVar(&outputDir, "output", "./verification-results", "Output directory for results")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	_ = cmd.MarkFlagRequired("design")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}

// NewReportCmd creates the report command for rendering saved results.
func NewReportCmd() *cobra.Command {
	var resultsDir string
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a saved verification run",
		Example: `  # Human-readable breakdown
  repverify verify report --results ./verification-results

  # Machine-readable output
  repverify verify report --results ./verification-results --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(resultsDir, format)
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results", "./verification-results", "Directory containing results.json")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or csv")

	return cmd
}

// NewInspectCmd creates the inspect command for dumping a workbook's sheets
// and header rows, a debugging aid when a run reports missing sheets.
func NewInspectCmd() *cobra.Command {
	var filePath string
	var headerRow int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List a workbook's sheets and header rows",
		Example: `  repverify verify inspect --file report.xlsx
  repverify verify inspect --file report.xlsx --header-row 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(filePath); os.IsNotExist(err) {
				return fmt.Errorf("workbook not found: %s", filePath)
			}
			return executeInspect(filePath, headerRow)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the workbook to inspect (required)")
	cmd.Flags().IntVar(&headerRow, "header-row", 1, "1-based row to show as the header of each sheet")

	_ = cmd.MarkFlagRequired("file")
	return cmd
}

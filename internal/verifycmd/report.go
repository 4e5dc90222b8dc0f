package verifycmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/diff"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/results"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verify"
)

func executeReport(resultsDir, format string) error {
	runResults, err := results.Load(resultsDir)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	switch format {
	case "text":
		return printTextReport(runResults)
	case "json":
		return printJSONReport(runResults)
	case "csv":
		return printCSVReport(runResults)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printTextReport(r *verify.RunResults) error {
	fmt.Println("========================================")
	fmt.Printf("Report Verification Results\n")
	fmt.Println("========================================")
	fmt.Printf("Design Spec: %s\n", r.DesignPath)
	fmt.Printf("Report:      %s\n", r.ReportPath)
	fmt.Println()

	for _, category := range r.Categories {
		status := "PASSED"
		if !category.Passed {
			status = "FAILED"
		}
		fmt.Printf("\n[%s] %s\n", status, category.Name)

		for _, issue := range category.Issues {
			if issue.Position > 0 {
				fmt.Printf("  • Position %d: %s (severity: %s)\n", issue.Position, issue.Kind, issue.Severity)
			} else {
				fmt.Printf("  • %s (severity: %s)\n", issue.Kind, issue.Severity)
			}
			fmt.Printf("    Design: %q\n", truncate(issue.Expected, 80))
			fmt.Printf("    Report: %q\n", truncate(issue.Actual, 80))
			if issue.Kind == diff.KindSpelling || issue.Kind == diff.KindContent {
				fmt.Printf("    Similarity: %.0f%%\n", issue.Similarity*100)
			}
			if issue.Message != "" {
				fmt.Printf("    %s\n", issue.Message)
			}
		}
	}

	fmt.Println()
	if r.Passed() {
		fmt.Println("ALL CATEGORIES PASSED")
	} else {
		fmt.Printf("TOTAL ISSUES: %d\n", r.TotalIssues())
	}

	return nil
}

func printJSONReport(r *verify.RunResults) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func printCSVReport(r *verify.RunResults) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"Category", "Position", "Kind", "Severity", "Similarity", "Expected", "Actual", "Message"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, category := range r.Categories {
		for _, issue := range category.Issues {
			row := []string{
				issue.Category,
				strconv.Itoa(issue.Position),
				string(issue.Kind),
				string(issue.Severity),
				fmt.Sprintf("%.4f", issue.Similarity),
				issue.Expected,
				issue.Actual,
				issue.Message,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

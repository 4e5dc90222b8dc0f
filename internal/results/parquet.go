package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verify"
)

// IssueRow is one issue flattened for parquet export, so the data pipeline
// that produced the report can ingest its own verification findings.
type IssueRow struct {
	Category   string  `parquet:"category"`
	Position   int32   `parquet:"position"`
	Expected   string  `parquet:"expected"`
	Actual     string  `parquet:"actual"`
	Kind       string  `parquet:"kind"`
	Similarity float64 `parquet:"similarity"`
	Severity   string  `parquet:"severity"`
	Message    string  `parquet:"message"`
}

// ExportParquet writes every issue of the run to issues.parquet in the output
// directory and returns the path. A clean run still produces the file, with
// zero rows, so downstream consumers can distinguish "verified clean" from
// "never verified".
func ExportParquet(results *verify.RunResults, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, "issues.parquet")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[IssueRow](file)

	for _, category := range results.Categories {
		for _, issue := range category.Issues {
			row := IssueRow{
				Category:   issue.Category,
				Position:   int32(issue.Position),
				Expected:   issue.Expected,
				Actual:     issue.Actual,
				Kind:       string(issue.Kind),
				Similarity: issue.Similarity,
				Severity:   string(issue.Severity),
				Message:    issue.Message,
			}
			if _, err := writer.Write([]IssueRow{row}); err != nil {
				return "", fmt.Errorf("failed to write parquet row: %w", err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return path, nil
}

package verifycmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/config"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/results"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verify"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/workbook"
)

func executeRun(designPath, reportPath, configPath, outputDir string, verbose bool) error {
	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	slog.Info("Starting verification run", "design", designPath, "report", reportPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Loading design spec...")
	design, err := workbook.Load(designPath)
	if err != nil {
		return fmt.Errorf("failed to load design spec: %w", err)
	}
	slog.Info("Design spec loaded", "sheets", len(design.SheetNames()))

	slog.Info("Loading report...")
	report, err := workbook.Load(reportPath)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}
	slog.Info("Report loaded", "sheets", len(report.SheetNames()))

	runner := verify.NewRunner(cfg)
	runResults := runner.Run(design, report)

	printRunSummary(runResults)

	slog.Info("Saving results", "output", outputDir)
	if err := results.Save(runResults, outputDir); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	yamlPath, err := results.SaveToYAML(runResults, outputDir)
	if err != nil {
		return fmt.Errorf("failed to save YAML snapshot: %w", err)
	}
	parquetPath, err := results.ExportParquet(runResults, outputDir)
	if err != nil {
		return fmt.Errorf("failed to export parquet issues: %w", err)
	}

	fmt.Printf("\nResults saved to: %s\n", outputDir)
	fmt.Printf("  YAML snapshot:  %s\n", yamlPath)
	fmt.Printf("  Issue export:   %s\n", parquetPath)
	fmt.Printf("\nGenerate a detailed report with:\n")
	fmt.Printf("  repverify verify report --results %s\n", outputDir)

	return nil
}

func printRunSummary(r *verify.RunResults) {
	fmt.Println("\n========================================")
	fmt.Println("Verification Summary")
	fmt.Println("========================================")
	fmt.Printf("Design Spec: %s\n", r.DesignPath)
	fmt.Printf("Report:      %s\n", r.ReportPath)
	fmt.Println()

	for _, category := range r.Categories {
		status := "PASSED"
		if !category.Passed {
			status = "FAILED"
		}
		fmt.Printf("%-28s %s", category.Name, status)
		if len(category.Issues) > 0 {
			fmt.Printf(" (%d issues)", len(category.Issues))
		}
		fmt.Println()
	}

	fmt.Println()
	if r.Passed() {
		fmt.Println("ALL CATEGORIES PASSED")
	} else {
		fmt.Printf("ISSUES FOUND: %d\n", r.TotalIssues())
	}
	fmt.Println("========================================")
}

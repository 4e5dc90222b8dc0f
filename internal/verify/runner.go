package verify

import (
	"fmt"
	"log/slog"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/config"
	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/workbook"
)

// CategoryResult holds the outcome of one test category.
type CategoryResult struct {
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues,omitempty"`
}

// RunResults is everything a verification run produced, in category order.
type RunResults struct {
	DesignPath string           `json:"design_path"`
	ReportPath string           `json:"report_path"`
	Categories []CategoryResult `json:"categories"`
}

// TotalIssues counts the issues across all categories.
func (r *RunResults) TotalIssues() int {
	total := 0
	for _, c := range r.Categories {
		total += len(c.Issues)
	}
	return total
}

// Passed reports whether every category came back clean.
func (r *RunResults) Passed() bool {
	for _, c := range r.Categories {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Runner executes every verification category over a design-spec workbook and
// the generated report. It holds no state beyond the configuration, so one
// Runner can serve any number of runs.
type Runner struct {
	cfg *config.Config
}

// NewRunner creates a runner for the given configuration. The configuration
// is assumed to be validated already.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run performs the whole verification pass: cover page, per-sheet column
// comparison, summary fields, case rows, and summary counts. A sheet missing
// from either workbook becomes a high-severity issue for that category and
// the run continues; Run itself never fails.
func (r *Runner) Run(design, report *workbook.Workbook) *RunResults {
	results := &RunResults{
		DesignPath: design.Path,
		ReportPath: report.Path,
	}

	results.add(r.checkCoverPage(report))
	for _, pair := range r.cfg.Sheets {
		results.add(r.compareSheetColumns(design, report, pair))
	}
	results.add(r.compareSummaryFields(design, report))
	if r.cfg.Cases.Sheet != "" {
		results.add(r.checkCaseRows(report))
	}
	if len(r.cfg.Counts) > 0 {
		results.add(r.checkSummaryCounts(report))
	}

	return results
}

func (res *RunResults) add(c CategoryResult) {
	c.Passed = len(c.Issues) == 0
	slog.Debug("Category finished", "category", c.Name, "passed", c.Passed, "issues", len(c.Issues))
	res.Categories = append(res.Categories, c)
}

func (r *Runner) checkCoverPage(report *workbook.Workbook) CategoryResult {
	const name = "cover_page"
	lines := report.First().Lines()

	var issues []Issue
	if r.cfg.ExpectedTitle != "" {
		issues = append(issues, CheckCoverTitle(name, lines, r.cfg.ExpectedTitle, r.cfg.SimilarityThreshold)...)
	}
	if r.cfg.ExpectedVersion != "" {
		issues = append(issues, CheckCoverVersion(name, lines, r.cfg.ExpectedVersion)...)
	}
	issues = append(issues, CheckETLDates(name, lines)...)

	return CategoryResult{Name: name, Issues: issues}
}

func (r *Runner) compareSheetColumns(design, report *workbook.Workbook, pair config.SheetPair) CategoryResult {
	name := fmt.Sprintf("columns:%s", pair.Report)

	designSheet, ok := design.Sheet(pair.Design)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, pair.Design, design.Path)}}
	}
	reportSheet, ok := report.Sheet(pair.Report)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, pair.Report, report.Path)}}
	}

	expected := designSheet.HeaderRow(pair.DesignHeaderRow)
	actual := reportSheet.HeaderRow(pair.ReportHeaderRow)
	return CategoryResult{Name: name, Issues: CompareColumnSets(name, expected, actual, r.cfg.SimilarityThreshold)}
}

func (r *Runner) compareSummaryFields(design, report *workbook.Workbook) CategoryResult {
	const name = "summary_fields"

	designSheet, ok := design.Sheet(r.cfg.Summary.Design)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, r.cfg.Summary.Design, design.Path)}}
	}
	reportSheet, ok := report.Sheet(r.cfg.Summary.Report)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, r.cfg.Summary.Report, report.Path)}}
	}

	expected := designSheet.Column(1, r.cfg.Summary.Rows)
	actual := reportSheet.Column(1, r.cfg.Summary.Rows)
	return CategoryResult{Name: name, Issues: CompareColumnSets(name, expected, actual, r.cfg.SimilarityThreshold)}
}

func (r *Runner) checkCaseRows(report *workbook.Workbook) CategoryResult {
	const name = "case_records"
	cases := r.cfg.Cases

	sheet, ok := report.Sheet(cases.Sheet)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, cases.Sheet, report.Path)}}
	}

	rows := make([]Record, 0)
	for _, rec := range sheet.BodyRecords(cases.HeaderRow) {
		rows = append(rows, Record(rec))
	}

	issues := ValidateCaseRows(name, rows, cases.CaseColumn, cases.CaseNumbers, cases.RequiredColumns)
	return CategoryResult{Name: name, Issues: issues}
}

func (r *Runner) checkSummaryCounts(report *workbook.Workbook) CategoryResult {
	const name = "summary_counts"

	summarySheet, ok := report.Sheet(r.cfg.Summary.Report)
	if !ok {
		return CategoryResult{Name: name, Issues: []Issue{missingSheet(name, r.cfg.Summary.Report, report.Path)}}
	}

	var issues []Issue
	var checks []CountCheck
	for _, rule := range r.cfg.Counts {
		source, ok := report.Sheet(rule.SourceSheet)
		if !ok {
			issues = append(issues, missingSheet(name, rule.SourceSheet, report.Path))
			continue
		}
		checks = append(checks, CountCheck{
			Section:  rule.Section,
			Row:      rule.SummaryRow,
			Column:   rule.SummaryCol,
			Expected: source.BodyRowCount(rule.HeaderRow),
		})
	}

	issues = append(issues, VerifySummaryCounts(name, summarySheet.Cell, checks)...)
	return CategoryResult{Name: name, Issues: issues}
}

// missingSheet is the structural-error issue: the category cannot proceed for
// this sheet, but the run continues with the remaining categories.
func missingSheet(category, sheet, path string) Issue {
	return Issue{
		Category: category,
		Expected: sheet,
		Actual:   "",
		Kind:     KindMissing,
		Severity: SeverityHigh,
		Message:  fmt.Sprintf("sheet %q not found in %s", sheet, path),
	}
}

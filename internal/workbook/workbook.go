package workbook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet holds one worksheet's cell values as the loader read them.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is an in-memory view of an .xlsx document: every sheet, in file
// order, with raw cell text.
type Workbook struct {
	Path   string
	order  []string
	sheets map[string]*Sheet
}

// New assembles a workbook from already-loaded sheets, preserving their
// order. Verification code only ever sees this in-memory form, so tests can
// build fixtures without touching the filesystem.
func New(path string, sheets []*Sheet) *Workbook {
	wb := &Workbook{
		Path:   path,
		sheets: make(map[string]*Sheet, len(sheets)),
	}
	for _, s := range sheets {
		wb.order = append(wb.order, s.Name)
		wb.sheets[s.Name] = s
	}
	return wb
}

// Load reads an .xlsx file into memory. The whole document is materialized up
// front: verification is a single batch pass and the workbooks involved are
// small.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	wb := &Workbook{
		Path:   path,
		order:  names,
		sheets: make(map[string]*Sheet, len(names)),
	}

	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		wb.sheets[name] = &Sheet{Name: name, Rows: rows}
		slog.Debug("Loaded sheet", "workbook", path, "sheet", name, "rows", len(rows))
	}

	return wb, nil
}

// SheetNames returns the sheet names in file order.
func (w *Workbook) SheetNames() []string {
	return w.order
}

// Sheet returns the named sheet, or false if the workbook has no such sheet.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// First returns the first sheet in the workbook. The cover page is always the
// first sheet, whatever it happens to be named.
func (w *Workbook) First() *Sheet {
	return w.sheets[w.order[0]]
}

// HeaderRow returns the non-empty cells of the given 1-based row, each
// stripped of surrounding whitespace. Rows past the end of the sheet yield an
// empty slice, not an error: a missing header surfaces downstream as a count
// mismatch.
func (s *Sheet) HeaderRow(row int) []string {
	if row < 1 || row > len(s.Rows) {
		return nil
	}

	var labels []string
	for _, cell := range s.Rows[row-1] {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			labels = append(labels, cell)
		}
	}
	return labels
}

// Column returns the non-empty cells of the given 1-based column across the
// first maxRows rows (all rows when maxRows <= 0), trimmed.
func (s *Sheet) Column(col, maxRows int) []string {
	if maxRows <= 0 || maxRows > len(s.Rows) {
		maxRows = len(s.Rows)
	}

	var values []string
	for i := 0; i < maxRows; i++ {
		row := s.Rows[i]
		if col < 1 || col > len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col-1])
		if cell != "" {
			values = append(values, cell)
		}
	}
	return values
}

// Cell returns the trimmed value of a 1-based (row, col) cell and whether the
// cell exists on the sheet.
func (s *Sheet) Cell(row, col int) (string, bool) {
	if row < 1 || row > len(s.Rows) {
		return "", false
	}
	cells := s.Rows[row-1]
	if col < 1 || col > len(cells) {
		return "", false
	}
	return strings.TrimSpace(cells[col-1]), true
}

// Lines flattens every row into a single space-joined string, mirroring how
// free-form cover pages are scanned for title, version, and timestamp
// markers.
func (s *Sheet) Lines() []string {
	lines := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		var parts []string
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				parts = append(parts, cell)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// BodyRecords maps each body row below the 1-based header row to a
// field-name -> value record keyed by the trimmed header labels. Rows with no
// non-empty cells are skipped.
func (s *Sheet) BodyRecords(headerRow int) []map[string]string {
	if headerRow < 1 || headerRow >= len(s.Rows) {
		return nil
	}

	headers := make([]string, len(s.Rows[headerRow-1]))
	for i, h := range s.Rows[headerRow-1] {
		headers[i] = strings.TrimSpace(h)
	}

	var records []map[string]string
	for _, row := range s.Rows[headerRow:] {
		record := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[header] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			records = append(records, record)
		}
	}
	return records
}

// BodyRowCount counts the non-empty body rows below the 1-based header row.
func (s *Sheet) BodyRowCount(headerRow int) int {
	return len(s.BodyRecords(headerRow))
}

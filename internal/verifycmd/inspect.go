package verifycmd

import (
	"fmt"
	"strings"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/workbook"
)

func executeInspect(filePath string, headerRow int) error {
	wb, err := workbook.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	fmt.Printf("Workbook: %s\n", filePath)
	fmt.Printf("Sheets:   %d\n\n", len(wb.SheetNames()))

	for i, name := range wb.SheetNames() {
		sheet, _ := wb.Sheet(name)
		fmt.Printf("[%d] %s (%d rows)\n", i+1, name, len(sheet.Rows))

		headers := sheet.HeaderRow(headerRow)
		if len(headers) == 0 {
			fmt.Printf("    row %d: (empty)\n", headerRow)
			continue
		}
		fmt.Printf("    row %d: %s\n", headerRow, strings.Join(headers, " | "))
	}

	return nil
}

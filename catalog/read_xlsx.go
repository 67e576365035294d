package catalog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads catalog rows from the first sheet. Column A is the name,
// B the description and C the manufacturer; trailing empty cells are allowed.
func readXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel catalog %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel catalog %s has no sheets", path)
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %s: %w", path, err)
	}

	rows := make([]Row, 0, len(cells))
	for i, cols := range cells {
		if len(cols) == 0 {
			continue
		}
		if len(cols) > FieldCount {
			return nil, fmt.Errorf("%s row %d: %w (got %d, want %d)", path, i+1, ErrFieldCount, len(cols), FieldCount)
		}
		padded := make([]string, FieldCount)
		copy(padded, cols)
		rows = append(rows, Row{Name: padded[0], Description: padded[1], Manufacturer: padded[2]})
	}
	return rows, nil
}

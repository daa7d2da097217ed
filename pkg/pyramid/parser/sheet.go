package parser

import (
	"fmt"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
	"github.com/xuri/excelize/v2"
)

// SheetSeries reads a series table from a sheet.
//
// The table is the bounding box of the non-empty cells. Its first row holds
// the series headers (the top-left cell is ignored), its first column holds
// the category labels, and every other cell is a value:
//
//	Age    Men       Women [L]
//	0-4    1302329   1224757
//	5-9    1225196   1129454
//
// An empty sheet name selects the first sheet.
func SheetSeries(f *excelize.File, sheetName string) ([]models.Series, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 || maxRow == minRow || maxCol == minCol {
		return nil, fmt.Errorf("%w: %q", ErrNoTable, sheetName)
	}

	series := make([]models.Series, 0, maxCol-minCol)
	for col := minCol + 1; col <= maxCol; col++ {
		var s models.Series
		s.Label, s.Direction = parseHeader(cellAt(rows, minRow, col))
		for row := minRow + 1; row <= maxRow; row++ {
			label := cellAt(rows, row, minCol)
			if label == "" {
				return nil, newCellError(sheetName, minCol, row, fmt.Errorf("missing category label"))
			}
			v, err := parseValue(cellAt(rows, row, col))
			if err != nil {
				return nil, newCellError(sheetName, col, row, err)
			}
			s.Data = append(s.Data, models.DataPair{Label: label, Value: v})
		}
		series = append(series, s)
	}

	return series, nil
}

// WorkbookSheetSeries opens an xlsx file and reads the series table of a sheet.
func WorkbookSheetSeries(xlsxPath, sheetName string) (*models.Document, error) {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := SheetSeries(f, sheetName)
	if err != nil {
		return nil, err
	}
	return &models.Document{Series: series}, nil
}

func newCellError(sheet string, col, row int, err error) *CellError {
	// rows and columns are 0-based here
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return &CellError{Sheet: sheet, Cell: name, Err: err}
}

func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

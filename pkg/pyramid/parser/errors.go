package parser

import (
	"errors"
	"fmt"
)

// ErrChartNotFound indicates the workbook has no matching bar chart.
var ErrChartNotFound = errors.New("no bar chart found in workbook")

// ErrNoTable indicates a sheet holds no series table.
var ErrNoTable = errors.New("no series table found in sheet")

// CellError represents an unreadable cell in a series table.
type CellError struct {
	Sheet string
	Cell  string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s: %v", e.Sheet, e.Cell, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

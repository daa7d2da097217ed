package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange is a rectangular range on one sheet, 1-based and inclusive.
type cellRange struct {
	sheet  string
	c1, r1 int
	c2, r2 int
}

// parseRangeReference parses a reference such as 'Sheet 1'!$A$2:$A$22 or
// Sheet1!$B$1.
func parseRangeReference(ref string) (cellRange, error) {
	var cr cellRange

	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return cr, fmt.Errorf("range %q has no sheet name", ref)
	}
	cr.sheet = strings.ReplaceAll(strings.Trim(ref[:idx], "'"), "''", "'")

	rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return cr, fmt.Errorf("range %q is not rectangular", ref)
	}

	var err error
	cr.c1, cr.r1, err = excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cr, fmt.Errorf("range %q: %w", ref, err)
	}
	cr.c2, cr.r2 = cr.c1, cr.r1
	if len(parts) == 2 {
		cr.c2, cr.r2, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return cr, fmt.Errorf("range %q: %w", ref, err)
		}
	}
	if cr.c2 < cr.c1 {
		cr.c1, cr.c2 = cr.c2, cr.c1
	}
	if cr.r2 < cr.r1 {
		cr.r1, cr.r2 = cr.r2, cr.r1
	}
	return cr, nil
}

// cells returns the cell names of the range in row-major order.
func (cr cellRange) cells() []string {
	var names []string
	for r := cr.r1; r <= cr.r2; r++ {
		for c := cr.c1; c <= cr.c2; c++ {
			name, _ := excelize.CoordinatesToCellName(c, r)
			names = append(names, name)
		}
	}
	return names
}

// readRange returns the displayed values of every cell in ref.
func readRange(f *excelize.File, ref string) ([]string, error) {
	cr, err := parseRangeReference(ref)
	if err != nil {
		return nil, err
	}

	names := cr.cells()
	values := make([]string, len(names))
	for i, name := range names {
		v, err := f.GetCellValue(cr.sheet, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s!%s: %w", cr.sheet, name, err)
		}
		values[i] = v
	}
	return values, nil
}

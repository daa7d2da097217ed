package pyramid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/parser"
)

// LoadOptions selects where series are read from in a workbook.
type LoadOptions struct {
	// Sheet is the sheet holding the series table. Empty means the first sheet.
	Sheet string
	// FromCharts reads the series of a bar chart instead of a sheet table.
	FromCharts bool
	// Chart is the drawing name of the chart to use with FromCharts.
	// Empty means the first bar chart.
	Chart string
}

// Load reads a series document from a .json or .xlsx file.
func Load(path string, opts LoadOptions) (*models.Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		doc *models.Document
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		doc, err = parser.ReadJSONFile(path)
	case ".xlsx", ".xlsm":
		if opts.FromCharts {
			doc, err = parser.WorkbookChartSeries(path, opts.Chart)
		} else {
			doc, err = parser.WorkbookSheetSeries(path, opts.Sheet)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// ApplyDirections sets the direction token of every series whose label is a
// key of directions.
func ApplyDirections(series []models.Series, directions map[string]string) {
	for i := range series {
		if token, ok := directions[series[i].Label]; ok {
			series[i].Direction = token
		}
	}
}

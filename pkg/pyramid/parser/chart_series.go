package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
	"github.com/xuri/excelize/v2"
)

// ChartSeries resolves the range references of a workbook chart into series.
// Category labels and values are read from the referenced cells; a series
// name of the form "Women [L]" also sets the direction.
func ChartSeries(f *excelize.File, chart models.ChartSource) ([]models.Series, error) {
	series := make([]models.Series, 0, len(chart.Series))
	for i, ref := range chart.Series {
		s, err := resolveChartSeries(f, i, ref)
		if err != nil {
			return nil, fmt.Errorf("chart %q series %d: %w", chart.Name, i+1, err)
		}
		series = append(series, s)
	}
	return series, nil
}

func resolveChartSeries(f *excelize.File, index int, ref models.ChartSeriesRef) (models.Series, error) {
	var s models.Series

	name := ref.Name
	if ref.NameRange != "" {
		names, err := readRange(f, ref.NameRange)
		if err != nil {
			return s, err
		}
		if len(names) > 0 && names[0] != "" {
			name = names[0]
		}
	}
	if name == "" {
		name = "Series " + strconv.Itoa(index+1)
	}
	s.Label, s.Direction = parseHeader(name)

	if ref.ValueRange == "" {
		return s, fmt.Errorf("series %q has no value range", s.Label)
	}
	values, err := readRange(f, ref.ValueRange)
	if err != nil {
		return s, err
	}

	var labels []string
	if ref.CategoryRange != "" {
		if labels, err = readRange(f, ref.CategoryRange); err != nil {
			return s, err
		}
		if len(labels) != len(values) {
			return s, fmt.Errorf("series %q has %d categories but %d values", s.Label, len(labels), len(values))
		}
	} else {
		// Excel numbers categories from 1 when none are given.
		labels = make([]string, len(values))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	s.Data = make([]models.DataPair, len(values))
	for i, raw := range values {
		v, err := parseValue(raw)
		if err != nil {
			return s, fmt.Errorf("series %q category %q: %w", s.Label, labels[i], err)
		}
		s.Data[i] = models.DataPair{Label: labels[i], Value: v}
	}
	return s, nil
}

// WorkbookChartSeries reads the series of the bar chart in xlsxPath with a
// matching name. With an empty name, horizontal bar charts are preferred
// over column charts. A fixed value axis on the chart becomes the
// document's XAxisMax.
func WorkbookChartSeries(xlsxPath, name string) (*models.Document, error) {
	charts, err := ExtractCharts(xlsxPath)
	if err != nil {
		return nil, err
	}

	chart, ok := selectChart(charts, name)
	if !ok {
		if name != "" {
			return nil, fmt.Errorf("%w: %q", ErrChartNotFound, name)
		}
		return nil, ErrChartNotFound
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ChartSeries(f, chart)
	if err != nil {
		return nil, err
	}
	return &models.Document{
		Title:    chart.Title,
		Series:   series,
		XAxisMax: chart.ValueAxisBound(),
	}, nil
}

func selectChart(charts []models.ChartSource, name string) (models.ChartSource, bool) {
	var fallback *models.ChartSource
	for i, chart := range charts {
		if !chart.IsBar() {
			continue
		}
		if name != "" {
			if chart.Name == name {
				return chart, true
			}
			continue
		}
		if chart.Horizontal() {
			return chart, true
		}
		if fallback == nil {
			fallback = &charts[i]
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return models.ChartSource{}, false
}

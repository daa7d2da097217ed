package models

import "math"

// ChartSeriesRef holds the range references of one series in a workbook chart.
type ChartSeriesRef struct {
	// Name is the literal series name, if the workbook caches one.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the range reference for the category labels.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the range reference for the values.
	ValueRange string `json:"value_range,omitempty"`
}

// ChartSource describes a chart found in a workbook.
type ChartSource struct {
	// Sheet is the sheet owning the chart drawing.
	Sheet string `json:"sheet"`
	// Name is the drawing object name (e.g. "Chart 1").
	Name string `json:"name"`
	// ChartType is the chart type (e.g. Bar, 3DBar).
	ChartType string `json:"chart_type"`
	// BarDir is the bar direction ("bar" or "col") for bar charts.
	BarDir string `json:"bar_dir,omitempty"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// ValueAxisRange is the value axis [min, max] when fixed in the workbook.
	ValueAxisRange []float64 `json:"value_axis_range,omitempty"`
	// Series is the list of series references.
	Series []ChartSeriesRef `json:"series"`
}

// IsBar reports whether the chart is a bar or column chart.
func (c ChartSource) IsBar() bool {
	return c.ChartType == "Bar" || c.ChartType == "3DBar"
}

// Horizontal reports whether the bars run horizontally.
func (c ChartSource) Horizontal() bool {
	return c.BarDir == "bar"
}

// ValueAxisBound returns the largest magnitude of the fixed value-axis
// range, or 0 when the axis scales automatically.
func (c ChartSource) ValueAxisBound() float64 {
	var bound float64
	for _, v := range c.ValueAxisRange {
		bound = math.Max(bound, math.Abs(v))
	}
	return bound
}

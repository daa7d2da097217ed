package models

// Datapoints is a flat buffer of point records as produced by a charting
// engine's bar layout. Each record has Format fields.
type Datapoints struct {
	// Format is the number of fields per point record.
	Format int `json:"format"`
	// Points holds the records back to back.
	Points []float64 `json:"points"`
}

// Len returns the number of point records.
func (d Datapoints) Len() int {
	if d.Format <= 0 {
		return 0
	}
	return len(d.Points) / d.Format
}

// Record returns the i-th point record.
func (d Datapoints) Record(i int) []float64 {
	return d.Points[i*d.Format : (i+1)*d.Format]
}

// Bars is the bar rendering configuration handed to the engine.
type Bars struct {
	Show       bool    `json:"show"`
	Horizontal bool    `json:"horizontal"`
	Align      string  `json:"align"`
	BarWidth   float64 `json:"bar_width"`
}

// Tick is a formatted value-axis tick.
type Tick struct {
	// Value is the raw (signed) axis position.
	Value float64 `json:"value"`
	// Label is the display string.
	Label string `json:"label"`
}

// ValueAxis is the symmetric value axis.
type ValueAxis struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Ticks []Tick  `json:"ticks,omitempty"`
}

// CategoryAxis is the shared category axis.
type CategoryAxis struct {
	Ticks []Category `json:"ticks"`
}

// RenderedSeries is a series after both processing phases.
type RenderedSeries struct {
	// Label is the series display name.
	Label string `json:"label"`
	// Direction is the resolved direction ("left" or "right").
	Direction string `json:"direction"`
	// Data is the normalized (ordinal, value) data.
	Data []Point `json:"data"`
	// Datapoints is the transformed point buffer.
	Datapoints Datapoints `json:"datapoints"`
}

// Chart is the complete result of a pyramid render pass.
type Chart struct {
	// Title is an optional chart title (e.g. taken from a workbook chart).
	Title string `json:"title,omitempty"`
	// Bars is the bar configuration.
	Bars Bars `json:"bars"`
	// XAxis is the value axis.
	XAxis ValueAxis `json:"x_axis"`
	// YAxis is the category axis.
	YAxis CategoryAxis `json:"y_axis"`
	// Series contains the rendered series in input order.
	Series []RenderedSeries `json:"series"`
}

// Report summarizes the option-processing phase of a set of series.
type Report struct {
	// Series is the number of series checked.
	Series int `json:"series"`
	// Categories is the shared category registry.
	Categories []Category `json:"categories"`
	// Bound is the symmetric value-axis bound.
	Bound float64 `json:"bound"`
	// Min and Max are the value-axis range.
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

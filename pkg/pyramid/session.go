package pyramid

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// AxisConfig is the part of an engine axis configuration this package reads
// and writes.
type AxisConfig struct {
	Min           *float64
	Max           *float64
	TickFormatter TickFormatter
	Ticks         []models.Category
}

// ChartConfig is the engine chart configuration seen during option
// processing.
type ChartConfig struct {
	Bars  models.Bars
	XAxis AxisConfig
	YAxis AxisConfig
}

// Session holds the per-chart state of a pyramid render: the category
// registry and the running value-axis bound. Use one Session per chart.
// A Session is not safe for concurrent use.
type Session struct {
	opts     Options
	log      *log.Logger
	registry *Registry
	bound    float64
	config   *ChartConfig
}

// NewSession creates a session with a fresh registry.
func NewSession(opts Options) *Session {
	return &Session{
		opts:     opts,
		log:      opts.logger(),
		registry: NewRegistry(),
		bound:    opts.XAxisMax,
	}
}

// Registry returns the session's category registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Bound returns the current value-axis bound.
func (s *Session) Bound() float64 {
	return s.bound
}

// Range returns the symmetric value-axis range for the current bound.
func (s *Session) Range() (lo, hi float64) {
	return SymmetricRange(s.bound)
}

// Reset clears the registry and restores the initial bound.
func (s *Session) Reset() {
	s.registry.Reset()
	s.bound = s.opts.XAxisMax
	s.config = nil
}

// ProcessOptions configures cfg for pyramid rendering: horizontal centered
// bars, an absolute-value tick formatter on the value axis wrapping any
// existing one, and the category ticks on the category axis. A value-axis
// max already present in cfg seeds the bound. It reports false and leaves
// cfg alone when pyramid mode is off.
func (s *Session) ProcessOptions(cfg *ChartConfig) bool {
	if !s.opts.Show {
		return false
	}

	cfg.Bars.Show = true
	cfg.Bars.Horizontal = true
	cfg.Bars.Align = "center"
	cfg.Bars.BarWidth = s.opts.EffectiveBarWidth()

	inner := cfg.XAxis.TickFormatter
	if inner == nil {
		inner = s.opts.TickFormatter
	}
	cfg.XAxis.TickFormatter = ValueTickFormatter(inner)

	if cfg.XAxis.Max != nil {
		s.bound = math.Max(s.bound, math.Abs(*cfg.XAxis.Max))
	}
	s.config = cfg
	s.syncAxes()
	return true
}

// ProcessRawData normalizes the series at index and folds it into the
// value-axis bound.
func (s *Session) ProcessRawData(index int, series models.Series) (*NormalizedSeries, error) {
	wasEmpty := s.registry.IsEmpty()
	ns, err := Normalize(s.registry, index, series)
	if err != nil {
		return nil, err
	}
	if wasEmpty {
		s.log.Debug("category registry established", "series", series.Label, "categories", s.registry.Len())
	}

	if bound := UpdateBound(s.bound, ns.Data); bound != s.bound {
		s.log.Debug("value axis bound grew", "series", series.Label, "from", s.bound, "to", bound)
		s.bound = bound
	}
	s.syncAxes()
	return ns, nil
}

// ProcessDatapoints rewrites the engine's vertical bar points for ns into
// horizontal, direction-signed points.
func (s *Session) ProcessDatapoints(ns *NormalizedSeries, dp models.Datapoints) (models.Datapoints, error) {
	out, err := TransformPoints(ns.Direction, dp)
	if err != nil {
		return models.Datapoints{}, NewSeriesError(ns.Index, ns.Label(), err)
	}
	s.log.Debug("points transformed", "series", ns.Label(), "direction", ns.Direction, "points", out.Len())
	return out, nil
}

func (s *Session) syncAxes() {
	if s.config == nil {
		return
	}
	lo, hi := s.Range()
	s.config.XAxis.Min = &lo
	s.config.XAxis.Max = &hi
	s.config.YAxis.Ticks = s.registry.Categories()
}

// Render runs both processing phases over series and returns the chart.
// Unless Options.Incremental is set, the session is reset first.
func (s *Session) Render(series []models.Series) (*models.Chart, error) {
	if !s.opts.Incremental {
		s.Reset()
	}

	cfg := &ChartConfig{}
	if !s.ProcessOptions(cfg) {
		return nil, ErrDisabled
	}

	normalized := make([]*NormalizedSeries, 0, len(series))
	for i, sr := range series {
		ns, err := s.ProcessRawData(i, sr)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, ns)
	}

	chart := &models.Chart{
		Bars:   cfg.Bars,
		YAxis:  models.CategoryAxis{Ticks: cfg.YAxis.Ticks},
		Series: make([]models.RenderedSeries, 0, len(normalized)),
	}
	for _, ns := range normalized {
		dp, err := s.ProcessDatapoints(ns, BarPoints(ns))
		if err != nil {
			return nil, err
		}
		chart.Series = append(chart.Series, models.RenderedSeries{
			Label:      ns.Label(),
			Direction:  ns.Direction.String(),
			Data:       ns.Data,
			Datapoints: dp,
		})
	}

	lo, hi := s.Range()
	chart.XAxis = models.ValueAxis{Min: lo, Max: hi}
	axis := AxisContext{Min: lo, Max: hi}
	for _, v := range ValueTicks(lo, hi, s.opts.TickCount) {
		chart.XAxis.Ticks = append(chart.XAxis.Ticks, models.Tick{
			Value: v,
			Label: cfg.XAxis.TickFormatter(v, axis),
		})
	}

	s.log.Debug("pyramid rendered", "series", len(chart.Series), "bound", s.bound)
	return chart, nil
}

// Render renders series as a pyramid chart in a fresh session.
func Render(opts Options, series []models.Series) (*models.Chart, error) {
	return NewSession(opts).Render(series)
}

// Validate runs only the option-processing phase over series and reports
// the resulting registry and bound. The session is reset first unless
// Options.Incremental is set.
func (s *Session) Validate(series []models.Series) (*models.Report, error) {
	if !s.opts.Incremental {
		s.Reset()
	}
	for i, sr := range series {
		if _, err := s.ProcessRawData(i, sr); err != nil {
			return nil, err
		}
	}
	lo, hi := s.Range()
	return &models.Report{
		Series:     len(series),
		Categories: s.registry.Categories(),
		Bound:      s.bound,
		Min:        lo,
		Max:        hi,
	}, nil
}

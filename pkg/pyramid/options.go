// Package pyramid turns categorical bar series into population pyramid chart data.
package pyramid

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultBarWidth is the bar width used when Options.BarWidth is unset.
const DefaultBarWidth = 0.6

// Options configures a pyramid chart session.
type Options struct {
	// Show enables pyramid mode. When false, ProcessOptions leaves the
	// chart configuration untouched.
	Show bool
	// BarWidth overrides the bar width forwarded to the engine.
	// Zero means DefaultBarWidth.
	BarWidth float64
	// XAxisMax is a caller-specified initial value-axis bound. The bound
	// only ever grows from here.
	XAxisMax float64
	// TickFormatter is an optional user formatter for value-axis ticks.
	// It always receives the absolute tick value.
	TickFormatter TickFormatter
	// Incremental keeps the registry and bound across Render calls on the
	// same session so that one chart can be built over several passes.
	Incremental bool
	// TickCount is the number of labelled value-axis ticks Render emits.
	// Zero disables tick output.
	TickCount int
	// Logger receives debug output. If nil, logging is discarded.
	Logger *log.Logger
}

// DefaultOptions returns options with pyramid mode enabled.
func DefaultOptions() Options {
	return Options{
		Show: true,
	}
}

// EffectiveBarWidth returns the configured bar width or the default.
func (o Options) EffectiveBarWidth() float64 {
	if o.BarWidth > 0 {
		return o.BarWidth
	}
	return DefaultBarWidth
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

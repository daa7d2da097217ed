package pyramid

import (
	"math"
	"strconv"
)

// AxisContext is the value axis a tick belongs to.
type AxisContext struct {
	Min float64
	Max float64
}

// TickFormatter formats a value-axis tick.
type TickFormatter func(value float64, axis AxisContext) string

// FormatNumber stringifies v in the shortest exact form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValueTickFormatter wraps inner so that ticks are always shown as their
// absolute value. A nil inner formats the number directly.
func ValueTickFormatter(inner TickFormatter) TickFormatter {
	return func(value float64, axis AxisContext) string {
		value = math.Abs(value)
		if inner != nil {
			return inner(value, axis)
		}
		return FormatNumber(value)
	}
}

// ScaledFormatter divides ticks by scale and appends suffix, e.g. a scale of
// 1000 and suffix " K" turns 25000 into "25 K". Zero is printed as "0".
// Negative decimals use the shortest representation.
func ScaledFormatter(scale float64, suffix string, decimals int) TickFormatter {
	if scale == 0 {
		scale = 1
	}
	return func(value float64, _ AxisContext) string {
		if value == 0 {
			return "0"
		}
		return strconv.FormatFloat(value/scale, 'f', decimals, 64) + suffix
	}
}

// ValueTicks returns count evenly spaced tick positions from lo to hi,
// inclusive. A degenerate range (hi == lo, as for an all-zero chart) yields
// the single tick lo. Count below 2 or hi < lo yields nil.
func ValueTicks(lo, hi float64, count int) []float64 {
	if count < 2 || hi < lo {
		return nil
	}
	if hi == lo {
		return []float64{lo}
	}
	step := (hi - lo) / float64(count-1)
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = lo + step*float64(i)
	}
	ticks[count-1] = hi
	return ticks
}

package pyramid

import (
	"errors"
	"fmt"
)

// PluginName identifies errors raised by this package.
const PluginName = "pyramid"

// ErrInvalidDirection indicates a series direction token is not recognized.
var ErrInvalidDirection = errors.New("invalid direction specified for pyramid series: use 'L' or 'W' for left, or 'R' or 'E' for right (default is right)")

// ErrInvalidData indicates a series does not share the chart's category labels.
var ErrInvalidData = errors.New("invalid series for pyramid plot: the supplied data must have exactly the same labels")

// ErrEmptySeries indicates a series has no data.
var ErrEmptySeries = errors.New("pyramid series has no data")

// ErrMalformedPoints indicates a datapoints buffer is not a whole number of records.
var ErrMalformedPoints = errors.New("malformed datapoints buffer")

// Kind classifies pyramid errors.
type Kind int

const (
	// KindUnknown is any error not raised by this package.
	KindUnknown Kind = iota
	// KindInvalidDirection matches ErrInvalidDirection.
	KindInvalidDirection
	// KindInvalidData matches ErrInvalidData.
	KindInvalidData
	// KindEmptySeries matches ErrEmptySeries.
	KindEmptySeries
	// KindMalformedPoints matches ErrMalformedPoints.
	KindMalformedPoints
)

func (k Kind) String() string {
	switch k {
	case KindInvalidDirection:
		return "InvalidDirection"
	case KindInvalidData:
		return "InvalidData"
	case KindEmptySeries:
		return "EmptySeries"
	case KindMalformedPoints:
		return "MalformedPoints"
	default:
		return "Unknown"
	}
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidDirection):
		return KindInvalidDirection
	case errors.Is(err, ErrInvalidData):
		return KindInvalidData
	case errors.Is(err, ErrEmptySeries):
		return KindEmptySeries
	case errors.Is(err, ErrMalformedPoints):
		return KindMalformedPoints
	default:
		return KindUnknown
	}
}

// SeriesError represents an error while processing one series.
type SeriesError struct {
	Plugin string
	Series string // series label
	Index  int    // position of the series in the chart
	Err    error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("%s: series %q (#%d): %v", e.Plugin, e.Series, e.Index, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// Kind returns the kind of the underlying error.
func (e *SeriesError) Kind() Kind {
	return KindOf(e.Err)
}

// NewSeriesError creates a new SeriesError.
func NewSeriesError(index int, series string, err error) *SeriesError {
	return &SeriesError{
		Plugin: PluginName,
		Series: series,
		Index:  index,
		Err:    err,
	}
}

// ErrDisabled indicates a render was requested with pyramid mode off.
var ErrDisabled = errors.New("pyramid mode is disabled")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedInput indicates the input file type is not recognized.
var ErrUnsupportedInput = errors.New("unsupported input format")

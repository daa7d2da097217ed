package pyramid

import (
	"fmt"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// BarFormat is the record arity of categorical bar points: ordinal, value
// and bar base.
const BarFormat = 3

// BarPoints lays out the ordinary vertical bar points of a normalized series
// as a charting engine would: (ordinal, value, 0) per category.
func BarPoints(ns *NormalizedSeries) models.Datapoints {
	points := make([]float64, 0, len(ns.Data)*BarFormat)
	for _, p := range ns.Data {
		points = append(points, float64(p.Ordinal), p.Value, 0)
	}
	return models.Datapoints{Format: BarFormat, Points: points}
}

// TransformPoints turns vertical bar points into horizontal ones: for each
// record (ordinal, value, rest...) it emits (value*sign, ordinal, rest...).
// The input buffer is not modified.
func TransformPoints(dir Direction, dp models.Datapoints) (models.Datapoints, error) {
	if dp.Format < 2 {
		return models.Datapoints{}, fmt.Errorf("%w: format %d has fewer than 2 fields", ErrMalformedPoints, dp.Format)
	}
	if len(dp.Points)%dp.Format != 0 {
		return models.Datapoints{}, fmt.Errorf("%w: %d values is not a multiple of format %d", ErrMalformedPoints, len(dp.Points), dp.Format)
	}

	sign := dir.Sign()
	swapped := make([]float64, len(dp.Points))
	copy(swapped, dp.Points)
	for i := 0; i < len(swapped); i += dp.Format {
		swapped[i], swapped[i+1] = dp.Points[i+1]*sign, dp.Points[i]
	}
	return models.Datapoints{Format: dp.Format, Points: swapped}, nil
}

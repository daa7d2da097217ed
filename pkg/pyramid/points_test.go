package pyramid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

func TestBarPoints(t *testing.T) {
	ns := &NormalizedSeries{Data: []models.Point{{Ordinal: 0, Value: 100}, {Ordinal: 1, Value: 200}}}

	dp := BarPoints(ns)

	assert.Equal(t, BarFormat, dp.Format)
	assert.Equal(t, []float64{0, 100, 0, 1, 200, 0}, dp.Points)
	assert.Equal(t, 2, dp.Len())
}

func TestTransformPoints(t *testing.T) {
	in := models.Datapoints{Format: 3, Points: []float64{0, 90, 0, 1, 210, 0.5}}

	right, err := TransformPoints(Right, in)
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 0, 0, 210, 1, 0.5}, right.Points)

	left, err := TransformPoints(Left, in)
	require.NoError(t, err)
	assert.Equal(t, []float64{-90, 0, 0, -210, 1, 0.5}, left.Points)
	assert.Equal(t, in.Len(), left.Len())

	// The input buffer is untouched.
	assert.Equal(t, []float64{0, 90, 0, 1, 210, 0.5}, in.Points)
}

func TestTransformPointsPreservesExtraFields(t *testing.T) {
	in := models.Datapoints{Format: 4, Points: []float64{2, 5, 1, 9}}

	out, err := TransformPoints(Left, in)
	require.NoError(t, err)

	assert.Equal(t, 4, out.Format)
	assert.Equal(t, []float64{-5, 2, 1, 9}, out.Record(0))
}

func TestTransformPointsMalformed(t *testing.T) {
	tests := []models.Datapoints{
		{Format: 1, Points: []float64{1}},
		{Format: 0},
		{Format: 3, Points: []float64{1, 2}},
	}

	for _, dp := range tests {
		_, err := TransformPoints(Right, dp)
		assert.ErrorIs(t, err, ErrMalformedPoints)
	}
}

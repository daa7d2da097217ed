package pyramid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

func ageSeries(label, direction string, values ...float64) models.Series {
	bands := []string{"0-4", "5-9", "10-14", "15-19"}
	s := models.Series{Label: label, Direction: direction}
	for i, v := range values {
		s.Data = append(s.Data, models.DataPair{Label: bands[i], Value: v})
	}
	return s
}

func TestNormalize(t *testing.T) {
	reg := NewRegistry()

	a, err := Normalize(reg, 0, ageSeries("A", "", 100, 200))
	require.NoError(t, err)
	b, err := Normalize(reg, 1, ageSeries("B", "L", 90, 210))
	require.NoError(t, err)

	assert.Equal(t, []models.Point{{Ordinal: 0, Value: 100}, {Ordinal: 1, Value: 200}}, a.Data)
	assert.Equal(t, []models.Point{{Ordinal: 0, Value: 90}, {Ordinal: 1, Value: 210}}, b.Data)
	assert.Equal(t, Right, a.Direction)
	assert.Equal(t, Left, b.Direction)
	assert.Equal(t, "B", b.Label())
	assert.Equal(t, 1, b.Index)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	reg := NewRegistry()
	original := ageSeries("A", "w", 100, 200, 300)
	snapshot := ageSeries("A", "w", 100, 200, 300)

	ns, err := Normalize(reg, 0, original)
	require.NoError(t, err)
	assert.Equal(t, snapshot, original)

	// The normalized copy is private: changing it leaves the caller's data alone.
	ns.Source.Data[0].Label = "changed"
	ns.Source.Data[1].Value = -1
	assert.Equal(t, snapshot, original)
}

func TestNormalizeInvalidDirectionLeavesRegistryEmpty(t *testing.T) {
	reg := NewRegistry()

	_, err := Normalize(reg, 0, ageSeries("A", "X", 100))
	require.ErrorIs(t, err, ErrInvalidDirection)
	assert.True(t, reg.IsEmpty())
}

func TestNormalizeLabelMismatch(t *testing.T) {
	reg := NewRegistry()
	_, err := Normalize(reg, 0, models.Series{Label: "A", Data: []models.DataPair{{Label: "0-4", Value: 100}}})
	require.NoError(t, err)

	_, err = Normalize(reg, 1, models.Series{Label: "B", Data: []models.DataPair{{Label: "5-9", Value: 50}}})
	require.ErrorIs(t, err, ErrInvalidData)
}

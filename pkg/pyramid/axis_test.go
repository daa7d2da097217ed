package pyramid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

func TestUpdateBound(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		data    []models.Point
		want    float64
	}{
		{"from zero", 0, []models.Point{{Ordinal: 0, Value: 100}, {Ordinal: 1, Value: 200}}, 200},
		{"keeps larger current", 500, []models.Point{{Ordinal: 0, Value: 100}}, 500},
		{"grows", 200, []models.Point{{Ordinal: 0, Value: 90}, {Ordinal: 1, Value: 210}}, 210},
		{"negative magnitudes count", 10, []models.Point{{Ordinal: 0, Value: -300}}, 300},
		{"single point", 0, []models.Point{{Ordinal: 0, Value: 7}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdateBound(tt.current, tt.data))
		})
	}
}

func TestUpdateBoundOrderIndependent(t *testing.T) {
	a := []models.Point{{Ordinal: 0, Value: 100}, {Ordinal: 1, Value: 200}}
	b := []models.Point{{Ordinal: 0, Value: 90}, {Ordinal: 1, Value: 210}}

	assert.Equal(t, UpdateBound(UpdateBound(0, a), b), UpdateBound(UpdateBound(0, b), a))
}

func TestSymmetricRange(t *testing.T) {
	for _, bound := range []float64{0, 1, 210, 1e9} {
		lo, hi := SymmetricRange(bound)
		assert.Equal(t, bound, hi)
		assert.Equal(t, -hi, lo)
	}
}

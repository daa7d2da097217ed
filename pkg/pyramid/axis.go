package pyramid

import (
	"math"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// UpdateBound folds the largest absolute value of data into current.
// Data must not be empty.
func UpdateBound(current float64, data []models.Point) float64 {
	localMax := math.Abs(data[0].Value)
	for _, p := range data[1:] {
		localMax = math.Max(localMax, math.Abs(p.Value))
	}
	return math.Max(current, localMax)
}

// SymmetricRange returns the value-axis range [-bound, bound].
func SymmetricRange(bound float64) (lo, hi float64) {
	return -bound, bound
}

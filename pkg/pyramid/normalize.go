package pyramid

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// NormalizedSeries is a series whose category labels have been replaced by
// registry ordinals.
type NormalizedSeries struct {
	// Index is the position of the series in the chart.
	Index int
	// Source is a private deep copy of the caller's series.
	Source models.Series
	// Direction is the resolved direction.
	Direction Direction
	// Data is the normalized (ordinal, value) data.
	Data []models.Point
}

// Label returns the series display name.
func (n *NormalizedSeries) Label() string {
	return n.Source.Label
}

// Normalize validates the series at index against reg and rewrites its data
// into ordinal form. The caller's series is never modified.
func Normalize(reg *Registry, index int, s models.Series) (*NormalizedSeries, error) {
	var clone models.Series
	if err := deepcopy.Copy(&clone, &s); err != nil {
		return nil, fmt.Errorf("copying series %q: %w", s.Label, err)
	}

	dir, err := ValidateDirection(index, clone)
	if err != nil {
		return nil, err
	}
	if err := ValidateLabels(reg, index, clone); err != nil {
		return nil, err
	}

	return &NormalizedSeries{
		Index:     index,
		Source:    clone,
		Direction: dir,
		Data:      reg.Rewrite(clone.Data),
	}, nil
}

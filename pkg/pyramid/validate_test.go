package pyramid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token string
		want  Direction
	}{
		{"", Right},
		{"l", Left},
		{"L", Left},
		{"w", Left},
		{"W", Left},
		{"r", Right},
		{"R", Right},
		{"e", Right},
		{"E", Right},
		{" L ", Left},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestParseDirectionInvalid(t *testing.T) {
	for _, token := range []string{"X", "left", "LR", "N", "0"} {
		_, err := ParseDirection(token)
		assert.ErrorIs(t, err, ErrInvalidDirection, "token %q", token)
	}
}

func TestDirectionSign(t *testing.T) {
	assert.Equal(t, -1.0, Left.Sign())
	assert.Equal(t, 1.0, Right.Sign())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}

func TestValidateDirectionIdentifiesSeries(t *testing.T) {
	_, err := ValidateDirection(3, models.Series{Label: "Women", Direction: "X"})
	require.Error(t, err)

	var se *SeriesError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, PluginName, se.Plugin)
	assert.Equal(t, "Women", se.Series)
	assert.Equal(t, 3, se.Index)
	assert.Equal(t, KindInvalidDirection, se.Kind())
	assert.Contains(t, err.Error(), `"X"`)
}

func TestValidateLabels(t *testing.T) {
	reg := NewRegistry()
	first := models.Series{Label: "A", Data: []models.DataPair{{Label: "0-4", Value: 100}, {Label: "5-9", Value: 200}}}
	require.NoError(t, ValidateLabels(reg, 0, first))
	assert.Equal(t, []string{"0-4", "5-9"}, labelsOf(reg))

	tests := []struct {
		name string
		data []models.DataPair
		msg  string
	}{
		{"shorter", []models.DataPair{{Label: "0-4", Value: 1}}, "expected 2 categories, got 1"},
		{"longer", []models.DataPair{{Label: "0-4", Value: 1}, {Label: "5-9", Value: 2}, {Label: "10-14", Value: 3}}, "expected 2 categories, got 3"},
		{"reordered", []models.DataPair{{Label: "5-9", Value: 1}, {Label: "0-4", Value: 2}}, `category 0 is "5-9", expected "0-4"`},
		{"label differs", []models.DataPair{{Label: "0-4", Value: 1}, {Label: "5-10", Value: 2}}, `category 1 is "5-10", expected "5-9"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabels(reg, 1, models.Series{Label: "B", Data: tt.data})
			require.ErrorIs(t, err, ErrInvalidData)
			assert.Equal(t, KindInvalidData, KindOf(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	// A failed check never alters the registry.
	assert.Equal(t, []string{"0-4", "5-9"}, labelsOf(reg))
}

func TestValidateLabelsEmptySeries(t *testing.T) {
	reg := NewRegistry()
	err := ValidateLabels(reg, 0, models.Series{Label: "A"})
	require.ErrorIs(t, err, ErrEmptySeries)
	assert.True(t, reg.IsEmpty())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, KindMalformedPoints, KindOf(NewSeriesError(0, "s", ErrMalformedPoints)))
	assert.Equal(t, "InvalidData", KindInvalidData.String())
}

func labelsOf(reg *Registry) []string {
	var labels []string
	for _, c := range reg.Categories() {
		labels = append(labels, c.Label)
	}
	return labels
}

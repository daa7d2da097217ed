package pyramid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
	"github.com/xuri/excelize/v2"
)

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	doc := `{
	  "title": "Population",
	  "series": [
	    {"label": "Men", "data": [["0-4", 100], ["5-9", 200]]},
	    {"label": "Women", "direction": "L", "data": [["0-4", 90], ["5-9", 210]]}
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	got, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Population", got.Title)
	require.Len(t, got.Series, 2)
	assert.Equal(t, "L", got.Series[1].Direction)

	chart, err := Render(DefaultOptions(), got.Series)
	require.NoError(t, err)
	assert.Equal(t, 210.0, chart.XAxis.Max)
}

func TestLoadWorkbookSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Age", "Men", "Women [W]"},
		{"0-4", 100, 90},
		{"5-9", 200, 210},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "pyramid.xlsx")
	require.NoError(t, f.SaveAs(path))

	doc, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, doc.Series, 2)
	assert.Equal(t, "Women", doc.Series[1].Label)

	chart, err := Render(DefaultOptions(), doc.Series)
	require.NoError(t, err)
	assert.Equal(t, []float64{-210, 1, 0}, chart.Series[1].Datapoints.Record(1))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), LoadOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)

	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b"), 0644))
	_, err = Load(path, LoadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestApplyDirections(t *testing.T) {
	series := []models.Series{{Label: "Men"}, {Label: "Women", Direction: "R"}}

	ApplyDirections(series, map[string]string{"Women": "L", "Other": "W"})

	assert.Equal(t, "", series[0].Direction)
	assert.Equal(t, "L", series[1].Direction)
}

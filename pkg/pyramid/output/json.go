// Package output serializes pyramid results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// ToJSON serializes a rendered chart.
func ToJSON(chart *models.Chart, pretty bool) ([]byte, error) {
	return marshal(chart, pretty)
}

// ReportToJSON serializes a validation report.
func ReportToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Package models defines data structures for pyramid chart processing.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DataPair is a single category-labeled value of a series.
//
// It decodes from either a two element array (["0-4", 1302329]) or an
// object ({"label": "0-4", "value": 1302329}).
type DataPair struct {
	// Label is the category label.
	Label string `json:"label"`
	// Value is the bar magnitude.
	Value float64 `json:"value"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *DataPair) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("data pair must have 2 elements, got %d", len(tuple))
		}
		label, err := decodeLabel(tuple[0])
		if err != nil {
			return err
		}
		var value float64
		if err := json.Unmarshal(tuple[1], &value); err != nil {
			return fmt.Errorf("data pair %q: invalid value: %w", label, err)
		}
		p.Label, p.Value = label, value
		return nil
	}

	var obj struct {
		Label json.RawMessage `json:"label"`
		Value float64         `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	label, err := decodeLabel(obj.Label)
	if err != nil {
		return err
	}
	p.Label, p.Value = label, obj.Value
	return nil
}

// decodeLabel accepts string or numeric labels.
func decodeLabel(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("invalid category label: %s", string(raw))
}

// Series describes one side of a pyramid chart as supplied by the caller.
type Series struct {
	// Label is the series display name.
	Label string `json:"label"`
	// Direction is the raw direction token (L/W for left, R/E for right).
	// Empty means right.
	Direction string `json:"direction,omitempty"`
	// Data is the ordered list of category-labeled values.
	Data []DataPair `json:"data"`
}

// Labels returns the category labels of the series in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s.Data))
	for i, d := range s.Data {
		labels[i] = d.Label
	}
	return labels
}

// Category is a category label with its ordinal position in the registry.
type Category struct {
	// Index is the ordinal position (0-based).
	Index int `json:"index"`
	// Label is the category label.
	Label string `json:"label"`
}

// Point is a normalized data point: the category label replaced by its ordinal.
type Point struct {
	// Ordinal is the category position in the registry.
	Ordinal int `json:"ordinal"`
	// Value is the unchanged series value.
	Value float64 `json:"value"`
}

// Document is a set of series to be plotted together.
type Document struct {
	// Title is an optional chart title.
	Title string `json:"title,omitempty"`
	// Series is the list of series in plotting order.
	Series []Series `json:"series"`
	// XAxisMax is a value-axis bound fixed by the source, 0 when unset.
	XAxisMax float64 `json:"x_axis_max,omitempty"`
}

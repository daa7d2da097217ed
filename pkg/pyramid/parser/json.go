package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/pyramid-go/pkg/pyramid/models"
)

// ReadJSON decodes a series document. Both a bare array of series and an
// object with a "series" key are accepted.
func ReadJSON(r io.Reader) (*models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var series []models.Series
		if err := json.Unmarshal(trimmed, &series); err != nil {
			return nil, fmt.Errorf("decoding series: %w", err)
		}
		return &models.Document{Series: series}, nil
	}

	var doc models.Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

// ReadJSONFile decodes a series document from a file.
func ReadJSONFile(path string) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// parseValue parses a cell's displayed value as a number.
// Commas are accepted only as thousands separators; "1,5" is an error.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	if strings.Contains(s, ",") {
		if !thousandsGrouped.MatchString(s) {
			return 0, fmt.Errorf("ambiguous separators in %q", s)
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return 0, fmt.Errorf("not a number: %q", s)
}

var headerDirection = regexp.MustCompile(`^(.*?)\s*\[([^\]]*)\]\s*$`)

// parseHeader splits a series header such as "Women [L]" into the label and
// its direction token. Headers without a bracketed suffix have no direction.
func parseHeader(s string) (label, direction string) {
	s = strings.TrimSpace(s)
	if m := headerDirection.FindStringSubmatch(s); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return s, ""
}

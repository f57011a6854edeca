package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCSV splits a comma-separated string and returns trimmed non-empty values.
// Returns nil for empty/whitespace-only input.
func ParseCSV(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, v := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

// ParseIDList parses a comma-separated list of positive profile ids such as
// the user_ids query parameter. Returns nil for empty input.
func ParseIDList(s string) ([]int64, error) {
	parts := ParseCSV(s)
	if parts == nil {
		return nil, nil
	}

	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("invalid id %q: must be positive", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

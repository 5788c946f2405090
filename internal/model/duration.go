package model

import (
	"strconv"
	"strings"
)

// ParseDurationMinutes converts a service duration string such as "00:30:00"
// or "0:20:00" to whole minutes, reading only the hour and minute fields.
// Anything that does not look like a colon-delimited duration parses to 0.
func ParseDurationMinutes(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hh*60 + mm
}

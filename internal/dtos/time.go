package dtos

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingTime = errors.New("value is required")
	ErrBadTime     = errors.New("unrecognised date/time format")
)

// The portal's date inputs send plain dates, datetime-local values without
// a zone, or full RFC 3339 timestamps.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses an optional date or timestamp. Empty input gives nil.
func ParseTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrBadTime
}

package models

import (
	"errors"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	time.RFC1123,
	"2006-01-02",
}

// ParseTime parses a server timestamp. The API mixes ISO 8601 with and
// without a zone and HTTP dates; zone-less values are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatDate renders s as YYYY-MM-DD, or returns s unchanged when it cannot
// be parsed.
func FormatDate(s string) string {
	t, err := ParseTime(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

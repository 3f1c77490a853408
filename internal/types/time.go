package types

import "time"

// RequestDateLayout is ISO-8601 with millisecond precision, e.g. 2024-05-01T10:11:12.345Z
const RequestDateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatRequestDate renders t in UTC the way the gateway expects requestDate
func FormatRequestDate(t time.Time) string {
	return t.UTC().Format(RequestDateLayout)
}

// ParseRequestDate parses a requestDate or creationDate returned by the gateway
func ParseRequestDate(s string) (time.Time, error) {
	t, err := time.Parse(RequestDateLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

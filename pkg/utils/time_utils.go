package utils

import "time"

const dateLayout = "2006-01-02"

// ParseTripDate parses the wire format used for trip start dates.
// Returns the zero time for empty or malformed input so callers can decide
// how to respond; the renderer never fabricates dates.
func ParseTripDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

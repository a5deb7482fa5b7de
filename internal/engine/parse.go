package engine

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when normalizing a record date. Upstream
// timestamps arrive as RFC3339, as naive date-times, or as bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDate truncates a raw date string to a YYYY-MM-DD day. The second
// return value is false when the input is empty or unparsable, which the
// filter treats as "record has no date".
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// ParseAmount parses a monetary amount stored as text. Missing or malformed
// amounts contribute zero to sums, never NaN.
func ParseAmount(raw string) float64 {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

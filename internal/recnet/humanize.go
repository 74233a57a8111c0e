package recnet

import (
	"fmt"
	"time"
)

// NotAvailable is shown for missing values
const NotAvailable = "N/A"

// timestampLayouts are the offset-bearing ISO-8601 forms accepted by
// HumanizeAt. Fractional seconds are accepted by all of them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z0700",
}

// Humanize renders how long ago ts was, relative to now
func Humanize(ts string) string {
	return HumanizeAt(ts, time.Now())
}

// HumanizeAt renders how long before now the ISO-8601 timestamp ts was.
// Timestamps without a UTC offset, or that fail to parse, are returned as is.
func HumanizeAt(ts string, now time.Time) string {
	if ts == "" {
		return NotAvailable
	}

	t, ok := parseTimestamp(ts)
	if !ok {
		return ts
	}

	hours := int(now.Sub(t) / time.Hour)
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", hours/24)
	}
}

func parseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

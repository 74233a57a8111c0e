package recnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "N/A"},
		{"not a date", "not-a-date", "not-a-date"},
		{"thirty minutes", now.Add(-30 * time.Minute).Format(time.RFC3339), "Just now"},
		{"exactly one hour", now.Add(-time.Hour).Format(time.RFC3339), "1 hours ago"},
		{"five hours", now.Add(-5*time.Hour - 59*time.Minute).Format(time.RFC3339), "5 hours ago"},
		{"twenty five hours", now.Add(-25 * time.Hour).Format(time.RFC3339), "1 days ago"},
		{"three days", now.Add(-73 * time.Hour).Format(time.RFC3339), "3 days ago"},
		{"z suffix with fraction", "2024-06-01T09:30:00.123Z", "2 hours ago"},
		{"explicit offset", "2024-06-01T14:00:00+03:00", "1 hours ago"},
		{"future", now.Add(2 * time.Hour).Format(time.RFC3339), "Just now"},
		{"space separator", "2024-06-01 09:00:00+00:00", "3 hours ago"},
		{"offset without colon", "2024-06-01T09:00:00+0000", "3 hours ago"},
		{"space and offset without colon", "2024-06-01 09:00:00.5+0000", "2 hours ago"},
		{"no offset", "2024-06-01T09:00:00", "2024-06-01T09:00:00"},
		{"space without offset", "2024-06-01 09:00:00", "2024-06-01 09:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanizeAt(tt.input, now))
		})
	}
}

func TestHumanize_UsesCurrentTime(t *testing.T) {
	ts := time.Now().Add(-30 * time.Minute).UTC().Format(time.RFC3339)
	assert.Equal(t, "Just now", Humanize(ts))
	assert.Equal(t, "N/A", Humanize(""))
}

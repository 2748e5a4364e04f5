package domain

import "fmt"

// Window is the selected time range for the uploads chart.
type Window string

const (
	Window24h Window = "24h"
	Window7d  Window = "7d"
	Window14d Window = "14d"
	Window30d Window = "30d"
)

// Windows lists all selectable windows in display order.
var Windows = []Window{Window24h, Window7d, Window14d, Window30d}

// ParseWindow validates a window selector string.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window24h, Window7d, Window14d, Window30d:
		return Window(s), nil
	}
	return "", fmt.Errorf("invalid window %q (expected 24h, 7d, 14d or 30d)", s)
}

// Buckets returns the number of time buckets the window spans:
// 24 hourly buckets for 24h, one bucket per calendar day otherwise.
func (w Window) Buckets() int {
	switch w {
	case Window24h:
		return 24
	case Window14d:
		return 14
	case Window30d:
		return 30
	default:
		return 7
	}
}

// Hourly reports whether the window bins by hour instead of by day.
func (w Window) Hourly() bool {
	return w == Window24h
}

// DisplayName returns the selector label used in chart titles.
func (w Window) DisplayName() string {
	switch w {
	case Window24h:
		return "Last 24 Hours"
	case Window14d:
		return "Last 14 Days"
	case Window30d:
		return "Last 30 Days"
	default:
		return "Last 7 Days"
	}
}

// TimeBucket is one aggregation slot of the uploads-over-time series,
// ordered oldest to newest. Ephemeral: recomputed on every render.
type TimeBucket struct {
	Label string
	Count int
}

package model

import (
	"fmt"
	"time"
)

// ClockLayout is the on-disk time-of-day format of a log entry
const ClockLayout = "15:04:05"

// LogEntry records the visitor count at a wall-clock time of day
type LogEntry struct {
	Time  time.Time // only hour, minute and second are persisted
	Count int       // never negative
}

// Clock returns the entry time formatted as HH:MM:SS
func (e LogEntry) Clock() string {
	return e.Time.Format(ClockLayout)
}

// TimeOfDay maps the entry onto a fixed reference day so entries read back
// from disk and entries created in-process compare and plot the same way
func (e LogEntry) TimeOfDay() time.Time {
	h, m, s := e.Time.Clock()
	return time.Date(2000, time.January, 1, h, m, s, 0, time.UTC)
}

// String returns the entry as it appears in the log file
func (e LogEntry) String() string {
	return fmt.Sprintf("%s,%d", e.Clock(), e.Count)
}

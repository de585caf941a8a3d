package counter

import (
	"time"

	"github.com/ytget/visitors-counter/internal/model"
)

// Appender persists log entries
type Appender interface {
	Append(entry model.LogEntry) error
}

// Regenerator rebuilds the chart from the full log
type Regenerator interface {
	Regenerate() error
}

// Journal is the log store as seen at startup
type Journal interface {
	Appender
	EnsureInitialized(start int, now time.Time) (bool, error)
	Last() (model.LogEntry, error)
}

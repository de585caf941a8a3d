package counter

import (
	"github.com/ytget/visitors-counter/internal/model"
)

// StartOptions control how the count is restored at startup
type StartOptions struct {
	// StartCount seeds a new log and, when ResumeFromLog is false, every run
	StartCount int
	// ResumeFromLog continues from the last logged count of an existing log.
	// When false the count restarts at StartCount and that value is appended.
	ResumeFromLog bool
}

// Open initializes the log, restores the count and renders the first chart.
// An existing log must hold at least one valid entry whatever the restart
// policy; it is read before anything is appended, so a rejected log is left
// exactly as found. Any failure is wrapped in *model.InitializationError.
func Open(journal Journal, charts Regenerator, start StartOptions, opts ...Option) (*Counter, error) {
	now := New(0, journal, charts, opts...).now()

	created, err := journal.EnsureInitialized(start.StartCount, now)
	if err != nil {
		return nil, &model.InitializationError{Err: err}
	}

	count := start.StartCount
	if !created {
		last, err := journal.Last()
		if err != nil {
			return nil, &model.InitializationError{Err: err}
		}
		if start.ResumeFromLog {
			count = last.Count
		}
	}

	c := New(count, journal, charts, opts...)
	c.lastTime = now
	if !created && !start.ResumeFromLog {
		if err := c.Record(); err != nil {
			return nil, &model.InitializationError{Err: err}
		}
	}

	if err := charts.Regenerate(); err != nil {
		return nil, &model.InitializationError{Err: err}
	}
	return c, nil
}

package model

import (
	"errors"
	"fmt"
)

// ErrEmptyLog is returned when the log has no header or no data rows
var ErrEmptyLog = errors.New("visitor log is empty")

// IOError reports that the log could not be written. Callers treat it as
// fatal: the displayed count must never drift away from the log.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a malformed log row
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InitializationError wraps any failure during startup
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize visitor log: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err only affects the chart and may be
// logged while the app keeps counting
func IsRecoverable(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) || errors.Is(err, ErrEmptyLog)
}

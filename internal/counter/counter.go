package counter

import (
	"fmt"
	"time"

	"github.com/ytget/visitors-counter/internal/model"
	"github.com/ytget/visitors-counter/internal/platform"
)

// DefaultCapacity is the count at which the display switches to alert
const DefaultCapacity = 150

// Counter owns the visitor count
type Counter struct {
	count    int
	capacity int

	log    Appender
	charts Regenerator

	now      func() time.Time
	lastTime time.Time
	onUpdate func(count int)
}

// Option configures a Counter
type Option func(*Counter)

// WithCapacity sets the alert threshold
func WithCapacity(capacity int) Option {
	return func(c *Counter) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a counter starting at start
func New(start int, log Appender, charts Regenerator, opts ...Option) *Counter {
	if start < 0 {
		start = 0
	}
	c := &Counter{
		count:    start,
		capacity: DefaultCapacity,
		log:      log,
		charts:   charts,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the function called once a change is logged and
// adopted, before the chart is regenerated
func (c *Counter) SetUpdateCallback(callback func(count int)) {
	c.onUpdate = callback
}

// Count returns the current number of visitors
func (c *Counter) Count() int {
	return c.count
}

// Capacity returns the alert threshold
func (c *Counter) Capacity() int {
	return c.capacity
}

// Indicator returns the alert indicator once the count reaches capacity
func (c *Counter) Indicator() model.Indicator {
	return model.IndicatorFor(c.count, c.capacity)
}

// Increment adds one visitor
func (c *Counter) Increment() error {
	return c.apply(c.count + 1)
}

// Decrement removes one visitor. At zero it does nothing: attendance cannot
// go negative, and no entry is logged.
func (c *Counter) Decrement() error {
	if c.count <= 0 {
		return nil
	}
	return c.apply(c.count - 1)
}

// Record appends the current count without changing it
func (c *Counter) Record() error {
	entry := model.LogEntry{Time: c.stamp(), Count: c.count}
	if err := c.log.Append(entry); err != nil {
		return fmt.Errorf("record count %d: %w", c.count, err)
	}
	return nil
}

// apply logs next and only then adopts it, so the count and the log fail
// together. A chart that cannot be rebuilt from a malformed log only costs
// the picture and is logged; any other chart failure is returned.
func (c *Counter) apply(next int) error {
	entry := model.LogEntry{Time: c.stamp(), Count: next}
	if err := c.log.Append(entry); err != nil {
		return fmt.Errorf("record count %d: %w", next, err)
	}
	c.count = next

	if c.onUpdate != nil {
		c.onUpdate(next)
	}

	if err := c.charts.Regenerate(); err != nil {
		if !model.IsRecoverable(err) {
			return fmt.Errorf("regenerate chart after count %d: %w", next, err)
		}
		platform.Warnf("chart regeneration failed, keeping previous chart: %v", err)
	}
	return nil
}

// stamp returns the entry time, never earlier than the previous one
func (c *Counter) stamp() time.Time {
	now := c.now()
	if now.Before(c.lastTime) {
		now = c.lastTime
	}
	c.lastTime = now
	return now
}

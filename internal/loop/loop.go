package loop

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/visitors-counter/internal/control"
	"github.com/ytget/visitors-counter/internal/model"
	"github.com/ytget/visitors-counter/internal/platform"
)

// DefaultFPS is the target frame rate
const DefaultFPS = 60

// View is the drawing surface a frame renders to
type View interface {
	ShowCount(count int, indicator model.Indicator)
	ShowClock(now time.Time)
	ShowControl(index int, state model.ControlState)
	ReloadChart() error
	Present()
}

// InputSource returns the latest input sample and whether quit was requested
type InputSource interface {
	Poll() (in control.Input, quit bool)
}

// CountSource exposes the live count
type CountSource interface {
	Count() int
	Indicator() model.Indicator
}

// Flag reports and clears pending chart updates
type Flag interface {
	Take() bool
}

// Executor runs fn on the goroutine that owns the view and waits for it
type Executor func(fn func())

// Loop orchestrates frames
type Loop struct {
	view     View
	input    InputSource
	counter  CountSource
	controls []*control.Control
	dirty    Flag

	fps  int
	exec Executor
	now  func() time.Time
}

// Option configures a Loop
type Option func(*Loop)

// WithFPS sets the frame rate; non-positive values keep the default
func WithFPS(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.fps = fps
		}
	}
}

// WithExecutor replaces fyne.DoAndWait
func WithExecutor(exec Executor) Option {
	return func(l *Loop) {
		if exec != nil {
			l.exec = exec
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a loop over the given view, input, counter and controls
func New(view View, input InputSource, counter CountSource, dirty Flag, controls []*control.Control, opts ...Option) *Loop {
	l := &Loop{
		view:     view,
		input:    input,
		counter:  counter,
		controls: controls,
		dirty:    dirty,
		fps:      DefaultFPS,
		exec:     fyne.DoAndWait,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Interval returns the time between frames
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.fps)
}

// Frame renders one frame from an input sample. A control action error is
// returned unchanged and ends the loop; a failed chart reload only logs.
func (l *Loop) Frame(in control.Input, now time.Time) error {
	l.view.ShowCount(l.counter.Count(), l.counter.Indicator())
	l.view.ShowClock(now)

	for i, c := range l.controls {
		_, err := c.Process(in)
		l.view.ShowControl(i, c.State())
		if err != nil {
			return fmt.Errorf("%s: %w", c.Label(), err)
		}
	}
	// Count again so a press shows in this frame
	l.view.ShowCount(l.counter.Count(), l.counter.Indicator())

	l.reloadIfDirty()
	l.view.Present()
	return nil
}

// Prime loads a pending chart and presents the view once, so the window opens
// with the chart already shown. Call it before Run from the goroutine that
// builds the window.
func (l *Loop) Prime() {
	l.view.ShowCount(l.counter.Count(), l.counter.Indicator())
	l.reloadIfDirty()
	l.view.Present()
}

func (l *Loop) reloadIfDirty() {
	if !l.dirty.Take() {
		return
	}
	if err := l.view.ReloadChart(); err != nil {
		platform.Warnf("chart reload failed, keeping current image: %v", err)
	}
}

// Step polls the input and renders a frame unless quit was requested
func (l *Loop) Step() (quit bool, err error) {
	in, quit := l.input.Poll()
	if quit {
		return true, nil
	}
	return false, l.Frame(in, l.now())
}

// Run executes frames until quit is requested, ctx is done or a frame fails.
// The first frame runs immediately.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.Interval())
	defer ticker.Stop()

	for {
		var (
			quit bool
			err  error
		)
		l.exec(func() {
			quit, err = l.Step()
		})
		if err != nil {
			return err
		}
		if quit {
			platform.Infof("quit requested, stopping frame loop")
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

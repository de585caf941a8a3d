package chart

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ytget/visitors-counter/internal/model"
)

// Series names
const (
	SeriesVisitors = "visitors"
	SeriesCapacity = "capacity"
)

// Axis layout
const (
	TickInterval    = 15 * time.Minute
	TickLabelLayout = "15:04"
	TickRotation    = 45.0
)

// EntrySource provides the full visitor log
type EntrySource interface {
	ReadAll() ([]model.LogEntry, error)
}

// Options control chart size, thresholds and colors
type Options struct {
	Width        int
	Height       int
	Capacity     int // reference line value
	NearCapacity int // max count above which the reference line is drawn

	LineColor  drawing.Color
	AlertColor drawing.Color
	Background drawing.Color
}

// DefaultOptions returns the standard chart settings
func DefaultOptions() Options {
	return Options{
		Width:        1300,
		Height:       500,
		Capacity:     150,
		NearCapacity: 140,
		LineColor:    drawing.ColorFromHex("2f7bff"),
		AlertColor:   drawing.ColorFromHex("f95d6a"),
		Background:   drawing.ColorFromHex("f8fafc"),
	}
}

// Generator rebuilds the chart image from the log
type Generator struct {
	source    EntrySource
	imagePath string
	opts      Options
	dirty     *DirtyFlag
}

// NewGenerator creates a generator writing to imagePath
func NewGenerator(source EntrySource, imagePath string, opts Options) *Generator {
	return &Generator{
		source:    source,
		imagePath: imagePath,
		opts:      opts,
		dirty:     &DirtyFlag{},
	}
}

// Dirty returns the flag raised after each successful regeneration
func (g *Generator) Dirty() *DirtyFlag {
	return g.dirty
}

// ImagePath returns where the chart is written
func (g *Generator) ImagePath() string {
	return g.imagePath
}

// Regenerate reads the whole log, renders the chart and replaces the image.
// On failure the previous image is left in place and the flag is not raised.
func (g *Generator) Regenerate() error {
	entries, err := g.source.ReadAll()
	if err != nil {
		return fmt.Errorf("read visitor log: %w", err)
	}

	ch, err := Build(entries, g.opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if err := writeFileAtomic(g.imagePath, buf.Bytes()); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	g.dirty.Set()
	return nil
}

// Build turns log entries into a chart definition without rendering it
func Build(entries []model.LogEntry, opts Options) (gochart.Chart, error) {
	if len(entries) == 0 {
		return gochart.Chart{}, model.ErrEmptyLog
	}

	xs := make([]time.Time, len(entries))
	ys := make([]float64, len(entries))
	maxCount := 0
	for i, e := range entries {
		xs[i] = e.TimeOfDay()
		ys[i] = float64(e.Count)
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	lo, hi := timeSpan(xs)
	showCapacity := maxCount > opts.NearCapacity

	series := []gochart.Series{
		gochart.TimeSeries{
			Name:    SeriesVisitors,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: opts.LineColor,
				StrokeWidth: 2.5,
				DotColor:    opts.LineColor,
				DotWidth:    dotWidth(len(entries)),
			},
		},
	}
	if showCapacity {
		series = append(series, gochart.TimeSeries{
			Name:    SeriesCapacity,
			XValues: []time.Time{lo, hi},
			YValues: []float64{float64(opts.Capacity), float64(opts.Capacity)},
			Style: gochart.Style{
				StrokeColor: opts.AlertColor,
				StrokeWidth: 1.5,
			},
		})
	}

	top := maxCount
	if showCapacity && opts.Capacity > top {
		top = opts.Capacity
	}
	yMax := math.Ceil(float64(top)*1.1) + 1

	ch := gochart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			FillColor: opts.Background,
			Padding:   gochart.Box{Top: 20, Left: 16, Right: 24, Bottom: 20},
		},
		Canvas: gochart.Style{FillColor: opts.Background},
		XAxis: gochart.XAxis{
			Ticks:     quarterHourTicks(lo, hi),
			Range:     &gochart.ContinuousRange{Min: float64(gochart.TimeToFloat64(lo)), Max: float64(gochart.TimeToFloat64(hi))},
			TickStyle: gochart.Style{TextRotationDegrees: TickRotation},
		},
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: gochart.IntValueFormatter,
		},
		Series: series,
	}
	return ch, nil
}

// timeSpan returns the x range aligned to quarter-hour boundaries; a single
// timestamp still gets a non-empty range
func timeSpan(xs []time.Time) (time.Time, time.Time) {
	minT, maxT := xs[0], xs[0]
	for _, t := range xs[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}

	lo := minT.Truncate(TickInterval)
	hi := maxT.Truncate(TickInterval)
	if hi.Before(maxT) || !hi.After(lo) {
		hi = hi.Add(TickInterval)
	}
	return lo, hi
}

// quarterHourTicks returns a labeled tick on every quarter hour in [lo, hi]
func quarterHourTicks(lo, hi time.Time) []gochart.Tick {
	var ticks []gochart.Tick
	for t := lo; !t.After(hi); t = t.Add(TickInterval) {
		ticks = append(ticks, gochart.Tick{
			Value: float64(gochart.TimeToFloat64(t)),
			Label: t.Format(TickLabelLayout),
		})
	}
	return ticks
}

// dotWidth keeps a lone point visible; longer logs draw the line only
func dotWidth(n int) float64 {
	if n == 1 {
		return 4
	}
	return 0
}

// writeFileAtomic replaces path so a reader never sees a half-written image
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

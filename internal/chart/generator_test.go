package chart

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/visitors-counter/internal/model"
)

type fakeSource struct {
	entries []model.LogEntry
	err     error
	reads   int
}

func (f *fakeSource) ReadAll() ([]model.LogEntry, error) {
	f.reads++
	return f.entries, f.err
}

func at(h, m, s int) time.Time {
	return time.Date(2025, 5, 10, h, m, s, 0, time.Local)
}

func entriesFrom(start time.Time, counts ...int) []model.LogEntry {
	entries := make([]model.LogEntry, len(counts))
	for i, c := range counts {
		entries[i] = model.LogEntry{Time: start.Add(time.Duration(i) * time.Minute), Count: c}
	}
	return entries
}

func findSeries(ch gochart.Chart, name string) (gochart.TimeSeries, bool) {
	for _, s := range ch.Series {
		if ts, ok := s.(gochart.TimeSeries); ok && ts.Name == name {
			return ts, true
		}
	}
	return gochart.TimeSeries{}, false
}

func TestBuild_EmptyLog(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	if !errors.Is(err, model.ErrEmptyLog) {
		t.Fatalf("Expected ErrEmptyLog, got %v", err)
	}
}

func TestBuild_SinglePoint(t *testing.T) {
	ch, err := Build([]model.LogEntry{{Time: at(9, 7, 0), Count: 0}}, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, ok := findSeries(ch, SeriesVisitors)
	if !ok {
		t.Fatal("Expected visitors series")
	}
	if !reflect.DeepEqual(data.YValues, []float64{0}) {
		t.Errorf("YValues = %v, expected [0]", data.YValues)
	}
	if _, ok := findSeries(ch, SeriesCapacity); ok {
		t.Error("Capacity line should be absent for count 0")
	}

	xr, ok := ch.XAxis.Range.(*gochart.ContinuousRange)
	if !ok {
		t.Fatalf("Expected *ContinuousRange, got %T", ch.XAxis.Range)
	}
	if xr.Max <= xr.Min {
		t.Errorf("X range must not be empty: %v..%v", xr.Min, xr.Max)
	}
	if len(ch.XAxis.Ticks) != 2 {
		t.Fatalf("Expected ticks at 09:00 and 09:15, got %d", len(ch.XAxis.Ticks))
	}
	if ch.XAxis.Ticks[0].Label != "09:00" || ch.XAxis.Ticks[1].Label != "09:15" {
		t.Errorf("Tick labels = %q, %q", ch.XAxis.Ticks[0].Label, ch.XAxis.Ticks[1].Label)
	}
}

func TestBuild_QuarterHourTicks(t *testing.T) {
	entries := []model.LogEntry{
		{Time: at(10, 5, 0), Count: 1},
		{Time: at(10, 50, 0), Count: 2},
	}
	ch, err := Build(entries, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var labels []string
	for _, tick := range ch.XAxis.Ticks {
		labels = append(labels, tick.Label)
	}
	expected := []string{"10:00", "10:15", "10:30", "10:45", "11:00"}
	if !reflect.DeepEqual(labels, expected) {
		t.Errorf("Tick labels = %v, expected %v", labels, expected)
	}
	if ch.XAxis.TickStyle.TextRotationDegrees != TickRotation {
		t.Errorf("Tick labels should be rotated by %v degrees", TickRotation)
	}
}

func TestBuild_CapacityLine(t *testing.T) {
	opts := DefaultOptions()
	start := at(14, 0, 0)

	tests := []struct {
		name   string
		counts []int
		want   bool
	}{
		{"below near capacity", []int{120, 130, 140}, false},
		{"above near capacity", []int{140, 141}, true},
		{"nine increments to capacity", []int{141, 142, 143, 144, 145, 146, 147, 148, 149, 150}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := Build(entriesFrom(start, tt.counts...), opts)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			line, ok := findSeries(ch, SeriesCapacity)
			if ok != tt.want {
				t.Fatalf("Capacity line present = %v, expected %v", ok, tt.want)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(line.YValues, []float64{150, 150}) {
				t.Errorf("Capacity line at %v, expected 150", line.YValues)
			}
			if line.Style.StrokeColor != opts.AlertColor {
				t.Errorf("Capacity line should use the alert color")
			}
			yr := ch.YAxis.Range.(*gochart.ContinuousRange)
			if yr.Max <= 150 {
				t.Errorf("Y range max %v should leave room above the capacity line", yr.Max)
			}
		})
	}
}

func TestBuild_Idempotent(t *testing.T) {
	entries := entriesFrom(at(11, 0, 0), 3, 4, 5, 4, 6)

	first, err := Build(entries, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(entries, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	a, _ := findSeries(first, SeriesVisitors)
	b, _ := findSeries(second, SeriesVisitors)
	if !reflect.DeepEqual(a.XValues, b.XValues) || !reflect.DeepEqual(a.YValues, b.YValues) {
		t.Error("Data series differ between builds of the same log")
	}
	if !reflect.DeepEqual(first.XAxis.Ticks, second.XAxis.Ticks) {
		t.Error("Ticks differ between builds of the same log")
	}
}

func TestRegenerate_WritesImageAndSetsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.png")
	source := &fakeSource{entries: []model.LogEntry{{Time: at(9, 0, 12), Count: 0}}}
	opts := DefaultOptions()
	gen := NewGenerator(source, path, opts)

	if err := gen.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if !gen.Dirty().Take() {
		t.Error("Expected dirty flag after regeneration")
	}
	if gen.Dirty().Take() {
		t.Error("Take should clear the flag")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != opts.Width || b.Dy() != opts.Height {
		t.Errorf("Image size = %dx%d, expected %dx%d", b.Dx(), b.Dy(), opts.Width, opts.Height)
	}

	leftovers, _ := filepath.Glob(path + ".*.tmp")
	if len(leftovers) != 0 {
		t.Errorf("Temporary files left behind: %v", leftovers)
	}
}

func TestRegenerate_FailureKeepsPreviousImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitors.png")
	previous := []byte("previous chart")
	if err := os.WriteFile(path, previous, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	source := &fakeSource{err: &model.ParseError{Line: 3, Field: "count", Value: "x", Err: errors.New("bad")}}
	gen := NewGenerator(source, path, DefaultOptions())

	err := gen.Regenerate()
	if err == nil {
		t.Fatal("Expected error for malformed log")
	}
	if !model.IsRecoverable(err) {
		t.Errorf("Expected recoverable error, got %v", err)
	}
	if gen.Dirty().Take() {
		t.Error("Dirty flag must stay clear when regeneration fails")
	}

	data, _ := os.ReadFile(path)
	if string(data) != string(previous) {
		t.Error("Previous chart image was overwritten")
	}
}

func TestDirtyFlag(t *testing.T) {
	var f DirtyFlag
	if f.Take() {
		t.Error("New flag should be clear")
	}
	f.Set()
	f.Set()
	if !f.Take() {
		t.Error("Expected flag to be set")
	}
	if f.Take() {
		t.Error("Second Take should report clear")
	}
}

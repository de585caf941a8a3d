package logstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/ytget/visitors-counter/internal/model"
)

// Header columns
const (
	ColumnTime  = "uhrzeit"
	ColumnCount = "visitors"
)

// File permissions
const (
	DefaultFilePermissions = 0644
)

// ErrNegativeCount is returned by Append for an entry below zero
var ErrNegativeCount = errors.New("negative visitor count")

// rowWriter writes rows durably; replaced in tests
var rowWriter = writeRows

// Store is the durable visitor log
type Store struct {
	path string
}

// New creates a store backed by the file at path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the log with its header and an entry at start
// when the file does not exist yet. It reports whether the file was created.
func (s *Store) EnsureInitialized(start int, now time.Time) (bool, error) {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, &model.IOError{Op: "create", Path: s.path, Err: err}
	}

	rows := [][]string{
		{ColumnTime, ColumnCount},
		record(model.LogEntry{Time: now, Count: start}),
	}
	if err := rowWriter(f, rows); err != nil {
		f.Close()
		return false, s.abandon(err)
	}
	if err := f.Close(); err != nil {
		return false, s.abandon(err)
	}
	return true, nil
}

// abandon removes a log whose creation failed part way, so the next start
// creates it again instead of finding a headless file
func (s *Store) abandon(err error) error {
	if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		err = errors.Join(err, rmErr)
	}
	return &model.IOError{Op: "create", Path: s.path, Err: err}
}

// Append writes one entry at the end of the log. The file must already
// exist; a missing log is an I/O failure, not a reason to start a new one.
func (s *Store) Append(entry model.LogEntry) error {
	if entry.Count < 0 {
		return &model.IOError{Op: "append", Path: s.path, Err: ErrNegativeCount}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, DefaultFilePermissions)
	if err != nil {
		return &model.IOError{Op: "append", Path: s.path, Err: err}
	}
	if err := rowWriter(f, [][]string{record(entry)}); err != nil {
		f.Close()
		return &model.IOError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &model.IOError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

// ReadAll returns every entry in file order
func (s *Store) ReadAll() ([]model.LogEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Last returns the most recent entry
func (s *Store) Last() (model.LogEntry, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return model.LogEntry{}, err
	}
	return entries[len(entries)-1], nil
}

// Parse decodes a visitor log. It fails with model.ErrEmptyLog when there is
// no data row and with *model.ParseError on the first malformed row.
func Parse(r io.Reader) ([]model.LogEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, model.ErrEmptyLog
	}
	if err != nil {
		return nil, csvError(err)
	}
	if len(header) != 2 || header[0] != ColumnTime || header[1] != ColumnCount {
		return nil, &model.ParseError{Line: 1, Field: "header", Value: fmt.Sprint(header), Err: errors.New("unexpected columns")}
	}

	var entries []model.LogEntry
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)

		entry, err := parseRow(line, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, model.ErrEmptyLog
	}
	return entries, nil
}

func parseRow(line int, row []string) (model.LogEntry, error) {
	if len(row) != 2 {
		return model.LogEntry{}, &model.ParseError{Line: line, Err: fmt.Errorf("expected 2 fields, got %d", len(row))}
	}

	at, err := time.Parse(model.ClockLayout, row[0])
	if err != nil {
		return model.LogEntry{}, &model.ParseError{Line: line, Field: "time", Value: row[0], Err: err}
	}

	count, err := strconv.Atoi(row[1])
	if err != nil {
		return model.LogEntry{}, &model.ParseError{Line: line, Field: "count", Value: row[1], Err: err}
	}
	if count < 0 {
		return model.LogEntry{}, &model.ParseError{Line: line, Field: "count", Value: row[1], Err: errors.New("negative count")}
	}

	return model.LogEntry{Time: at, Count: count}, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &model.ParseError{Line: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("read log: %w", err)
}

func record(entry model.LogEntry) []string {
	return []string{entry.Clock(), strconv.Itoa(entry.Count)}
}

// writeRows writes and syncs so an entry is durable once the call returns
func writeRows(f *os.File, rows [][]string) error {
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Sync()
}

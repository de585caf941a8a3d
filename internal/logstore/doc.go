package logstore

// Package logstore owns the append-only visitor log: a CSV file with the
// header "uhrzeit,visitors" followed by one "HH:MM:SS,<count>" row per change.
// The file is created exclusively on first run and only ever appended to.

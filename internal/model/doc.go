package model

// Package model defines domain data structures shared across the app: log
// entries, control states, the capacity indicator, and the error kinds the
// counter, log store, and chart generator report to each other.

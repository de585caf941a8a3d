package counter

// Package counter holds the live visitor count. Every mutation is written to
// the visitor log before the count changes and then triggers a chart
// regeneration, synchronously, so a returning call leaves log, count and chart
// consistent with each other.

package chart

// Package chart renders the occupancy chart: the full visitor log drawn as a
// line of count over time of day (github.com/wcharczuk/go-chart/v2), written
// to a PNG that the UI reloads whenever the dirty flag is raised.

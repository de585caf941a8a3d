package ui

// Package ui contains the Fyne window of the visitors counter: the count and
// clock card, the +1/-1 buttons, the chart card and the menus. Drawing is
// driven by the frame loop through RootUI, and pointer, touch and key events
// are collected by InputSurface for the loop to sample.

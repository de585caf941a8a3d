// Package loop drives the counter one frame at a time: sample input, draw the
// count and clock, run the controls, swap in a new chart when one is ready and
// present. Frames are paced by a ticker and executed on the UI goroutine.
package loop

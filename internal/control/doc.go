// Package control turns per-frame samples of pointer and key state into
// discrete button presses. A press fires its action once, however many
// frames the button stays held.
package control

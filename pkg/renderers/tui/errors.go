package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoStore is returned when Run is called without a resume store.
	ErrNoStore = errors.New("tui: resume store is required")
)

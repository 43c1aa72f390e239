package store

import "errors"

var (
	// ErrLocalSessionNotFound is returned when no persisted session exists
	// or the persisted session has expired locally.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrNoteNotFound is returned when a notebook entry does not exist.
	ErrNoteNotFound = errors.New("note not found")
)

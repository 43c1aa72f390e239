package models

import "time"

// Note is a locally stored notebook entry. Notes never leave the device.
type Note struct {
	// ID is a client-generated UUID.
	ID string `json:"id"`

	// SubjectKey optionally ties the note to a catalog subject.
	SubjectKey string `json:"subjectKey,omitempty"`

	// Title is the note heading shown in the notebook list.
	Title string `json:"title"`

	// Body is the free-form note text.
	Body string `json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

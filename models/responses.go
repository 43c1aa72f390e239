package models

import "encoding/json"

// Envelope is the uniform response shape of every backend operation:
// {success, data?, message?}. The adapter decodes Data into the typed
// payload of the operation and converts success=false into a typed error,
// so nothing above the adapter ever sees this open-ended form.
type Envelope struct {
	// Success tells whether the operation succeeded.
	Success bool `json:"success"`

	// Data carries the operation payload when Success is true.
	Data json.RawMessage `json:"data,omitempty"`

	// Message is a human-readable failure (or informational) text.
	Message string `json:"message,omitempty"`
}

// LoginPayload is the success data of POST /api/auth/login.
type LoginPayload struct {
	Username string   `json:"username"`
	UserType UserType `json:"userType"`
	Email    string   `json:"email"`
	Token    string   `json:"token"`
}

// RegisterPayload is the success data of POST /api/auth/register.
// Registration does not create a session; the client logs in afterwards.
type RegisterPayload struct {
	Message string `json:"message"`
}

// ValidatePayload is the success data of POST /api/auth/validate.
type ValidatePayload struct {
	Success bool `json:"success"`
}

package adapter

import "errors"

var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrBadGateway         = errors.New("bad gateway")
	ErrInternalServer     = errors.New("internal server error")

	// ErrBackendRejected marks an envelope that arrived with success=false
	// on an otherwise healthy HTTP response. The wrapped text carries the
	// backend's message verbatim.
	ErrBackendRejected = errors.New("backend rejected request")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the paper catalog backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) and an in-process mock backend
// ([NewMockServerAdapter]) used for offline runs and tests.
//
// Every backend response arrives wrapped in [models.Envelope]; the adapter is
// the only layer that sees this shape. It decodes the payload and converts
// both transport failures and success=false envelopes into the sentinel errors
// defined in errors.go, so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/tzy-lab/paperdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Adapters never persist anything: a successful Login or Register hands the
// result to the caller, and the caller owns writing the session to the local
// store.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called after a successful Login or
	// when restoring a persisted session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the credentials against the backend. On success it
	// stores the returned bearer token via SetToken and returns the session
	// (user record, token, zero ExpiresAt — the local TTL is the caller's
	// concern). A rejected login yields [ErrInvalidCredentials].
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Register creates a new account. Registration does not produce a
	// session; on success the caller is expected to Login. A taken username
	// yields [ErrUserAlreadyExists].
	Register(ctx context.Context, username, password, email string) error

	// ValidateSession asks the backend whether the currently set bearer token
	// is still good. An invalid or expired token yields [ErrUnauthorized].
	ValidateSession(ctx context.Context) error

	// Logout invalidates the current bearer token on the backend. Callers
	// treat failures as best-effort: the local session is cleared regardless.
	Logout(ctx context.Context) error

	// Subjects fetches the full subject → topic → paper catalog.
	Subjects(ctx context.Context) ([]models.Subject, error)

	// SearchPapers runs a free-text paper search and returns the hits with
	// their catalog context. An empty query returns an empty result, not an
	// error.
	SearchPapers(ctx context.Context, query string) ([]models.SearchResult, error)
}

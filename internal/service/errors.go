package service

import "errors"

var (
	ErrWrongCredentials   = errors.New("wrong login or password")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyCredentials   = errors.New("login and password are required")

	ErrSessionExpired = errors.New("session expired")

	ErrServerUnavailable = errors.New("server unavailable")

	ErrNotImplemented = errors.New("not implemented")

	ErrInvalidTheme = errors.New("invalid theme")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"

	"github.com/tzy-lab/paperdesk/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return ErrWrongCredentials

	case errors.Is(err, adapter.ErrUserAlreadyExists):
		return ErrLoginAlreadyExists

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServer),
		isNetworkError(err):
		return ErrServerUnavailable
	}

	return err
}

// isNetworkError catches transport-level failures that never produced an
// HTTP status: refused connections, DNS failures, timeouts.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

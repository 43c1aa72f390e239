// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the application binary.
type Client interface {
	// Run blocks until the user leaves the program or a fatal error occurs.
	Run() error
}

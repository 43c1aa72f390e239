// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client owns the process lifecycle of the terminal application:
// session restore, the welcome flow, the main screen, and the background
// usage-flush worker.
package client

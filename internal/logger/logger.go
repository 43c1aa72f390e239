// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog for the paperdesk client.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Warn, Error, Fatal, WithContext, ...) is available on *Logger directly.
// Code that runs inside a request or UI flow should pull a scoped logger
// out of the context with FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger and carries the role field of the process.
type Logger struct {
	zerolog.Logger
}

// newWriterLogger builds the common client configuration: debug level,
// timestamps, a "role" field and a "func" caller field with the
// fully-qualified function name.
func newWriterLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger returns a JSON logger writing to stdout. Used by tooling that
// does not own the terminal.
func NewLogger(role string) *Logger {
	return newWriterLogger(os.Stdout, role)
}

// NewClientLogger returns the logger for the interactive client. The TUI
// owns the terminal, so entries go to a "logs" file next to the
// executable; when that file cannot be opened the logger degrades to
// stdout rather than failing startup.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")

	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = f
	}

	return newWriterLogger(w, role)
}

// Nop returns a logger that drops everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext returns the logger attached to ctx via zerolog's log.Ctx.
// zerolog falls back to its global logger for a bare context, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog with the constructors and context helpers
// used across hd-notes. Logger embeds zerolog.Logger, so the full zerolog
// API is available on *Logger; request-scoped instances travel in the
// context and are recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a zerolog.Logger with application helper methods attached.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server logger: JSON to stdout, debug level, a
// "role" field for filtering, timestamps, and a "func" caller field that
// holds the fully-qualified function name.
func NewLogger(role string) *Logger {
	applyGlobalFormat()

	return &Logger{newZerolog(os.Stdout, role)}
}

// NewClientLogger builds the TUI client logger. Lines go to a "logs" file
// next to the executable so they do not corrupt the terminal UI; stdout is
// the fallback when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	applyGlobalFormat()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	out, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		out = os.Stdout
	}

	return &Logger{newZerolog(out, role)}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a child that inherits the receiver's fields and
// can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest recovers the request-scoped logger attached by middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext recovers the logger attached to ctx. When none was attached
// zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func newZerolog(out *os.File, role string) zerolog.Logger {
	return zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

func applyGlobalFormat() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

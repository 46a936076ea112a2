// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the go-doc-sync binaries.
//
// *Logger embeds zerolog.Logger, so the usual Debug/Info/Warn/Err chains are
// called on it directly. Every entry carries "role", "time" and a "func"
// caller field holding the calling function name. Sync sessions tag their
// entries with the collection they serve, background parts with their
// component name.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the file NewClientLogger appends to, placed next to the
// executable.
const LogFileName = "logs"

type Logger struct {
	zerolog.Logger
}

var globalsOnce sync.Once

// New returns a JSON logger writing to w.
func New(w io.Writer, role string) *Logger {
	globalsOnce.Do(setupGlobals)

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger returns a logger writing to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger returns a logger appending to [LogFileName] next to the
// running executable. Stdout is used when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(clientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = f
	}
	return New(w, role)
}

func clientLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return LogFileName
	}
	return filepath.Join(filepath.Dir(exe), LogFileName)
}

func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
		return "unknown"
	}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l tagged with the component name.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// WithCollection returns a copy of l tagged with a remote collection path.
func (l *Logger) WithCollection(collection string) *Logger {
	return &Logger{l.With().Str("collection", collection).Logger()}
}

// WithContext stores l in ctx for FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx. Without one it falls back to
// zerolog's default context logger, which is disabled, so it never returns
// nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

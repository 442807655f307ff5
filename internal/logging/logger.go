// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package logging provides the process-wide structured logger built on
// zerolog. Call Init once at startup; before that the package falls
// back to a sane default logger so early code paths can still log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger initialization.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Unknown values
	// fall back to info.
	Level string

	// Format is "json" for machine-readable output or "console" for
	// human-readable development output.
	Format string

	// IncludeCaller adds file:line of the call site to each event.
	IncludeCaller bool

	// Output overrides the destination, primarily for tests. Nil means
	// stderr.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	logger = newLogger(Config{Level: "info", Format: "json"})
)

// Init configures the global logger. Safe to call again, e.g. after a
// config reload.
func Init(cfg Config) {
	mu.Lock()
	logger = newLogger(cfg)
	mu.Unlock()
}

func newLogger(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := parseLevel(cfg.Level)
	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.IncludeCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With starts a child logger context from the global logger.
func With() zerolog.Context {
	return Logger().With()
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a fatal-level event. The event's Msg call exits the
// process.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

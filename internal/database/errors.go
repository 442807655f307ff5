// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"errors"
	"io"

	"github.com/dietprefs/dietprefs/internal/logging"
)

// ErrNotFound is returned when a vendor or item lookup matches no row.
var ErrNotFound = errors.New("not found")

// closeWithLog closes a resource and logs any error at warn level.
// Used where a close failure is worth noticing but not acting on.
func closeWithLog(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Str("resource", what).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource ignoring errors. Used in error paths
// where the original error is the one worth reporting.
func closeQuietly(c io.Closer) {
	_ = c.Close()
}

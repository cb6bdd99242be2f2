// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// connectivityMarkers are substrings of transport errors that mean the
// server could not be reached at all.
var connectivityMarkers = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
}

// humanizeServerUnavailableError replaces raw transport errors with a short
// message a user can act on. Other errors pass through unchanged.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range connectivityMarkers {
		if strings.Contains(msg, marker) {
			return "No network or the server is unavailable"
		}
	}

	return err.Error()
}

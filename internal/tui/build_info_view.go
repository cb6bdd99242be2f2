// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/hd-notes/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := []string{
		"Application: HD Notes",
		"Version: " + valueOrNA(info.BuildVersion()),
		"Date: " + valueOrNA(info.BuildDate()),
		"Commit: " + valueOrNA(info.BuildCommit()),
	}

	return renderPage("ABOUT", strings.Join(rows, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// renderBuildInfoWindow renders serverVersion as "..." while it is unknown.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	lines := []string{fmt.Sprintf("%-12s %s", "Application", "go-notes-keeper")}
	for _, f := range info.Fields() {
		lines = append(lines, fmt.Sprintf("%-12s %s", f.Label, f.Value))
	}
	if serverVersion == "" {
		serverVersion = "..."
	}
	lines = append(lines, "", fmt.Sprintf("%-12s %s", "Server", serverVersion))

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

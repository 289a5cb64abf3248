// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-form-guard/models"
)

func renderBuildInfoWindow(version string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: formguard\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}

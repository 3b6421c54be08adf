// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-zone-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, containerID string) string {
	var b strings.Builder

	b.WriteString("Application: Zone Keeper contacts\n")
	b.WriteString("Container: ")
	b.WriteString(valueOrNA(containerID))
	b.WriteString("\nVersion: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-form-guard/internal/validation"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	labelStyle       = lipgloss.NewStyle().Width(labelWidth)
	requiredStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	focusedLabel     = lipgloss.NewStyle().Width(labelWidth).Bold(true)
	buttonEnabled    = lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	buttonDisabled   = lipgloss.NewStyle().Padding(0, 2).Faint(true).Strikethrough(true)
	statusStyle      = lipgloss.NewStyle().Italic(true)
	tagSuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tagErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tagNeutralStyle  = lipgloss.NewStyle()
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// tagStyles maps validation style tags to terminal styles. Unknown tags
// render unstyled.
var tagStyles = map[string]lipgloss.Style{
	validation.DefaultSuccessStyle: tagSuccessStyle,
	validation.DefaultErrorStyle:   tagErrorStyle,
	"warning":                      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"muted":                        helpStyle,
}

func styleFor(tag string) lipgloss.Style {
	if s, ok := tagStyles[tag]; ok {
		return s
	}
	return tagNeutralStyle
}

package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#85DCB0")
	mutedColor   = lipgloss.Color("#6B7280")

	spinnerStyle = lipgloss.NewStyle().Foreground(primaryColor)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

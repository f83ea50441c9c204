package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	demoBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(warningColor).
			Padding(0, 1)

	statusIdleStyle      = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	statusCapturingStyle = lipgloss.NewStyle().Foreground(warningColor).Padding(0, 1)
	statusOKStyle        = lipgloss.NewStyle().Foreground(successColor).Padding(0, 1)
	statusErrorStyle     = lipgloss.NewStyle().Foreground(errorColor).Padding(0, 1)

	bufferStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)

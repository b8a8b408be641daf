package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("208") // Orange, the active swatch border
	mutedColor   = lipgloss.Color("245") // Gray
	textColor    = lipgloss.Color("252")
	successColor = lipgloss.Color("42")

	loadingStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(1, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor).
			MarginBottom(1)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(textColor).
				MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	infoPanelStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	cartStyle = lipgloss.NewStyle().
			MarginTop(1)

	focusMarkerStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)
)

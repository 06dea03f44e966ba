package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colorpass/colorpass-go/internal/palette"
)

var (
	colorAccent = lipgloss.Color("#FB923C") // Orange
	colorCard   = lipgloss.Color("#374151") // Gray 700
	colorCopy   = lipgloss.Color("#2563EB") // Blue 600
	colorMuted  = lipgloss.Color("#9CA3AF")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorBlack  = lipgloss.Color("#000000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorCard).
			Padding(0, 2).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorCard).
			Padding(1, 2)

	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	copyButtonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorCopy).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))

	buttonBarStyle = lipgloss.NewStyle().
			Background(colorWhite).
			Padding(0, 1)
)

// textOn picks readable text for a background swatch.
func textOn(c palette.Color) lipgloss.Color {
	if c.Light() {
		return colorBlack
	}
	return colorWhite
}

func swatch(c palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(textOn(c))
}

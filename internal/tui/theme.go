package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The board must stay readable on light and dark terminals, so colours are
// adaptive. NoColor drops to the ASCII profile and plain markdown.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted       lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg  lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg  lipgloss.TerminalColor = ac("235", "255")
	colorAccent      lipgloss.TerminalColor = ac("25", "75")
	colorFavorite    lipgloss.TerminalColor = ac("166", "214")
	colorError       lipgloss.TerminalColor = ac("160", "203")
	colorFormBorder  lipgloss.TerminalColor = ac("25", "75")
	colorChromeTitle lipgloss.TerminalColor = ac("235", "255")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorChromeTitle)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	favoriteStyle = lipgloss.NewStyle().Foreground(colorFavorite)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	formStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFormBorder).Padding(0, 1)
	listStyle     = lipgloss.NewStyle().PaddingLeft(1)
)

var colorDisabled bool

// applyColorProfile switches lipgloss to plain ASCII output when noColor is set.
func applyColorProfile(noColor bool) {
	colorDisabled = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

package termstyle

import (
	"github.com/charmbracelet/lipgloss"
)

// Report styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	yesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	noStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
)

// Capability indicators
var (
	yesIndicator = yesStyle.Render("✓")
	noIndicator  = noStyle.Render("✗")
)

// indicator returns the styled glyph for a boolean capability, with an
// ASCII fallback when Unicode is off the table.
func indicator(ok, unicode bool) string {
	if unicode {
		if ok {
			return yesIndicator
		}
		return noIndicator
	}
	if ok {
		return yesStyle.Render("y")
	}
	return noStyle.Render("n")
}

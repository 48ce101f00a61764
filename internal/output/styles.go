package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: recipe paths, package names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for added diff lines.
	ColorGreen = lipgloss.Color("82")

	// ColorRed is used for removed diff lines.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (recipe paths, package names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles section headings and action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (hunk separators, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleAdded styles lines present only in the generated recipe.
	StyleAdded = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleRemoved styles lines present only in the file on disk.
	StyleRemoved = lipgloss.NewStyle().Foreground(ColorRed)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor disables ANSI styling when noColor is set, NO_COLOR is
// present in the environment, or stdout is not a terminal.
func ConfigureColor(noColor bool) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	if noColor || !IsTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

package browse

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette - uses standard ANSI colors (0-15) to respect the
	// user's terminal theme.
	primaryColor = lipgloss.ANSIColor(14) // Bright cyan
	accentColor  = lipgloss.ANSIColor(6)  // Cyan
	successColor = lipgloss.ANSIColor(10) // Bright green
	errorColor   = lipgloss.ANSIColor(9)  // Bright red
	dimColor     = lipgloss.ANSIColor(8)  // Bright black (gray)

	// logoStyle renders the ASCII art logo.
	logoStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// taglineStyle renders the tagline under the logo.
	taglineStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	// panelStyle wraps the activities and detail panels.
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)

	// panelTitleStyle renders panel headings.
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// selectedStyle highlights the item under the cursor.
	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// dimStyle renders secondary text.
	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// successBannerStyle renders success status messages.
	successBannerStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	// errorBannerStyle renders error status messages.
	errorBannerStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// noticeStyle renders the static failure notice in the list area.
	noticeStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// inputStyle styles the signup form area.
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// modalStyle styles the unregister confirm prompt.
	modalStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	// helpStyle is the style for the footer help text.
	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

package styles

import "github.com/charmbracelet/lipgloss"

// Color constants using a consistent palette
const (
	Primary     = "#7D56F4"
	PrimaryText = "#FAFAFA"

	Success = "#04B575"
	Warning = "#FFA500"
	Error   = "#FF6B6B"

	TextMuted = "#626262"
)

// Predefined styles for common use cases
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(PrimaryText)).
			Background(lipgloss.Color(Primary)).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Success)).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Error)).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Warning)).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(TextMuted)).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Primary)).
			Padding(1, 2).
			Margin(0, 1)
)

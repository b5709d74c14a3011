package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(ColorPrimary).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2)
)

// Tracker styles
var (
	ElapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTracking)

	TrackingIconStyle = lipgloss.NewStyle().
				Foreground(ColorTracking)

	PausedIconStyle = lipgloss.NewStyle().
			Foreground(ColorPaused)

	SelectedProjectStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)
)

// Pomodoro styles
var (
	CountdownStyle = lipgloss.NewStyle().
			Bold(true)

	WorkStyle = lipgloss.NewStyle().
			Foreground(ColorWork)

	ShortBreakStyle = lipgloss.NewStyle().
			Foreground(ColorShortBreak)

	LongBreakStyle = lipgloss.NewStyle().
			Foreground(ColorLongBreak)
)

// Stats styles
var (
	ChartBarStyle = lipgloss.NewStyle().
			Foreground(ColorChartBar)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Hint styles for empty states
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ProjectStyle returns a style colored with a project's own color
func ProjectStyle(color string) lipgloss.Style {
	if color == "" {
		return NormalStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// ModeStyle returns the style for a pomodoro phase name
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case "shortBreak":
		return ShortBreakStyle
	case "longBreak":
		return LongBreakStyle
	default:
		return WorkStyle
	}
}

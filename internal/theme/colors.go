package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Tracker state colors
const (
	ColorTracking Color = "2" // Green - stopwatch running
	ColorPaused   Color = "3" // Yellow - stopped
)

// Pomodoro phase colors
const (
	ColorWork       Color = "203" // Red - work phase
	ColorShortBreak Color = "42"  // Green - short break
	ColorLongBreak  Color = "33"  // Blue - long break
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorChartBar Color = "141" // Purple - stats bars
	ColorHintKey  Color = "226" // Yellow - empty-state hint keys
	ColorTabGroup Color = "141" // Purple - tab headers
)

// DefaultProjectColors is the palette offered when creating a project
var DefaultProjectColors = []string{
	"#ef4444", "#f97316", "#eab308", "#22c55e",
	"#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899",
}

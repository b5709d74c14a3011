package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts
type KeyMap struct {
	Adjust     key.Binding
	Delete     key.Binding
	Down       key.Binding
	NewProject key.Binding
	NextTab    key.Binding
	Quit       key.Binding
	Reset      key.Binding
	Settings   key.Binding
	SwitchMode key.Binding
	Toggle     key.Binding
	Up         key.Binding
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Adjust: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "adjust time"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete project"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NewProject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "durations"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "switch mode"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "start/stop"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// TrackerHelp returns the bindings shown under the tracker view
func (k KeyMap) TrackerHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NewProject, k.Adjust, k.Delete, k.NextTab, k.Quit}
}

// StatsHelp returns the bindings shown under the stats view
func (k KeyMap) StatsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// PomodoroHelp returns the bindings shown under the pomodoro view
func (k KeyMap) PomodoroHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.SwitchMode, k.Settings, k.NextTab, k.Quit}
}

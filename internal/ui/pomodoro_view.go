package ui

import (
	"strings"

	"tempo/internal/domain"
	"tempo/internal/theme"
)

var pomodoroModes = []domain.PomodoroMode{
	domain.ModeWork,
	domain.ModeShortBreak,
	domain.ModeLongBreak,
}

func modeLabel(mode domain.PomodoroMode) string {
	switch mode {
	case domain.ModeShortBreak:
		return "Short break"
	case domain.ModeLongBreak:
		return "Long break"
	default:
		return "Work"
	}
}

// viewPomodoro renders the countdown with the mode selector
func (m *Model) viewPomodoro() string {
	var b strings.Builder

	for _, mode := range pomodoroModes {
		label := modeLabel(mode)
		if mode == m.pomodoro.Mode() {
			b.WriteString(theme.ModeStyle(string(mode)).Bold(true).Render("[" + label + "]"))
		} else {
			b.WriteString(theme.SubtleStyle.Render(" " + label + " "))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	countdown := theme.CountdownStyle.
		Inherit(theme.ModeStyle(string(m.pomodoro.Mode()))).
		Render(formatCountdown(m.pomodoro.TimeLeft()))
	b.WriteString(countdown)

	if m.pomodoro.Active() {
		b.WriteString(theme.SubtleStyle.Render("  running"))
	} else if m.pomodoro.TimeLeft() == 0 {
		b.WriteString(theme.SubtleStyle.Render("  done"))
	} else {
		b.WriteString(theme.SubtleStyle.Render("  paused"))
	}
	b.WriteString("\n")

	return b.String()
}

// nextPomodoroMode cycles work -> short break -> long break -> work
func nextPomodoroMode(mode domain.PomodoroMode) domain.PomodoroMode {
	for i, m := range pomodoroModes {
		if m == mode {
			return pomodoroModes[(i+1)%len(pomodoroModes)]
		}
	}
	return domain.ModeWork
}

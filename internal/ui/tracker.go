package ui

import (
	"fmt"
	"strings"

	"tempo/internal/theme"
)

// viewTracker renders the project list with the stopwatch
func (m *Model) viewTracker() string {
	var b strings.Builder

	projects := m.ledger.Projects()
	if len(projects) == 0 {
		b.WriteString(theme.HintLabelStyle.Render("No projects yet. Press "))
		b.WriteString(theme.HintKeyStyle.Render("n"))
		b.WriteString(theme.HintLabelStyle.Render(" to create one."))
		b.WriteString("\n")
		return b.String()
	}

	active := m.timer.ActiveProjectID()
	for i, p := range projects {
		cursor := "  "
		if i == m.cursor {
			cursor = theme.SelectedProjectStyle.Render("> ")
		}

		icon := theme.PausedIconStyle.Render("○")
		if m.timer.Running() && p.ID == active {
			icon = theme.TrackingIconStyle.Render("●")
		}

		name := theme.ProjectStyle(p.Color).Render(p.Name)
		if i == m.cursor {
			name = theme.SelectedProjectStyle.Render(p.Name)
		}

		total := p.TotalTime
		if m.timer.Running() && p.ID == active {
			total += m.timer.Elapsed()
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor, icon, name,
			theme.SubtleStyle.Render(formatTotal(total))))
	}

	b.WriteString("\n")
	if m.timer.Running() {
		b.WriteString(theme.ElapsedStyle.Render(formatElapsed(m.timer.Elapsed())))
		b.WriteString(theme.SubtleStyle.Render("  tracking"))
	} else {
		b.WriteString(theme.SubtleStyle.Render(formatElapsed(0) + "  stopped"))
	}
	b.WriteString("\n")

	return b.String()
}

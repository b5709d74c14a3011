package ui

import (
	"fmt"
	"strings"

	"tempo/internal/domain"
	"tempo/internal/theme"
)

// shown at most this many recent weeks in the history section
const maxStatsWeeks = 4

const maxBarWidth = 24

// viewStats renders the all-time overview and the recent weekly history
func (m *Model) viewStats() string {
	var b strings.Builder
	loc := m.ledger.Now().Location()

	overview := m.ledger.Summarize()
	b.WriteString(theme.SubtleStyle.Render("Total tracked "))
	b.WriteString(theme.StatValueStyle.Render(formatTotal(overview.TotalTracked)))
	b.WriteString(theme.SubtleStyle.Render(fmt.Sprintf("  over %d week(s) since %s",
		overview.WeekCount, formatDate(overview.FirstWeekStart, loc))))
	b.WriteString("\n\n")

	for _, summary := range overview.Projects {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			theme.ProjectStyle(summary.Project.Color).Render("●"),
			summary.Project.Name,
			theme.StatValueStyle.Render(formatTotal(summary.TotalSeconds)),
			theme.SubtleStyle.Render(fmt.Sprintf("%d sessions, %s/week, since %s",
				summary.SessionCount,
				formatTotal(summary.AvgPerWeek),
				formatDate(summary.FirstTracked, loc)))))
	}

	weeks := m.ledger.WeeklySummary()
	if len(weeks) > maxStatsWeeks {
		weeks = weeks[len(weeks)-maxStatsWeeks:]
	}

	for _, week := range weeks {
		b.WriteString("\n")
		b.WriteString(theme.ChartLabelStyle.Render(fmt.Sprintf("Week of %s", formatWeekLabel(week.Start, loc))))
		b.WriteString("  ")
		b.WriteString(theme.StatValueStyle.Render(formatTotal(week.TotalSeconds)))
		b.WriteString("\n")

		if len(week.Top) == 0 {
			b.WriteString(theme.SubtleStyle.Render("  no activity"))
			b.WriteString("\n")
			continue
		}

		max := week.Top[0].Seconds
		for _, top := range week.Top {
			width := 1
			if max > 0 {
				width = int(top.Seconds * maxBarWidth / max)
				if width < 1 {
					width = 1
				}
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				theme.ProjectStyle(top.Color).Render(strings.Repeat("█", width)),
				top.Name,
				theme.SubtleStyle.Render(formatTotal(top.Seconds))))
		}
	}

	b.WriteString(m.viewDailyBreakdown())

	return b.String()
}

// viewDailyBreakdown renders the current week's Monday..Sunday buckets for
// the project under the cursor
func (m *Model) viewDailyBreakdown() string {
	projects := m.ledger.Projects()
	if len(projects) == 0 || m.cursor >= len(projects) {
		return ""
	}
	project := projects[m.cursor]

	now := m.ledger.Now()
	weekStart := domain.WeekStart(now.UnixMilli(), now.Location())
	days := domain.DailyBuckets(project.ID, m.ledger.Sessions(), weekStart)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.ChartLabelStyle.Render(fmt.Sprintf("This week: %s", project.Name)))
	b.WriteString("\n  ")

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, seconds := range days {
		b.WriteString(fmt.Sprintf("%s %s  ",
			theme.SubtleStyle.Render(labels[i]),
			formatTotal(seconds)))
	}
	b.WriteString("\n")

	return b.String()
}

package cmd

import (
	"fmt"
	"strings"
	"time"
)

// StatsCmd shows tracked time statistics
type StatsCmd struct {
	Weeks int `help:"Number of recent weeks to show (0 = all)" default:"4"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ledger := cli.Container.Ledger
	overview := ledger.Summarize()

	fmt.Printf("Total tracked: %s over %d week(s) since %s\n\n",
		formatSeconds(overview.TotalTracked),
		overview.WeekCount,
		time.UnixMilli(overview.FirstWeekStart).Format("2006-01-02"))

	if len(overview.Projects) == 0 {
		fmt.Println("No projects yet.")
	} else {
		fmt.Println("Project                   Total       Sessions  Avg/week    First tracked")
		fmt.Println(strings.Repeat("─", 75))
		for _, summary := range overview.Projects {
			fmt.Printf("%-25s %-11s %-9d %-11s %s\n",
				summary.Project.Name,
				formatSeconds(summary.TotalSeconds),
				summary.SessionCount,
				formatSeconds(summary.AvgPerWeek),
				time.UnixMilli(summary.FirstTracked).Format("2006-01-02"))
		}
	}

	weeks := ledger.WeeklySummary()
	if s.Weeks > 0 && len(weeks) > s.Weeks {
		weeks = weeks[len(weeks)-s.Weeks:]
	}

	for _, week := range weeks {
		fmt.Printf("\nWeek of %s: %s\n",
			time.UnixMilli(week.Start).Format("Jan 2"),
			formatSeconds(week.TotalSeconds))

		if len(week.Top) == 0 {
			fmt.Println("  no activity")
			continue
		}
		for _, top := range week.Top {
			fmt.Printf("  %-25s %s\n", top.Name, formatSeconds(top.Seconds))
		}
	}

	return nil
}

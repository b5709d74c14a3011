package cmd

import (
	"fmt"
	"strings"
	"time"

	"tempo/internal/domain"
)

// SessionsCmd lists recorded sessions
type SessionsCmd struct {
	Project string `help:"Only show sessions for this project (name or id)" default:""`
	Limit   int    `help:"Maximum number of sessions to show, newest last (0 = all)" default:"20"`
}

// Run executes the sessions command
func (s *SessionsCmd) Run(cli *CLI) error {
	ledger := cli.Container.Ledger
	sessions := ledger.Sessions()

	if s.Project != "" {
		project, err := findProject(ledger.Projects(), s.Project)
		if err != nil {
			return err
		}
		filtered := make([]domain.Session, 0, len(sessions))
		for _, session := range sessions {
			if session.ProjectID == project.ID {
				filtered = append(filtered, session)
			}
		}
		sessions = filtered
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	if s.Limit > 0 && len(sessions) > s.Limit {
		sessions = sessions[len(sessions)-s.Limit:]
	}

	fmt.Println("When                 Project                   Duration    Source")
	fmt.Println(strings.Repeat("─", 70))
	for _, session := range sessions {
		project := domain.ResolveProject(ledger.Projects(), session.ProjectID)

		duration := formatSeconds(session.Duration)
		if session.Direction == domain.DirectionSubtract {
			duration = "-" + duration
		}

		fmt.Printf("%-20s %-25s %-11s %s\n",
			time.UnixMilli(session.StartTime).Format("2006-01-02 15:04"),
			project.Name,
			duration,
			session.Source)
	}
	return nil
}

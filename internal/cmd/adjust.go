package cmd

import (
	"fmt"

	"tempo/internal/domain"
)

// AdjustCmd records a manual time correction on a project
type AdjustCmd struct {
	Project string `arg:"" help:"Project to adjust (name or id)"`
	Minutes int    `arg:"" help:"Number of minutes"`
	Remove  bool   `help:"Remove time instead of adding it"`
}

// Run executes the adjust command
func (a *AdjustCmd) Run(cli *CLI) error {
	if a.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}

	ledger := cli.Container.Ledger
	project, err := findProject(ledger.Projects(), a.Project)
	if err != nil {
		return err
	}

	direction := domain.DirectionAdd
	verb := "Added"
	if a.Remove {
		direction = domain.DirectionSubtract
		verb = "Removed"
	}

	ledger.AdjustProjectTime(project.ID, int64(a.Minutes)*60, direction)

	updated, _ := findProject(ledger.Projects(), project.ID)
	fmt.Printf("%s %dm on '%s' (total now %s)\n",
		verb, a.Minutes, project.Name, formatSeconds(updated.TotalTime))
	return nil
}

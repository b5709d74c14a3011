package cmd

import (
	"fmt"
	"strings"
	"time"

	"tempo/internal/domain"
	"tempo/internal/theme"
)

// ProjectsCmd manages projects
type ProjectsCmd struct {
	List ProjectsListCmd `cmd:"list" help:"List all projects" default:"1"`
	Add  ProjectsAddCmd  `cmd:"add" help:"Add a new project"`
	Del  ProjectsDelCmd  `cmd:"del" help:"Delete a project"`
}

// ProjectsListCmd lists all projects
type ProjectsListCmd struct{}

// Run executes the list command
func (p *ProjectsListCmd) Run(cli *CLI) error {
	projects := cli.Container.Ledger.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects yet. Create one with 'tempo projects add <name>'.")
		return nil
	}

	fmt.Println("Name                      Total       Since")
	fmt.Println(strings.Repeat("─", 50))
	for _, project := range projects {
		fmt.Printf("%-25s %-11s %s\n",
			project.Name,
			formatSeconds(project.TotalTime),
			time.UnixMilli(project.StartDate).Format("2006-01-02"))
	}
	return nil
}

// ProjectsAddCmd adds a new project
type ProjectsAddCmd struct {
	Name  string `arg:"" help:"Name of the project to add"`
	Color string `help:"Hex color for the project" default:""`
}

// Run executes the add command
func (p *ProjectsAddCmd) Run(cli *CLI) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("project name required")
	}

	color := p.Color
	if color == "" {
		// Rotate through the palette by project count
		color = theme.DefaultProjectColors[len(cli.Container.Ledger.Projects())%len(theme.DefaultProjectColors)]
	}

	project := cli.Container.Ledger.AddProject(name, color)
	fmt.Printf("Project '%s' added (%s)\n", project.Name, project.ID)
	return nil
}

// ProjectsDelCmd deletes a project
type ProjectsDelCmd struct {
	Name string `arg:"" help:"Name or id of the project to delete"`
}

// Run executes the del command
func (p *ProjectsDelCmd) Run(cli *CLI) error {
	project, err := findProject(cli.Container.Ledger.Projects(), p.Name)
	if err != nil {
		return err
	}

	cli.Container.Ledger.DeleteProject(project.ID)
	fmt.Printf("Project '%s' deleted. Its sessions are kept and still count toward totals.\n", project.Name)
	return nil
}

// findProject resolves a project by exact name, falling back to id
func findProject(projects []domain.Project, nameOrID string) (domain.Project, error) {
	for _, p := range projects {
		if p.Name == nameOrID || p.ID == nameOrID {
			return p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("project %q not found", nameOrID)
}

// formatSeconds renders an accumulated total compactly
func formatSeconds(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

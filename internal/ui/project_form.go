package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tempo/internal/logging"
	"tempo/internal/services"
	"tempo/internal/theme"
)

// ProjectForm is a Bubble Tea component for creating projects
type ProjectForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	form      *huh.Form
	ledger    *services.Ledger
	name      string
	color     string
}

// NewProjectForm creates a new project creation form
func NewProjectForm(ledger *services.Ledger) *ProjectForm {
	pf := &ProjectForm{
		ledger: ledger,
		color:  theme.DefaultProjectColors[0],
	}

	options := make([]huh.Option[string], len(theme.DefaultProjectColors))
	for i, c := range theme.DefaultProjectColors {
		options[i] = huh.NewOption(theme.ProjectStyle(c).Render("●●●")+" "+c, c)
	}

	pf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Value(&pf.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("project name required")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Color").
			Options(options...).
			Value(&pf.color),
	))

	return pf
}

func (pf *ProjectForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *ProjectForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			pf.Completed = true
			pf.cancelled = true
			return pf, nil
		}
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted && !pf.Completed {
		pf.Completed = true
		project := pf.ledger.AddProject(strings.TrimSpace(pf.name), pf.color)
		logging.Logger.Info("Project created", "id", project.ID, "name", project.Name)
	}

	return pf, cmd
}

func (pf *ProjectForm) View() string {
	return pf.form.View()
}

// Cancelled reports whether the form was dismissed without saving
func (pf *ProjectForm) Cancelled() bool {
	return pf.cancelled
}

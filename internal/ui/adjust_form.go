package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/services"
)

// AdjustForm is a Bubble Tea component for manual time corrections
type AdjustForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	form      *huh.Form
	ledger    *services.Ledger
	projectID string
	minutes   string
	direction string
}

// NewAdjustForm creates a form adding or removing time on one project
func NewAdjustForm(ledger *services.Ledger, projectID string) *AdjustForm {
	af := &AdjustForm{
		ledger:    ledger,
		projectID: projectID,
		direction: string(domain.DirectionAdd),
	}

	af.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Minutes").
			Value(&af.minutes).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n <= 0 {
					return fmt.Errorf("enter a positive whole number of minutes")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Direction").
			Options(
				huh.NewOption("Add time", string(domain.DirectionAdd)),
				huh.NewOption("Remove time", string(domain.DirectionSubtract)),
			).
			Value(&af.direction),
	))

	return af
}

func (af *AdjustForm) Init() tea.Cmd {
	return af.form.Init()
}

func (af *AdjustForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			af.Completed = true
			af.cancelled = true
			return af, nil
		}
	}

	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	if af.form.State == huh.StateCompleted && !af.Completed {
		af.Completed = true
		minutes, _ := strconv.Atoi(af.minutes)
		af.ledger.AdjustProjectTime(af.projectID, int64(minutes)*60, domain.Direction(af.direction))
		logging.Logger.Info("Project time adjusted",
			"project_id", af.projectID,
			"minutes", minutes,
			"direction", af.direction)
	}

	return af, cmd
}

func (af *AdjustForm) View() string {
	return af.form.View()
}

// Cancelled reports whether the form was dismissed without saving
func (af *AdjustForm) Cancelled() bool {
	return af.cancelled
}

package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tempo/internal/domain"
	"tempo/internal/services"
)

// SettingsForm edits the pomodoro durations
type SettingsForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	form      *huh.Form
	pomodoro  *services.Pomodoro
	work      string
	short     string
	long      string
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number of minutes")
	}
	return nil
}

// NewSettingsForm creates a form editing all three pomodoro durations
func NewSettingsForm(pomodoro *services.Pomodoro, current domain.PomodoroDurations) *SettingsForm {
	sf := &SettingsForm{
		pomodoro: pomodoro,
		work:     strconv.Itoa(current.Work),
		short:    strconv.Itoa(current.ShortBreak),
		long:     strconv.Itoa(current.LongBreak),
	}

	sf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Work (minutes)").
			Value(&sf.work).
			Validate(validateMinutes),
		huh.NewInput().
			Title("Short break (minutes)").
			Value(&sf.short).
			Validate(validateMinutes),
		huh.NewInput().
			Title("Long break (minutes)").
			Value(&sf.long).
			Validate(validateMinutes),
	))

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.Completed = true
			sf.cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted && !sf.Completed {
		sf.Completed = true
		work, _ := strconv.Atoi(sf.work)
		short, _ := strconv.Atoi(sf.short)
		long, _ := strconv.Atoi(sf.long)
		sf.pomodoro.SetDuration(domain.ModeWork, work)
		sf.pomodoro.SetDuration(domain.ModeShortBreak, short)
		sf.pomodoro.SetDuration(domain.ModeLongBreak, long)
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	return sf.form.View()
}

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/services"
	"tempo/internal/theme"
	"tempo/version"
)

type tab int

const (
	tabTracker tab = iota
	tabStats
	tabPomodoro
)

var tabNames = []string{"Tracker", "Stats", "Pomodoro"}

type uiState int

const (
	stateMain uiState = iota
	stateNewProject
	stateAdjust
	stateSettings
	stateConfirmDelete
)

// tickMsg drives the stopwatch display and the pomodoro countdown
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root Bubble Tea model with the three tab views
type Model struct {
	ledger   *services.Ledger
	timer    *services.Timer
	pomodoro *services.Pomodoro

	keys   KeyMap
	tab    tab
	state  uiState
	cursor int

	projectForm  *ProjectForm
	adjustForm   *AdjustForm
	settingsForm *SettingsForm

	confirmDelete   *huh.Form
	deleteTarget    domain.Project
	deleteConfirmed bool

	width  int
	height int
}

// NewModel creates the root model
func NewModel(ledger *services.Ledger, timer *services.Timer, pomodoro *services.Pomodoro) *Model {
	return &Model{
		ledger:   ledger,
		timer:    timer,
		pomodoro: pomodoro,
		keys:     NewKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.pomodoro.Tick()
		return m, tickCmd()
	}

	switch m.state {
	case stateNewProject:
		return m.updateNewProject(msg)
	case stateAdjust:
		return m.updateAdjust(msg)
	case stateSettings:
		return m.updateSettings(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateMain(msg)
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NextTab):
		m.tab = tab((int(m.tab) + 1) % len(tabNames))
		return m, nil
	}

	switch m.tab {
	case tabPomodoro:
		return m.updatePomodoroKeys(keyMsg)
	case tabStats:
		return m.updateCursorKeys(keyMsg)
	}
	return m.updateTrackerKeys(keyMsg)
}

func (m *Model) updateCursorKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.ledger.Projects())-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m *Model) updateTrackerKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	projects := m.ledger.Projects()

	switch {
	case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Down):
		return m.updateCursorKeys(keyMsg)

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.timer.Running() {
			session, _ := m.timer.Stop()
			logging.Logger.Info("Session recorded",
				"project_id", session.ProjectID,
				"duration", session.Duration)
		} else if m.cursor < len(projects) {
			m.timer.Start(projects[m.cursor].ID)
		}

	case key.Matches(keyMsg, m.keys.NewProject):
		m.projectForm = NewProjectForm(m.ledger)
		m.state = stateNewProject
		return m, m.projectForm.Init()

	case key.Matches(keyMsg, m.keys.Adjust):
		if m.cursor < len(projects) {
			m.adjustForm = NewAdjustForm(m.ledger, projects[m.cursor].ID)
			m.state = stateAdjust
			return m, m.adjustForm.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.cursor < len(projects) {
			m.deleteTarget = projects[m.cursor]
			m.deleteConfirmed = false
			m.confirmDelete = huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q?", m.deleteTarget.Name)).
					Description("Its recorded sessions are kept and still count toward totals.").
					Affirmative("Delete").
					Negative("Cancel").
					Value(&m.deleteConfirmed),
			))
			m.state = stateConfirmDelete
			return m, m.confirmDelete.Init()
		}
	}
	return m, nil
}

func (m *Model) updatePomodoroKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Toggle):
		m.pomodoro.Toggle()
	case key.Matches(keyMsg, m.keys.Reset):
		m.pomodoro.Reset()
	case key.Matches(keyMsg, m.keys.SwitchMode):
		m.pomodoro.SwitchMode(nextPomodoroMode(m.pomodoro.Mode()))
	case key.Matches(keyMsg, m.keys.Settings):
		m.settingsForm = NewSettingsForm(m.pomodoro, m.ledger.PomodoroDurations())
		m.state = stateSettings
		return m, m.settingsForm.Init()
	}
	return m, nil
}

func (m *Model) updateNewProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.projectForm.Update(msg)
	m.projectForm = updated.(*ProjectForm)
	if m.projectForm.Completed {
		m.state = stateMain
		m.cursor = clampCursor(m.cursor, len(m.ledger.Projects()))
	}
	return m, cmd
}

func (m *Model) updateAdjust(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.adjustForm.Update(msg)
	m.adjustForm = updated.(*AdjustForm)
	if m.adjustForm.Completed {
		m.state = stateMain
	}
	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.settingsForm.Update(msg)
	m.settingsForm = updated.(*SettingsForm)
	if m.settingsForm.Completed {
		m.state = stateMain
	}
	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.state = stateMain
			return m, nil
		}
	}

	form, cmd := m.confirmDelete.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmDelete = f
	}

	if m.confirmDelete.State == huh.StateCompleted {
		if m.deleteConfirmed {
			if m.timer.Running() && m.timer.ActiveProjectID() == m.deleteTarget.ID {
				m.timer.Reset()
			}
			m.ledger.DeleteProject(m.deleteTarget.ID)
			logging.Logger.Info("Project deleted", "id", m.deleteTarget.ID)
		}
		m.state = stateMain
		m.cursor = clampCursor(m.cursor, len(m.ledger.Projects()))
	}
	return m, cmd
}

func clampCursor(cursor, count int) int {
	if count == 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

func (m *Model) View() string {
	switch m.state {
	case stateNewProject:
		return m.viewWithHeader(m.projectForm.View())
	case stateAdjust:
		return m.viewWithHeader(m.adjustForm.View())
	case stateSettings:
		return m.viewWithHeader(m.settingsForm.View())
	case stateConfirmDelete:
		return m.viewWithHeader(m.confirmDelete.View())
	}

	var body string
	var help []key.Binding
	switch m.tab {
	case tabStats:
		body = m.viewStats()
		help = m.keys.StatsHelp()
	case tabPomodoro:
		body = m.viewPomodoro()
		help = m.keys.PomodoroHelp()
	default:
		body = m.viewTracker()
		help = m.keys.TrackerHelp()
	}

	return m.viewWithHeader(m.viewTabs() + "\n" + body + m.viewHelp(help))
}

func (m *Model) viewWithHeader(body string) string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		theme.AppNameStyle.Render("tempo "),
		theme.VersionStyle.Render(version.Version),
	)
	return header + "\n\n" + body
}

func (m *Model) viewTabs() string {
	var rendered []string
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered = append(rendered, theme.TabActiveStyle.Render(name))
		} else {
			rendered = append(rendered, theme.TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) viewHelp(bindings []key.Binding) string {
	var parts string
	for i, b := range bindings {
		if i > 0 {
			parts += " • "
		}
		parts += b.Help().Key + " " + b.Help().Desc
	}
	return theme.HelpStyle.Render(parts)
}

package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"tempo/internal/adapters/sound"
	"tempo/internal/logging"
	"tempo/internal/ports"
	"tempo/internal/services"
	"tempo/internal/ui"
)

// sessionModel wraps ui.Model to close the per-session repository on quit
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
	repo      ports.WorkspaceRepository
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close repository for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	repo, err := s.newRepo()
	if err != nil {
		logging.Logger.Error("Failed to open workspace for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	ledger := services.NewLedger(repo, nil)
	if err := ledger.Load(context.Background()); err != nil {
		logging.Logger.Error("Failed to load workspace for SSH session",
			"error", err,
			"session_id", sessionID)
		repo.Close()
		return errorModel{err}, nil
	}

	timer := services.NewTimer(ledger, nil)
	// Remote terminals cannot play host audio; the bell is forwarded
	pomodoro := services.NewPomodoro(ledger, sound.NewPlayer())

	wrappedModel := &sessionModel{
		Model:     ui.NewModel(ledger, timer, pomodoro),
		sessionID: sessionID,
		startTime: time.Now(),
		repo:      repo,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}

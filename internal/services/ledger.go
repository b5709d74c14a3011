package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// Clock supplies the current time. Injected so accounting and timer tests
// can run on simulated time.
type Clock func() time.Time

// Ledger is the single mutator of workspace state: projects, the
// append-only session history, and the pomodoro configuration. All
// accounting flows through it, so in-memory state is authoritative and
// persistence is best effort: a failed save is logged and the session
// continues on memory alone.
type Ledger struct {
	repo      ports.WorkspaceRepository
	clock     Clock
	projects  []domain.Project
	sessions  []domain.Session
	durations domain.PomodoroDurations
}

// NewLedger creates a ledger backed by repo. A nil clock means wall time.
func NewLedger(repo ports.WorkspaceRepository, clock Clock) *Ledger {
	if clock == nil {
		clock = time.Now
	}
	return &Ledger{
		repo:      repo,
		clock:     clock,
		durations: domain.DefaultPomodoroDurations(),
	}
}

// Load reads the persisted snapshot and normalizes it. A missing snapshot
// starts an empty workspace.
func (l *Ledger) Load(ctx context.Context) error {
	snapshot, err := l.repo.Load(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		l.projects = []domain.Project{}
		l.sessions = []domain.Session{}
		l.durations = domain.DefaultPomodoroDurations()
		return nil
	}

	l.projects = domain.NormalizeProjects(snapshot.Projects, l.clock())
	l.sessions = domain.NormalizeSessions(snapshot.Sessions)
	l.durations = snapshot.PomodoroDurations
	return nil
}

// Projects returns the current project list in creation order
func (l *Ledger) Projects() []domain.Project {
	return l.projects
}

// Sessions returns the session history in insertion order
func (l *Ledger) Sessions() []domain.Session {
	return l.sessions
}

// PomodoroDurations returns the current pomodoro configuration
func (l *Ledger) PomodoroDurations() domain.PomodoroDurations {
	return l.durations
}

// Now returns the ledger's current time
func (l *Ledger) Now() time.Time {
	return l.clock()
}

// AddProject creates a project with a zero total and the current time as
// its start date, and appends it to the list.
func (l *Ledger) AddProject(name, color string) domain.Project {
	project := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		TotalTime: 0,
		StartDate: l.clock().UnixMilli(),
	}
	l.projects = append(l.projects, project)
	l.persist(ports.Patch{Projects: &l.projects})
	return project
}

// DeleteProject removes a project from the list. Its sessions stay in the
// history as orphans and keep counting toward workspace totals.
func (l *Ledger) DeleteProject(id string) {
	filtered := make([]domain.Project, 0, len(l.projects))
	for _, p := range l.projects {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	l.projects = filtered
	l.persist(ports.Patch{Projects: &l.projects})
}

// RecordSession normalizes and appends a session, then folds its signed
// duration into the project's running total. A missing ID is filled with a
// fresh UUID; an unknown project id leaves totals untouched but the session
// is still recorded.
func (l *Ledger) RecordSession(session domain.Session) domain.Session {
	session = session.Normalized()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	l.sessions = append(l.sessions, session)
	for i, p := range l.projects {
		if p.ID == session.ProjectID {
			l.projects[i].TotalTime = domain.ApplyClamped(p.TotalTime, session.SignedDuration())
			break
		}
	}

	l.persist(ports.Patch{Projects: &l.projects, Sessions: &l.sessions})
	return session
}

// AdjustProjectTime records a manual correction as a synthetic session.
// Non-positive amounts are ignored.
func (l *Ledger) AdjustProjectTime(projectID string, seconds int64, direction domain.Direction) {
	if seconds <= 0 {
		return
	}

	l.RecordSession(domain.Session{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		StartTime: l.clock().UnixMilli(),
		Duration:  seconds,
		Source:    domain.SourceManual,
		Direction: direction,
	})
}

// SetPomodoroDurations replaces the pomodoro configuration
func (l *Ledger) SetPomodoroDurations(durations domain.PomodoroDurations) {
	l.durations = durations
	l.persist(ports.Patch{PomodoroDurations: &l.durations})
}

// WeeklySummary returns the weekly history for the current workspace
func (l *Ledger) WeeklySummary() []domain.Week {
	return domain.WeeklySummary(l.projects, l.sessions, l.clock())
}

// Summarize returns the all-time overview for the current workspace
func (l *Ledger) Summarize() domain.Overview {
	return domain.Summarize(l.projects, l.sessions, l.clock())
}

func (l *Ledger) persist(patch ports.Patch) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.repo.Save(ctx, patch); err != nil {
		logging.Logger.Error("failed to persist workspace", "error", err)
	}
}

package ports

import (
	"context"

	"tempo/internal/domain"
)

// Snapshot is the full persisted workspace: every project, the complete
// append-only session history in insertion order, and the pomodoro
// configuration.
type Snapshot struct {
	Projects          []domain.Project
	Sessions          []domain.Session
	PomodoroDurations domain.PomodoroDurations
}

// Patch is a partial workspace update. Nil fields keep whatever the store
// already holds; set fields replace it wholesale.
type Patch struct {
	Projects          *[]domain.Project
	Sessions          *[]domain.Session
	PomodoroDurations *domain.PomodoroDurations
}

// WorkspaceReader loads the persisted workspace
type WorkspaceReader interface {
	// Load returns the stored snapshot, or nil when nothing has been
	// persisted yet.
	Load(ctx context.Context) (*Snapshot, error)
}

// WorkspaceWriter persists workspace changes
type WorkspaceWriter interface {
	Save(ctx context.Context, patch Patch) error
}

// WorkspaceRepository is the composite interface
type WorkspaceRepository interface {
	WorkspaceReader
	WorkspaceWriter
	Close() error
}

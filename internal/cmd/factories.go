package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	adaptersound "tempo/internal/adapters/sound"
	adapterstorage "tempo/internal/adapters/storage"
	"tempo/internal/config"
	"tempo/internal/ports"
	"tempo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Ledger   *services.Ledger
	Timer    *services.Timer
	Pomodoro *services.Pomodoro

	// NewRepository opens an extra repository handle on the same backend,
	// used by the SSH server to give each remote session its own ledger.
	NewRepository func() (ports.WorkspaceRepository, error)

	// Internal - for cleanup only
	repo ports.WorkspaceRepository
}

// NewContainer creates a new Container with all dependencies wired.
// storage selects the backend (json or sqlite); dataDir overrides the
// default workspace location when non-empty.
func NewContainer(storage, dataDir string) (*Container, error) {
	newRepo := repositoryFactory(storage, dataDir)

	repo, err := newRepo()
	if err != nil {
		return nil, err
	}

	ledger := services.NewLedger(repo, nil)
	if err := ledger.Load(context.Background()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	timer := services.NewTimer(ledger, nil)
	pomodoro := services.NewPomodoro(ledger, adaptersound.NewPlayer())

	return &Container{
		Ledger:        ledger,
		Timer:         timer,
		Pomodoro:      pomodoro,
		NewRepository: newRepo,
		repo:          repo,
	}, nil
}

// repositoryFactory resolves the storage backend and location
func repositoryFactory(storage, dataDir string) func() (ports.WorkspaceRepository, error) {
	if storage == config.StorageSQLite {
		path := config.GetDBPath()
		if dataDir != "" {
			path = filepath.Join(dataDir, "workspace.db")
		}
		return func() (ports.WorkspaceRepository, error) {
			return adapterstorage.NewSQLiteRepository(path)
		}
	}

	path := config.GetWorkspacePath()
	if dataDir != "" {
		path = filepath.Join(dataDir, "workspace.json")
	}
	return func() (ports.WorkspaceRepository, error) {
		return adapterstorage.NewJSONStore(path)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

// JSONStore implements ports.WorkspaceRepository with a single JSON file.
// Every save rewrites the whole document under an exclusive file lock, so
// concurrent tempo processes cannot interleave partial writes.
type JSONStore struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.WorkspaceRepository = (*JSONStore)(nil)

// workspaceDocument is the on-disk wire format
type workspaceDocument struct {
	Projects          []domain.Project          `json:"projects"`
	Sessions          []domain.Session          `json:"sessions"`
	PomodoroDurations *domain.PomodoroDurations `json:"pomodoroDurations,omitempty"`
}

// NewJSONStore creates a store backed by the file at path
func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONStore{path: path}, nil
}

// Load implements WorkspaceReader.Load. A missing file means no workspace
// has been persisted yet and returns nil without error.
func (s *JSONStore) Load(ctx context.Context) (*ports.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var doc workspaceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace: %w", err)
	}

	return snapshotFromDocument(doc), nil
}

// Save implements WorkspaceWriter.Save. The patch is merged field-wise into
// the stored document and the result written back in one pass, all while
// holding an exclusive lock on the file.
func (s *JSONStore) Save(ctx context.Context, patch ports.Patch) error {
	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open workspace file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	var doc workspaceDocument
	existing, err := os.ReadFile(s.path)
	if err == nil && len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal workspace: %w", err)
		}
	}

	if patch.Projects != nil {
		doc.Projects = *patch.Projects
	}
	if patch.Sessions != nil {
		doc.Sessions = *patch.Sessions
	}
	if patch.PomodoroDurations != nil {
		durations := *patch.PomodoroDurations
		doc.PomodoroDurations = &durations
	}
	if doc.Projects == nil {
		doc.Projects = []domain.Project{}
	}
	if doc.Sessions == nil {
		doc.Sessions = []domain.Session{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write workspace: %w", err)
	}

	return nil
}

// Close implements WorkspaceRepository.Close
func (s *JSONStore) Close() error {
	return nil
}

func snapshotFromDocument(doc workspaceDocument) *ports.Snapshot {
	snapshot := &ports.Snapshot{
		Projects:          doc.Projects,
		Sessions:          doc.Sessions,
		PomodoroDurations: domain.DefaultPomodoroDurations(),
	}
	if doc.PomodoroDurations != nil {
		snapshot.PomodoroDurations = *doc.PomodoroDurations
	}
	return snapshot
}

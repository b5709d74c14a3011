package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

func newTestStore(t *testing.T) *JSONStore {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "workspace.json"))
	require.NoError(t, err)
	return store
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	snapshot, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestJSONStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	projects := []domain.Project{
		{ID: "p1", Name: "Deep Work", Color: "#ff0000", TotalTime: 120, StartDate: 1700000000000},
	}
	sessions := []domain.Session{
		{ID: "s1", ProjectID: "p1", StartTime: 1700000000000, EndTime: 1700000120000, Duration: 120, Source: domain.SourceTimer, Direction: domain.DirectionAdd},
	}
	durations := domain.PomodoroDurations{Work: 50, ShortBreak: 10, LongBreak: 30}

	err := store.Save(ctx, ports.Patch{
		Projects:          &projects,
		Sessions:          &sessions,
		PomodoroDurations: &durations,
	})
	require.NoError(t, err)

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, projects, snapshot.Projects)
	assert.Equal(t, sessions, snapshot.Sessions)
	assert.Equal(t, durations, snapshot.PomodoroDurations)
}

func TestJSONStore_PatchKeepsOmittedFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	projects := []domain.Project{{ID: "p1", Name: "Deep Work"}}
	sessions := []domain.Session{{ID: "s1", ProjectID: "p1", Duration: 60}}
	require.NoError(t, store.Save(ctx, ports.Patch{Projects: &projects, Sessions: &sessions}))

	// Update sessions only; projects must survive untouched
	updated := append(sessions, domain.Session{ID: "s2", ProjectID: "p1", Duration: 30})
	require.NoError(t, store.Save(ctx, ports.Patch{Sessions: &updated}))

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Len(t, snapshot.Projects, 1)
	assert.Equal(t, "Deep Work", snapshot.Projects[0].Name)
	assert.Len(t, snapshot.Sessions, 2)
}

func TestJSONStore_DefaultPomodoroDurations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	projects := []domain.Project{}
	require.NoError(t, store.Save(ctx, ports.Patch{Projects: &projects}))

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, domain.DefaultPomodoroDurations(), snapshot.PomodoroDurations)
}

func TestJSONStore_PreservesSessionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Order matters to the accounting fold: subtract entries only cancel
	// what came before them
	sessions := []domain.Session{
		{ID: "s1", ProjectID: "p1", Duration: 90, Direction: domain.DirectionAdd},
		{ID: "s2", ProjectID: "p1", Duration: 30, Direction: domain.DirectionSubtract},
		{ID: "s3", ProjectID: "p1", Duration: 10, Direction: domain.DirectionAdd},
	}
	require.NoError(t, store.Save(ctx, ports.Patch{Sessions: &sessions}))

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Sessions, 3)
	assert.Equal(t, "s1", snapshot.Sessions[0].ID)
	assert.Equal(t, "s2", snapshot.Sessions[1].ID)
	assert.Equal(t, "s3", snapshot.Sessions[2].ID)
}

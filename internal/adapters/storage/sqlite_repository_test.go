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

func newTestSQLiteRepo(t *testing.T) *SQLiteRepository {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "workspace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_LoadEmptyDatabase(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	snapshot, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSQLiteRepository_SaveAndLoad(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	projects := []domain.Project{
		{ID: "p1", Name: "Deep Work", Color: "#ff0000", TotalTime: 120, StartDate: 1700000000000},
		{ID: "p2", Name: "Reading", Color: "#00ff00", StartDate: 1700000100000},
	}
	sessions := []domain.Session{
		{ID: "s1", ProjectID: "p1", StartTime: 1700000000000, EndTime: 1700000120000, Duration: 120, Source: domain.SourceTimer, Direction: domain.DirectionAdd},
		{ID: "s2", ProjectID: "p1", StartTime: 1700000200000, Duration: 30, Source: domain.SourceManual, Direction: domain.DirectionSubtract},
	}
	durations := domain.PomodoroDurations{Work: 50, ShortBreak: 10, LongBreak: 30}

	err := repo.Save(ctx, ports.Patch{
		Projects:          &projects,
		Sessions:          &sessions,
		PomodoroDurations: &durations,
	})
	require.NoError(t, err)

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, projects, snapshot.Projects)
	assert.Equal(t, sessions, snapshot.Sessions)
	assert.Equal(t, durations, snapshot.PomodoroDurations)
}

func TestSQLiteRepository_PatchReplacesOnlySetFields(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	projects := []domain.Project{{ID: "p1", Name: "Deep Work", StartDate: 1}}
	sessions := []domain.Session{{ID: "s1", ProjectID: "p1", Duration: 60, Source: domain.SourceTimer, Direction: domain.DirectionAdd}}
	require.NoError(t, repo.Save(ctx, ports.Patch{Projects: &projects, Sessions: &sessions}))

	updated := append(sessions, domain.Session{ID: "s2", ProjectID: "p1", Duration: 30, Source: domain.SourceManual, Direction: domain.DirectionAdd})
	require.NoError(t, repo.Save(ctx, ports.Patch{Sessions: &updated}))

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Len(t, snapshot.Projects, 1)
	assert.Len(t, snapshot.Sessions, 2)
}

func TestSQLiteRepository_PreservesInsertionOrder(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	sessions := []domain.Session{
		{ID: "s3", ProjectID: "p1", Duration: 10, Source: domain.SourceTimer, Direction: domain.DirectionAdd},
		{ID: "s1", ProjectID: "p1", Duration: 20, Source: domain.SourceTimer, Direction: domain.DirectionAdd},
		{ID: "s2", ProjectID: "p1", Duration: 30, Source: domain.SourceTimer, Direction: domain.DirectionAdd},
	}
	require.NoError(t, repo.Save(ctx, ports.Patch{Sessions: &sessions}))

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Sessions, 3)

	// Position column, not the id, defines the order
	assert.Equal(t, "s3", snapshot.Sessions[0].ID)
	assert.Equal(t, "s1", snapshot.Sessions[1].ID)
	assert.Equal(t, "s2", snapshot.Sessions[2].ID)
}

func TestSQLiteRepository_NormalizesSessionsOnSave(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	// Source and direction left empty; the mapper must fill defaults to
	// satisfy the column checks
	sessions := []domain.Session{{ID: "s1", ProjectID: "p1", Duration: 60}}
	require.NoError(t, repo.Save(ctx, ports.Patch{Sessions: &sessions}))

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Sessions, 1)
	assert.Equal(t, domain.SourceTimer, snapshot.Sessions[0].Source)
	assert.Equal(t, domain.DirectionAdd, snapshot.Sessions[0].Direction)
}

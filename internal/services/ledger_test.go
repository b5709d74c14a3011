package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

// fakeRepo is an in-memory WorkspaceRepository with patch-merge semantics
type fakeRepo struct {
	snapshot  *ports.Snapshot
	saveCalls int
	loadErr   error
	saveErr   error
}

func (f *fakeRepo) Load(ctx context.Context) (*ports.Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

func (f *fakeRepo) Save(ctx context.Context, patch ports.Patch) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.snapshot == nil {
		f.snapshot = &ports.Snapshot{PomodoroDurations: domain.DefaultPomodoroDurations()}
	}
	if patch.Projects != nil {
		f.snapshot.Projects = append([]domain.Project(nil), (*patch.Projects)...)
	}
	if patch.Sessions != nil {
		f.snapshot.Sessions = append([]domain.Session(nil), (*patch.Sessions)...)
	}
	if patch.PomodoroDurations != nil {
		f.snapshot.PomodoroDurations = *patch.PomodoroDurations
	}
	return nil
}

func (f *fakeRepo) Close() error { return nil }

// fixedClock returns a clock frozen at t
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, *fakeRepo) {
	repo := &fakeRepo{}
	ledger := NewLedger(repo, fixedClock(testNow))
	require.NoError(t, ledger.Load(context.Background()))
	return ledger, repo
}

func TestLedger_LoadEmptyWorkspace(t *testing.T) {
	ledger, _ := newTestLedger(t)

	assert.Empty(t, ledger.Projects())
	assert.Empty(t, ledger.Sessions())
	assert.Equal(t, domain.DefaultPomodoroDurations(), ledger.PomodoroDurations())
}

func TestLedger_LoadNormalizesSnapshot(t *testing.T) {
	repo := &fakeRepo{snapshot: &ports.Snapshot{
		Projects: []domain.Project{{ID: "p1", Name: "Deep Work"}}, // no start date
		Sessions: []domain.Session{{ID: "s1", ProjectID: "p1", Duration: -60}},
	}}
	ledger := NewLedger(repo, fixedClock(testNow))
	require.NoError(t, ledger.Load(context.Background()))

	assert.Equal(t, testNow.UnixMilli(), ledger.Projects()[0].StartDate)
	assert.Equal(t, int64(60), ledger.Sessions()[0].Duration)
	assert.Equal(t, domain.SourceTimer, ledger.Sessions()[0].Source)
	assert.Equal(t, domain.DirectionAdd, ledger.Sessions()[0].Direction)
}

func TestLedger_LoadPropagatesError(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk gone")}
	ledger := NewLedger(repo, fixedClock(testNow))
	assert.Error(t, ledger.Load(context.Background()))
}

func TestLedger_AddProject(t *testing.T) {
	ledger, repo := newTestLedger(t)

	project := ledger.AddProject("Deep Work", "#ff0000")

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "Deep Work", project.Name)
	assert.Equal(t, int64(0), project.TotalTime)
	assert.Equal(t, testNow.UnixMilli(), project.StartDate)

	require.Len(t, ledger.Projects(), 1)
	require.NotNil(t, repo.snapshot)
	assert.Len(t, repo.snapshot.Projects, 1)
}

func TestLedger_DeleteProjectKeepsSessions(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")
	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 60})

	ledger.DeleteProject(project.ID)

	assert.Empty(t, ledger.Projects())
	assert.Len(t, ledger.Sessions(), 1)
}

func TestLedger_RecordSessionUpdatesTotal(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 90})
	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 30, Direction: domain.DirectionSubtract, Source: domain.SourceManual})

	assert.Equal(t, int64(60), ledger.Projects()[0].TotalTime)
}

func TestLedger_RecordSessionClampsTotalAtZero(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 60})
	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 1000, Direction: domain.DirectionSubtract})

	assert.Equal(t, int64(0), ledger.Projects()[0].TotalTime)
}

func TestLedger_RecordSessionFillsID(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	recorded := ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 10})
	assert.NotEmpty(t, recorded.ID)
}

func TestLedger_RecordSessionForUnknownProject(t *testing.T) {
	ledger, _ := newTestLedger(t)

	recorded := ledger.RecordSession(domain.Session{ProjectID: "gone", Duration: 10})

	assert.Len(t, ledger.Sessions(), 1)
	assert.Equal(t, "gone", recorded.ProjectID)
}

func TestLedger_AdjustProjectTime(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	ledger.AdjustProjectTime(project.ID, 300, domain.DirectionAdd)

	require.Len(t, ledger.Sessions(), 1)
	session := ledger.Sessions()[0]
	assert.Equal(t, domain.SourceManual, session.Source)
	assert.Equal(t, domain.DirectionAdd, session.Direction)
	assert.Equal(t, int64(300), session.Duration)
	assert.Equal(t, testNow.UnixMilli(), session.StartTime)
	assert.Equal(t, int64(300), ledger.Projects()[0].TotalTime)
}

func TestLedger_AdjustProjectTimeIgnoresNonPositive(t *testing.T) {
	ledger, _ := newTestLedger(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	ledger.AdjustProjectTime(project.ID, 0, domain.DirectionAdd)
	ledger.AdjustProjectTime(project.ID, -5, domain.DirectionSubtract)

	assert.Empty(t, ledger.Sessions())
	assert.Equal(t, int64(0), ledger.Projects()[0].TotalTime)
}

func TestLedger_SetPomodoroDurations(t *testing.T) {
	ledger, repo := newTestLedger(t)

	durations := domain.PomodoroDurations{Work: 50, ShortBreak: 10, LongBreak: 20}
	ledger.SetPomodoroDurations(durations)

	assert.Equal(t, durations, ledger.PomodoroDurations())
	require.NotNil(t, repo.snapshot)
	assert.Equal(t, durations, repo.snapshot.PomodoroDurations)
}

func TestLedger_SaveFailureKeepsMemoryState(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	ledger := NewLedger(repo, fixedClock(testNow))
	require.NoError(t, ledger.Load(context.Background()))

	project := ledger.AddProject("Deep Work", "#ff0000")
	ledger.RecordSession(domain.Session{ProjectID: project.ID, Duration: 60})

	// In-memory state stays authoritative even though every save failed
	assert.Len(t, ledger.Projects(), 1)
	assert.Equal(t, int64(60), ledger.Projects()[0].TotalTime)
	assert.Equal(t, 2, repo.saveCalls)
}

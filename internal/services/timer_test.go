package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
)

// steppableClock advances manually, simulating elapsed wall time
type steppableClock struct {
	now time.Time
}

func (c *steppableClock) Now() time.Time { return c.now }

func (c *steppableClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTimerFixture(t *testing.T) (*Timer, *Ledger, *steppableClock) {
	clock := &steppableClock{now: testNow}
	ledger := NewLedger(&fakeRepo{}, clock.Now)
	require.NoError(t, ledger.Load(context.Background()))
	return NewTimer(ledger, clock.Now), ledger, clock
}

func TestTimer_RecordsElapsedSeconds(t *testing.T) {
	timer, ledger, clock := newTimerFixture(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	timer.Start(project.ID)
	clock.Advance(90 * time.Second)

	assert.Equal(t, int64(90), timer.Elapsed())

	session, ok := timer.Stop()
	require.True(t, ok)

	assert.Equal(t, int64(90), session.Duration)
	assert.Equal(t, project.ID, session.ProjectID)
	assert.Equal(t, domain.SourceTimer, session.Source)
	assert.Equal(t, domain.DirectionAdd, session.Direction)
	assert.Equal(t, testNow.UnixMilli(), session.StartTime)
	assert.Equal(t, testNow.Add(90*time.Second).UnixMilli(), session.EndTime)

	// Project total reflects the recorded run
	assert.Equal(t, int64(90), ledger.Projects()[0].TotalTime)
}

func TestTimer_StopWhenIdleRecordsNothing(t *testing.T) {
	timer, ledger, _ := newTimerFixture(t)

	_, ok := timer.Stop()
	assert.False(t, ok)
	assert.Empty(t, ledger.Sessions())
}

func TestTimer_StartRestartsAgainstNewProject(t *testing.T) {
	timer, ledger, clock := newTimerFixture(t)
	first := ledger.AddProject("First", "#ff0000")
	second := ledger.AddProject("Second", "#00ff00")

	timer.Start(first.ID)
	clock.Advance(30 * time.Second)
	timer.Start(second.ID)
	clock.Advance(10 * time.Second)

	session, ok := timer.Stop()
	require.True(t, ok)

	// The interrupted run against the first project is discarded
	assert.Equal(t, second.ID, session.ProjectID)
	assert.Equal(t, int64(10), session.Duration)
	assert.Len(t, ledger.Sessions(), 1)
}

func TestTimer_ResetDiscardsRun(t *testing.T) {
	timer, ledger, clock := newTimerFixture(t)
	project := ledger.AddProject("Deep Work", "#ff0000")

	timer.Start(project.ID)
	clock.Advance(45 * time.Second)
	timer.Reset()

	assert.False(t, timer.Running())
	assert.Equal(t, int64(0), timer.Elapsed())
	assert.Empty(t, ledger.Sessions())
}

func TestTimer_ElapsedZeroWhenIdle(t *testing.T) {
	timer, _, clock := newTimerFixture(t)
	clock.Advance(time.Hour)
	assert.Equal(t, int64(0), timer.Elapsed())
}

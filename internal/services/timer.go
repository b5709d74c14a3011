package services

import (
	"time"

	"tempo/internal/domain"
)

// Timer is the stopwatch behind the tracker view. It attributes elapsed
// wall time to one project at a time; stopping produces a session that is
// recorded in the ledger.
type Timer struct {
	ledger          *Ledger
	clock           Clock
	activeProjectID string
	startTime       time.Time
	running         bool
}

// NewTimer creates a timer recording into ledger. A nil clock means wall
// time.
func NewTimer(ledger *Ledger, clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{ledger: ledger, clock: clock}
}

// Running reports whether the stopwatch is counting
func (t *Timer) Running() bool {
	return t.running
}

// ActiveProjectID returns the project being tracked, or empty when idle
func (t *Timer) ActiveProjectID() string {
	return t.activeProjectID
}

// Elapsed returns the whole seconds counted so far
func (t *Timer) Elapsed() int64 {
	if !t.running {
		return 0
	}
	return int64(t.clock().Sub(t.startTime) / time.Second)
}

// Start begins tracking projectID. Starting while running restarts the
// stopwatch against the new project; the interrupted run is discarded.
func (t *Timer) Start(projectID string) {
	t.activeProjectID = projectID
	t.startTime = t.clock()
	t.running = true
}

// Stop ends the run and records it as a timer session. Stopping an idle
// timer records nothing.
func (t *Timer) Stop() (domain.Session, bool) {
	if !t.running {
		return domain.Session{}, false
	}

	end := t.clock()
	session := domain.Session{
		ProjectID: t.activeProjectID,
		StartTime: t.startTime.UnixMilli(),
		EndTime:   end.UnixMilli(),
		Duration:  int64(end.Sub(t.startTime) / time.Second),
		Source:    domain.SourceTimer,
		Direction: domain.DirectionAdd,
	}

	t.running = false
	t.activeProjectID = ""

	return t.ledger.RecordSession(session), true
}

// Reset discards the current run without recording anything
func (t *Timer) Reset() {
	t.running = false
	t.activeProjectID = ""
}

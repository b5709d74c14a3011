package domain

// Source identifies how a session was produced
type Source string

const (
	SourceTimer  Source = "timer"  // recorded by stopping the stopwatch
	SourceManual Source = "manual" // entered as a manual adjustment
)

// Direction determines the sign applied to a session's duration when it is
// folded into totals
type Direction string

const (
	DirectionAdd      Direction = "add"
	DirectionSubtract Direction = "subtract"
)

// Session is an immutable time-accounting event attributed to a project.
// Sessions are created once (timer stop or manual adjustment) and never
// mutated or deleted; ProjectID is a non-enforced foreign key.
type Session struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	StartTime int64     `json:"startTime"`         // epoch ms
	EndTime   int64     `json:"endTime,omitempty"` // epoch ms, zero for manual sessions
	Duration  int64     `json:"duration"`          // magnitude in seconds
	Source    Source    `json:"source,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Normalized returns a copy with defaults filled: source=timer,
// direction=add, duration stored as magnitude.
func (s Session) Normalized() Session {
	if s.Source == "" {
		s.Source = SourceTimer
	}
	if s.Direction == "" {
		s.Direction = DirectionAdd
	}
	if s.Duration < 0 {
		s.Duration = -s.Duration
	}
	return s
}

// SignedDuration returns the session's duration with its direction applied:
// negative for subtract, positive otherwise.
func (s Session) SignedDuration() int64 {
	d := s.Duration
	if d < 0 {
		d = -d
	}
	if s.Direction == DirectionSubtract {
		return -d
	}
	return d
}

// NormalizeSessions normalizes every session in a loaded snapshot
func NormalizeSessions(sessions []Session) []Session {
	result := make([]Session, len(sessions))
	for i, s := range sessions {
		result[i] = s.Normalized()
	}
	return result
}

// ApplyClamped adds a signed delta to a running total, flooring at zero.
// This is the single fold step used everywhere totals are accumulated: the
// clamp happens at each application, so a subtract can only cancel time
// that has already been folded in.
func ApplyClamped(total, delta int64) int64 {
	next := total + delta
	if next < 0 {
		return 0
	}
	return next
}

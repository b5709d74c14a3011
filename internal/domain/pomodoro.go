package domain

// PomodoroMode is one of the three countdown phases
type PomodoroMode string

const (
	ModeWork       PomodoroMode = "work"
	ModeShortBreak PomodoroMode = "shortBreak"
	ModeLongBreak  PomodoroMode = "longBreak"
)

// PomodoroDurations holds the per-mode countdown lengths in minutes.
// Field names match the persisted snapshot wire format.
type PomodoroDurations struct {
	Work       int `json:"work"`
	ShortBreak int `json:"shortBreak"`
	LongBreak  int `json:"longBreak"`
}

// DefaultPomodoroDurations returns the stock 25/5/15 configuration
func DefaultPomodoroDurations() PomodoroDurations {
	return PomodoroDurations{Work: 25, ShortBreak: 5, LongBreak: 15}
}

// Minutes returns the configured minutes for a mode
func (d PomodoroDurations) Minutes(mode PomodoroMode) int {
	switch mode {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

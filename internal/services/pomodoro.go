package services

import (
	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// Pomodoro is the countdown state machine. It never advances phases on its
// own: when the countdown reaches zero it stops and plays a notification,
// and the user picks the next mode.
type Pomodoro struct {
	ledger   *Ledger
	player   ports.SoundPlayer
	mode     domain.PomodoroMode
	timeLeft int // seconds
	active   bool
}

// NewPomodoro creates a pomodoro in work mode, primed with the ledger's
// configured durations.
func NewPomodoro(ledger *Ledger, player ports.SoundPlayer) *Pomodoro {
	p := &Pomodoro{
		ledger: ledger,
		player: player,
		mode:   domain.ModeWork,
	}
	p.timeLeft = ledger.PomodoroDurations().Minutes(p.mode) * 60
	return p
}

// Mode returns the current phase
func (p *Pomodoro) Mode() domain.PomodoroMode {
	return p.mode
}

// Active reports whether the countdown is running
func (p *Pomodoro) Active() bool {
	return p.active
}

// TimeLeft returns the remaining seconds in the current phase
func (p *Pomodoro) TimeLeft() int {
	return p.timeLeft
}

// Tick advances the countdown by one second. At zero the countdown stops
// and the notification sound plays; reaching zero reports true.
func (p *Pomodoro) Tick() bool {
	if !p.active {
		return false
	}

	if p.timeLeft > 0 {
		p.timeLeft--
	}
	if p.timeLeft > 0 {
		return false
	}

	p.active = false
	if p.player != nil {
		if err := p.player.PlaySound(); err != nil {
			logging.Logger.Debug("failed to play notification sound", "error", err)
		}
	}
	return true
}

// Toggle starts or pauses the countdown
func (p *Pomodoro) Toggle() {
	if !p.active && p.timeLeft == 0 {
		p.timeLeft = p.ledger.PomodoroDurations().Minutes(p.mode) * 60
	}
	p.active = !p.active
}

// Reset stops the countdown and restores the full duration of the current
// mode
func (p *Pomodoro) Reset() {
	p.active = false
	p.timeLeft = p.ledger.PomodoroDurations().Minutes(p.mode) * 60
}

// SwitchMode changes the phase, stops the countdown, and loads the new
// mode's duration.
func (p *Pomodoro) SwitchMode(mode domain.PomodoroMode) {
	p.mode = mode
	p.active = false
	p.timeLeft = p.ledger.PomodoroDurations().Minutes(mode) * 60
}

// SetDuration updates one mode's length in minutes and persists the
// configuration. Non-positive values are ignored. When the countdown is
// paused the remaining time snaps to the current mode's new duration.
func (p *Pomodoro) SetDuration(mode domain.PomodoroMode, minutes int) {
	if minutes <= 0 {
		return
	}

	durations := p.ledger.PomodoroDurations()
	switch mode {
	case domain.ModeWork:
		durations.Work = minutes
	case domain.ModeShortBreak:
		durations.ShortBreak = minutes
	case domain.ModeLongBreak:
		durations.LongBreak = minutes
	default:
		return
	}
	p.ledger.SetPomodoroDurations(durations)

	if !p.active {
		p.timeLeft = durations.Minutes(p.mode) * 60
	}
}

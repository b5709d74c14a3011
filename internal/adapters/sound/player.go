package sound

import "fmt"

// Player implements ports.SoundPlayer
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays a notification sound when a pomodoro phase ends.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySound() error {
	return play()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}

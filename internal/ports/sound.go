package ports

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the default notification sound
	PlaySound() error
}

//go:build !darwin

package sound

// play falls back to terminal bell on platforms without a system player
func play() error {
	return terminalBell()
}

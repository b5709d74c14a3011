package ui

import (
	"fmt"
	"time"
)

// formatElapsed renders a stopwatch value as hh:mm:ss
func formatElapsed(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatCountdown renders remaining pomodoro time as mm:ss
func formatCountdown(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatTotal renders an accumulated total compactly: "45s", "12m", "3h 25m"
func formatTotal(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// formatWeekLabel renders a week start as "Jan 2" in the given location
func formatWeekLabel(startMs int64, loc *time.Location) string {
	return time.UnixMilli(startMs).In(loc).Format("Jan 2")
}

// formatDate renders an epoch-ms timestamp as a calendar date
func formatDate(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format("2006-01-02")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized_FillsDefaults(t *testing.T) {
	s := Session{ID: "s1", ProjectID: "p1", StartTime: 1000, Duration: 90}.Normalized()

	assert.Equal(t, SourceTimer, s.Source)
	assert.Equal(t, DirectionAdd, s.Direction)
	assert.Equal(t, int64(90), s.Duration)
}

func TestNormalized_KeepsExplicitFields(t *testing.T) {
	s := Session{
		ID:        "s1",
		ProjectID: "p1",
		Duration:  30,
		Source:    SourceManual,
		Direction: DirectionSubtract,
	}.Normalized()

	assert.Equal(t, SourceManual, s.Source)
	assert.Equal(t, DirectionSubtract, s.Direction)
}

func TestNormalized_DurationIsMagnitude(t *testing.T) {
	s := Session{ID: "s1", ProjectID: "p1", Duration: -45}.Normalized()
	assert.Equal(t, int64(45), s.Duration)
}

func TestSignedDuration(t *testing.T) {
	tests := []struct {
		name      string
		duration  int64
		direction Direction
		expected  int64
	}{
		{"add is positive", 90, DirectionAdd, 90},
		{"subtract is negative", 30, DirectionSubtract, -30},
		{"default direction is positive", 15, "", 15},
		{"negative magnitude add", -20, DirectionAdd, 20},
		{"negative magnitude subtract", -20, DirectionSubtract, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Duration: tt.duration, Direction: tt.direction}
			assert.Equal(t, tt.expected, s.SignedDuration())
		})
	}
}

func TestApplyClamped(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		delta    int64
		expected int64
	}{
		{"add", 90, 30, 120},
		{"subtract within balance", 90, -30, 60},
		{"subtract past zero clamps", 60, -1000, 0},
		{"zero delta", 42, 0, 42},
		{"from zero", 0, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyClamped(tt.total, tt.delta))
		})
	}
}

func TestNormalizeSessions(t *testing.T) {
	sessions := NormalizeSessions([]Session{
		{ID: "a", Duration: -10},
		{ID: "b", Duration: 5, Source: SourceManual, Direction: DirectionSubtract},
	})

	assert.Equal(t, int64(10), sessions[0].Duration)
	assert.Equal(t, SourceTimer, sessions[0].Source)
	assert.Equal(t, DirectionAdd, sessions[0].Direction)
	assert.Equal(t, SourceManual, sessions[1].Source)
	assert.Equal(t, DirectionSubtract, sessions[1].Direction)
}

func TestResolveProject_Orphan(t *testing.T) {
	projects := []Project{{ID: "p1", Name: "Deep Work", Color: "#ff0000"}}

	p := ResolveProject(projects, "gone")
	assert.Equal(t, FallbackProjectName, p.Name)
	assert.Equal(t, FallbackProjectColor, p.Color)

	existing := ResolveProject(projects, "p1")
	assert.Equal(t, "Deep Work", existing.Name)
}

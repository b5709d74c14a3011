package domain

import "time"

// Fallback identity for sessions whose project has been deleted.
// Deleting a project does not cascade to its sessions; aggregation resolves
// the dangling reference to this placeholder instead of failing.
const (
	FallbackProjectName  = "Archived project"
	FallbackProjectColor = "#6b7280"
)

// Project is a tracked activity bucket (domain entity).
// Timestamps are epoch milliseconds, durations are seconds; both match the
// persisted snapshot wire format.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	TotalTime int64  `json:"totalTime"` // running total in seconds, never negative
	StartDate int64  `json:"startDate"` // creation timestamp, epoch ms
}

// NormalizeProjects fills missing creation dates with now.
// Loaded snapshots may predate the startDate field.
func NormalizeProjects(projects []Project, now time.Time) []Project {
	result := make([]Project, len(projects))
	for i, p := range projects {
		if p.StartDate == 0 {
			p.StartDate = now.UnixMilli()
		}
		result[i] = p
	}
	return result
}

// ResolveProject finds a project by id, or returns the placeholder project
// for orphaned references.
func ResolveProject(projects []Project, id string) Project {
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	return Project{
		ID:    id,
		Name:  FallbackProjectName,
		Color: FallbackProjectColor,
	}
}
